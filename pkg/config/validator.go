package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/harrisonrobin/planus/pkg/i18n"
	"github.com/harrisonrobin/planus/pkg/logging"
)

const maxDebounceMs = 60_000

// ValidationError is a single invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid setting found.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidFormats lists the report formats.
func ValidFormats() []string {
	return []string{FormatMarkdown, FormatTerminal, FormatJSON, FormatYAML}
}

// Validate returns every problem in c; nil means the config is usable.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if _, ok := i18n.Match(c.Language); !ok {
		errs = append(errs, ValidationError{
			Field:   "language",
			Value:   c.Language,
			Message: fmt.Sprintf("must be one of %v", i18n.Supported()),
		})
	}
	if !slices.Contains(ValidFormats(), c.Format) {
		errs = append(errs, ValidationError{
			Field:   "format",
			Value:   c.Format,
			Message: fmt.Sprintf("must be one of %v", ValidFormats()),
		})
	}
	if strings.TrimSpace(c.Calendar) == "" {
		errs = append(errs, ValidationError{Field: "calendar", Value: c.Calendar, Message: "must not be empty"})
	}
	if c.Location != "" && c.Location != "Local" {
		if _, err := time.LoadLocation(c.Location); err != nil {
			errs = append(errs, ValidationError{Field: "location", Value: c.Location, Message: "unknown time zone"})
		}
	}
	if !slices.Contains(logging.ValidLevels(), strings.ToUpper(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of %v", logging.ValidLevels()),
		})
	}
	if c.Watch.DebounceMs < 0 || c.Watch.DebounceMs > maxDebounceMs {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce_ms",
			Value:   c.Watch.DebounceMs,
			Message: fmt.Sprintf("must be between 0 and %d", maxDebounceMs),
		})
	}
	return errs
}
