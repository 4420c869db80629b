package msproject

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var durationPartRegex = regexp.MustCompile(`(\d+(?:\.\d+)?)([DHMS])`)

// ParseDuration converts an ISO 8601 duration as written by MS Project
// (PT8H0M0S, PT1H30M, P2DT4H) into hours. A day counts as 24 hours.
func ParseDuration(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if len(s) < 2 || s[0] != 'P' {
		return 0, fmt.Errorf("invalid ISO 8601 duration format: %s", s)
	}

	datePart, timePart, hasTime := strings.Cut(s[1:], "T")
	if hasTime && timePart == "" {
		return 0, fmt.Errorf("invalid ISO 8601 duration (empty time part): %s", s)
	}

	var hours float64
	matched := 0
	consume := func(part string, allowed string) error {
		matches := durationPartRegex.FindAllStringSubmatch(part, -1)
		rest := durationPartRegex.ReplaceAllString(part, "")
		if rest != "" {
			return fmt.Errorf("invalid ISO 8601 duration: %s", s)
		}
		for _, m := range matches {
			if !strings.Contains(allowed, m[2]) {
				return fmt.Errorf("invalid ISO 8601 duration unit %q: %s", m[2], s)
			}
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return fmt.Errorf("invalid ISO 8601 duration: %s: %w", s, err)
			}
			switch m[2] {
			case "D":
				hours += v * 24
			case "H":
				hours += v
			case "M":
				hours += v / 60
			case "S":
				hours += v / 3600
			}
			matched++
		}
		return nil
	}

	if err := consume(datePart, "D"); err != nil {
		return 0, err
	}
	if err := consume(timePart, "HMS"); err != nil {
		return 0, err
	}
	if matched == 0 {
		return 0, fmt.Errorf("invalid ISO 8601 duration: %s", s)
	}
	return hours, nil
}
