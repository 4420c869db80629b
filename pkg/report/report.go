// Package report renders an analysis.Result as a markdown status report, a
// styled terminal summary, or structured JSON/YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrisonrobin/planus/pkg/analysis"
)

// Format selects an output renderer.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatTerminal Format = "terminal"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatMarkdown, FormatTerminal, FormatJSON, FormatYAML}
}

// ParseFormat accepts a format name case-insensitively; "md" and "yml" are aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "terminal":
		return FormatTerminal, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

// Write renders res to w in format f. Failures are reported as render-stage errors.
func Write(w io.Writer, res *analysis.Result, f Format) error {
	var err error
	switch f {
	case FormatMarkdown:
		err = Markdown(w, res)
	case FormatTerminal:
		err = Terminal(w, res)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(res)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(res); err == nil {
			err = enc.Close()
		}
	default:
		err = fmt.Errorf("unknown report format %q", f)
	}
	if err != nil {
		return &analysis.StageError{Stage: analysis.StageRender, Err: err}
	}
	return nil
}
