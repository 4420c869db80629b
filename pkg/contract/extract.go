// Package contract reads contract documents, pulls candidate activities out
// of their text, and reconciles them against a schedule.
package contract

import (
	"regexp"
	"strings"
)

var (
	activityRegex    = regexp.MustCompile(`(?i)(?:Activity|Task|Item)\s*[:\-]\s*([^\n]+)`)
	deadlineRegex    = regexp.MustCompile(`(?i)(?:Deadline|Due\s*date|Completion\s*date)\s*[:\-]\s*([^\n]+)`)
	deliverableRegex = regexp.MustCompile(`(?i)(?:Deliverable|Output)\s*[:\-]\s*([^\n]+)`)
)

// Document is the plain text of a contract and the candidate values found in it.
type Document struct {
	RawText      string   `json:"raw_text" yaml:"raw_text"`
	Activities   []string `json:"activities" yaml:"activities"`
	Deadlines    []string `json:"deadlines" yaml:"deadlines"`
	Deliverables []string `json:"deliverables" yaml:"deliverables"`
}

// Extract scans text for "Activity:", "Task:", "Item:", "Deadline:",
// "Due date:", "Completion date:", "Deliverable:" and "Output:" markers
// (case-insensitive, ':' or '-' separated) and returns the rest of each
// matching line, trimmed, in document order.
func Extract(text string) Document {
	return Document{
		RawText:      text,
		Activities:   findAll(activityRegex, text),
		Deadlines:    findAll(deadlineRegex, text),
		Deliverables: findAll(deliverableRegex, text),
	}
}

func findAll(re *regexp.Regexp, text string) []string {
	out := []string{}
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		if v := strings.TrimSpace(m[1]); v != "" {
			out = append(out, v)
		}
	}
	return out
}
