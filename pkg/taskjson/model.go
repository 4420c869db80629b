package taskjson

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// Time is a task timestamp. It reads RFC 3339, zone-less ISO 8601
// ("2006-01-02T15:04:05") and plain dates. Zone-less values are floating and
// get their location when the task is converted.
type Time struct {
	time.Time
	floating bool
}

var floatingLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON implements the json.Unmarshaler interface for Time.
func (ct *Time) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*ct = Time{}
		return nil
	}
	s := strings.Trim(string(b), `"`)
	if s == "" {
		*ct = Time{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*ct = Time{Time: t}
		return nil
	}
	for _, layout := range floatingLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*ct = Time{Time: t, floating: true}
			return nil
		}
	}
	return fmt.Errorf("failed to parse task time string '%s'", s)
}

// MarshalJSON implements the json.Marshaler interface for Time.
func (ct Time) MarshalJSON() ([]byte, error) {
	if ct.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + ct.Time.Format(time.RFC3339) + `"`), nil
}

// In returns the instant, placing floating values in loc.
func (ct *Time) In(loc *time.Location) time.Time {
	if ct == nil || ct.Time.IsZero() {
		return time.Time{}
	}
	if !ct.floating {
		return ct.Time
	}
	t := ct.Time
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// Task is the wire form of a schedule task.
type Task struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	StartDate       *Time    `json:"start_date,omitempty"`
	FinishDate      *Time    `json:"finish_date,omitempty"`
	Duration        float64  `json:"duration"`
	PercentComplete int      `json:"percent_complete"`
	ResourceNames   []string `json:"resource_names"`
	Predecessors    []string `json:"predecessors"`
}
