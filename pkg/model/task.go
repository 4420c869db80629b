package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTask is returned by Validate when a task breaks a model invariant.
var ErrInvalidTask = errors.New("invalid task")

const day = 24 * time.Hour

// Task represents a normalized schedule task from any source.
// A zero Start or Finish means the date is absent.
type Task struct {
	ID              string    `json:"id" yaml:"id"`
	Name            string    `json:"name" yaml:"name"`
	Start           time.Time `json:"start_date,omitzero" yaml:"start_date,omitempty"`
	Finish          time.Time `json:"finish_date,omitzero" yaml:"finish_date,omitempty"`
	Duration        float64   `json:"duration" yaml:"duration"` // hours, as emitted by the schedule parser
	PercentComplete int       `json:"percent_complete" yaml:"percent_complete"`
	ResourceNames   []string  `json:"resource_names" yaml:"resource_names"`
	Predecessors    []string  `json:"predecessors,omitempty" yaml:"predecessors,omitempty"`
}

// Schedule is a parsed project schedule.
type Schedule struct {
	Name  string `json:"name" yaml:"name"`
	Tasks []Task `json:"tasks" yaml:"tasks"`
}

func (t Task) HasStart() bool  { return !t.Start.IsZero() }
func (t Task) HasFinish() bool { return !t.Finish.IsZero() }

// IsComplete reports whether the task is at 100% or more.
func (t Task) IsComplete() bool { return t.PercentComplete >= 100 }

// IsOverdue reports whether the finish date has passed while work remains.
func (t Task) IsOverdue(now time.Time) bool {
	return t.HasFinish() && t.Finish.Before(now) && t.PercentComplete < 100
}

// DaysOverdue returns the whole days elapsed since the finish date.
// It is only meaningful when IsOverdue is true.
func (t Task) DaysOverdue(now time.Time) int {
	return WholeDays(now.Sub(t.Finish))
}

// Validate checks the percent-complete and duration invariants.
func (t Task) Validate() error {
	if t.PercentComplete < 0 || t.PercentComplete > 100 {
		return fmt.Errorf("%w %q: percent complete %d out of range [0,100]", ErrInvalidTask, t.ID, t.PercentComplete)
	}
	if t.Duration < 0 {
		return fmt.Errorf("%w %q: negative duration %.2f", ErrInvalidTask, t.ID, t.Duration)
	}
	return nil
}

// WholeDays truncates a duration to whole days.
func WholeDays(d time.Duration) int {
	return int(d / day)
}

// CloneTasks returns a deep copy of tasks so an analysis can work on its own snapshot.
func CloneTasks(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		t.ResourceNames = append([]string(nil), t.ResourceNames...)
		t.Predecessors = append([]string(nil), t.Predecessors...)
		out[i] = t
	}
	return out
}
