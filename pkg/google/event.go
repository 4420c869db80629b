// Package google exports analyzed schedule tasks to a Google Calendar as
// events coloured by delay risk.
package google

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/harrisonrobin/planus/pkg/colors"
	"github.com/harrisonrobin/planus/pkg/model"
	"github.com/harrisonrobin/planus/pkg/risk"
)

// TaskKeyProperty is the private extended property that links an event to its task.
const TaskKeyProperty = "planus_task_id"

const defaultEventLength = 30 * time.Minute

// ErrNoDates is returned for tasks with neither a start nor a finish date.
var ErrNoDates = errors.New("task has no start or finish date")

// TaskKey identifies a task across projects: "project/taskID".
func TaskKey(project, taskID string) string {
	return project + "/" + taskID
}

// ConvertTask builds the calendar event for task as assessed at time now.
//
// The event spans start..finish. With only a finish it is the last 30 minutes
// before the finish; with only a start it lasts the task duration (30 minutes
// when unknown). The summary is prefixed with ✓ when complete, ! when overdue
// and ‣ when in progress.
func ConvertTask(task model.Task, a risk.Assessment, project string, now time.Time) (*calendar.Event, error) {
	var start, end time.Time
	switch {
	case task.HasStart() && task.HasFinish() && task.Finish.After(task.Start):
		start, end = task.Start, task.Finish
	case task.HasFinish():
		start, end = task.Finish.Add(-defaultEventLength), task.Finish
	case task.HasStart():
		length := time.Duration(task.Duration * float64(time.Hour))
		if length <= 0 {
			length = defaultEventLength
		}
		start, end = task.Start, task.Start.Add(length)
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoDates, TaskKey(project, task.ID))
	}

	summary := task.Name
	switch {
	case task.IsComplete():
		summary = "✓ " + summary
	case task.IsOverdue(now):
		summary = "! " + summary
	case task.PercentComplete > 0:
		summary = "‣ " + summary
	}

	return &calendar.Event{
		Summary:     summary,
		Description: describe(task, a, project),
		ColorId:     colors.EventColorID(a.Level),
		Start:       &calendar.EventDateTime{DateTime: start.UTC().Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: end.UTC().Format(time.RFC3339)},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{TaskKeyProperty: TaskKey(project, task.ID)},
		},
	}, nil
}

func describe(task model.Task, a risk.Assessment, project string) string {
	var b strings.Builder
	if project != "" {
		fmt.Fprintf(&b, "Project: %s\n", project)
	}
	fmt.Fprintf(&b, "Task ID: %s\n", task.ID)
	fmt.Fprintf(&b, "Progress: %d%%\n", task.PercentComplete)
	if task.Duration > 0 {
		fmt.Fprintf(&b, "Duration: %.1fh\n", task.Duration)
	}
	resources := "none"
	if len(task.ResourceNames) > 0 {
		resources = strings.Join(task.ResourceNames, ", ")
	}
	fmt.Fprintf(&b, "Resources: %s\n", resources)
	fmt.Fprintf(&b, "\nRisk: level %d/5, %s (score %d)\n", a.Level, a.Description, a.Score)
	for _, f := range a.Factors {
		fmt.Fprintf(&b, "‣ %s\n", f.Message)
	}
	return b.String()
}

// EventNeedsUpdate returns a patch with the fields of target that differ from
// existing, or nil when nothing changed.
func EventNeedsUpdate(existing, target *calendar.Event) (*calendar.Event, error) {
	patch := &calendar.Event{}
	needsUpdate := false

	if existing.Summary != target.Summary {
		patch.Summary = target.Summary
		needsUpdate = true
	}
	if existing.Description != target.Description {
		patch.Description = target.Description
		needsUpdate = true
	}
	if existing.ColorId != target.ColorId {
		patch.ColorId = target.ColorId
		needsUpdate = true
	}

	sameStart, err := sameInstant(existing.Start, target.Start)
	if err != nil {
		return nil, err
	}
	sameEnd, err := sameInstant(existing.End, target.End)
	if err != nil {
		return nil, err
	}
	if !sameStart || !sameEnd {
		patch.Start = target.Start
		patch.End = target.End
		needsUpdate = true
	}

	if needsUpdate {
		return patch, nil
	}
	return nil, nil
}

func sameInstant(a, b *calendar.EventDateTime) (bool, error) {
	if a == nil || b == nil || a.DateTime == "" || b.DateTime == "" {
		return a != nil && b != nil && a.DateTime == b.DateTime && a.Date == b.Date, nil
	}
	ta, err := time.Parse(time.RFC3339, a.DateTime)
	if err != nil {
		return false, fmt.Errorf("invalid event time %q: %w", a.DateTime, err)
	}
	tb, err := time.Parse(time.RFC3339, b.DateTime)
	if err != nil {
		return false, fmt.Errorf("invalid event time %q: %w", b.DateTime, err)
	}
	return ta.Equal(tb), nil
}
