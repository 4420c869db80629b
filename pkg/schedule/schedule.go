// Package schedule reports delayed and long-running tasks and overall progress.
package schedule

import (
	"sort"
	"time"

	"github.com/harrisonrobin/planus/pkg/i18n"
	"github.com/harrisonrobin/planus/pkg/model"
)

// LongestLimit is how many tasks Analyze lists as longest.
const LongestLimit = 5

// DelayedTask is a task past its finish date with work remaining.
type DelayedTask struct {
	ID              string    `json:"id" yaml:"id"`
	Name            string    `json:"name" yaml:"name"`
	FinishDate      time.Time `json:"finish_date" yaml:"finish_date"`
	PercentComplete int       `json:"percent_complete" yaml:"percent_complete"`
	DaysDelayed     int       `json:"days_delayed" yaml:"days_delayed"`
}

// LongTask is an entry of the longest-duration list.
type LongTask struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Duration float64 `json:"duration" yaml:"duration"`
}

// Analysis lists delayed tasks and the longest tasks of a schedule. The
// longest tasks stand in for a critical path; dependencies are not traversed.
type Analysis struct {
	Delayed []DelayedTask `json:"delayed_tasks" yaml:"delayed_tasks"`
	Risks   []string      `json:"risks" yaml:"risks"`
	Longest []LongTask    `json:"longest_tasks" yaml:"longest_tasks"`
	Summary string        `json:"summary" yaml:"summary"`
}

// Analyze finds overdue tasks at time now and the LongestLimit longest tasks.
// Ties in duration keep schedule order.
func Analyze(tasks []model.Task, now time.Time, loc i18n.Locale) Analysis {
	a := Analysis{Delayed: []DelayedTask{}, Risks: []string{}, Longest: []LongTask{}}

	for _, t := range tasks {
		if !t.IsOverdue(now) {
			continue
		}
		a.Delayed = append(a.Delayed, DelayedTask{
			ID:              t.ID,
			Name:            t.Name,
			FinishDate:      t.Finish,
			PercentComplete: t.PercentComplete,
			DaysDelayed:     t.DaysOverdue(now),
		})
		a.Risks = append(a.Risks, i18n.Render(loc, i18n.ScheduleTaskOverdue, i18n.Args{Name: t.Name}))
	}

	sorted := append([]model.Task{}, tasks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Duration > sorted[j].Duration
	})
	for _, t := range sorted[:min(LongestLimit, len(sorted))] {
		a.Longest = append(a.Longest, LongTask{ID: t.ID, Name: t.Name, Duration: t.Duration})
	}

	a.Summary = i18n.Render(loc, i18n.ScheduleSummary, i18n.Args{Count: len(a.Delayed)})
	return a
}

// Progress is the overall completion picture of a schedule.
type Progress struct {
	TotalTasks int `json:"total_tasks" yaml:"total_tasks"`
	Completed  int `json:"completed" yaml:"completed"`
	InProgress int `json:"in_progress" yaml:"in_progress"`
	NotStarted int `json:"not_started" yaml:"not_started"`
	// AverageProgress is the plain mean of percent complete.
	AverageProgress float64 `json:"average_progress" yaml:"average_progress"`
	// WeightedProgress is percent complete weighted by duration; 0 when the
	// schedule has no duration at all.
	WeightedProgress     float64        `json:"weighted_progress" yaml:"weighted_progress"`
	ResourceDistribution map[string]int `json:"resource_distribution" yaml:"resource_distribution"`
}

// ComputeProgress folds tasks into completion counts and progress averages.
func ComputeProgress(tasks []model.Task) Progress {
	p := Progress{TotalTasks: len(tasks), ResourceDistribution: map[string]int{}}
	var pctSum, weighted, duration float64
	for _, t := range tasks {
		switch {
		case t.IsComplete():
			p.Completed++
		case t.PercentComplete > 0:
			p.InProgress++
		default:
			p.NotStarted++
		}
		pctSum += float64(t.PercentComplete)
		weighted += float64(t.PercentComplete) * t.Duration
		duration += t.Duration
		for _, r := range t.ResourceNames {
			p.ResourceDistribution[r]++
		}
	}
	if len(tasks) > 0 {
		p.AverageProgress = pctSum / float64(len(tasks))
	}
	if duration > 0 {
		p.WeightedProgress = weighted / duration
	}
	return p
}

// Share returns n as a percentage of the total task count.
func (p Progress) Share(n int) float64 {
	if p.TotalTasks == 0 {
		return 0
	}
	return float64(n) / float64(p.TotalTasks) * 100
}
