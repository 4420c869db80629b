package contract

import (
	"strings"
	"time"

	"github.com/harrisonrobin/planus/pkg/i18n"
	"github.com/harrisonrobin/planus/pkg/model"
	"github.com/harrisonrobin/planus/pkg/resource"
)

const (
	maxExtraActivities  = 10
	complianceThreshold = 80.0
	reviewProductivity  = 0.5
)

// DelayedActivity is a schedule task past its finish date with work remaining.
type DelayedActivity struct {
	TaskID          string    `json:"task_id" yaml:"task_id"`
	Name            string    `json:"name" yaml:"name"`
	FinishDate      time.Time `json:"finish_date" yaml:"finish_date"`
	PercentComplete int       `json:"percent_complete" yaml:"percent_complete"`
	DaysDelayed     int       `json:"days_delayed" yaml:"days_delayed"`
	Resources       []string  `json:"resources" yaml:"resources"`
}

// Comparison is the result of reconciling contract activities with a schedule.
type Comparison struct {
	Summary             string            `json:"summary" yaml:"summary"`
	DelayedActivities   []DelayedActivity `json:"delayed_activities" yaml:"delayed_activities"`
	MissingActivities   []string          `json:"missing_activities" yaml:"missing_activities"`
	ExtraActivities     []string          `json:"extra_activities" yaml:"extra_activities"`
	ProductivityMetrics []resource.Stats  `json:"productivity_metrics" yaml:"productivity_metrics"`
	ComplianceScore     float64           `json:"compliance_score" yaml:"compliance_score"`
	Recommendations     []string          `json:"recommendations" yaml:"recommendations"`
	// Suggestions maps a missing activity to the schedule tasks that most
	// resemble it. It is informational and never affects the fields above.
	Suggestions map[string][]string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// Matches reports whether a contract activity and a task name match: either
// trimmed, lower-cased string contains the other. Short strings match liberally.
func Matches(activity, taskName string) bool {
	a := strings.ToLower(strings.TrimSpace(activity))
	t := strings.ToLower(strings.TrimSpace(taskName))
	return strings.Contains(t, a) || strings.Contains(a, t)
}

// Reconcile compares contract activities against tasks at time now.
// metrics is the productivity of the same tasks and is carried into the result.
func Reconcile(activities []string, tasks []model.Task, metrics []resource.Stats, now time.Time, loc i18n.Locale) Comparison {
	missing := []string{}
	for _, act := range activities {
		if !anyTask(act, tasks) {
			missing = append(missing, act)
		}
	}

	extra := []string{}
	if len(activities) > 0 {
		for _, t := range tasks {
			if len(extra) == maxExtraActivities {
				break
			}
			if !anyActivity(t.Name, activities) {
				extra = append(extra, t.Name)
			}
		}
	}

	delayed := []DelayedActivity{}
	for _, t := range tasks {
		if !t.IsOverdue(now) {
			continue
		}
		delayed = append(delayed, DelayedActivity{
			TaskID:          t.ID,
			Name:            t.Name,
			FinishDate:      t.Finish,
			PercentComplete: t.PercentComplete,
			DaysDelayed:     t.DaysOverdue(now),
			Resources:       append([]string{}, t.ResourceNames...),
		})
	}

	if metrics == nil {
		metrics = []resource.Stats{}
	}

	score := ComplianceScore(len(activities), len(tasks), len(missing), len(delayed))

	recs := []string{}
	if len(missing) > 0 {
		recs = append(recs, i18n.Render(loc, i18n.ContractAddMissing, i18n.Args{Count: len(missing)}))
	}
	if len(delayed) > 0 {
		recs = append(recs, i18n.Render(loc, i18n.ContractExpediteDelayed, i18n.Args{Count: len(delayed)}))
	}
	if resource.AnyBelow(metrics, reviewProductivity) {
		recs = append(recs, i18n.Text(loc, i18n.ContractReviewResources))
	}
	if score < complianceThreshold {
		recs = append(recs, i18n.Text(loc, i18n.ContractLowCompliance))
	}

	summary := i18n.Render(loc, i18n.ContractSummary, i18n.Args{
		Tasks:      len(tasks),
		Activities: len(activities),
		Delayed:    len(delayed),
		Missing:    len(missing),
		Score:      score,
	})

	return Comparison{
		Summary:             summary,
		DelayedActivities:   delayed,
		MissingActivities:   missing,
		ExtraActivities:     extra,
		ProductivityMetrics: metrics,
		ComplianceScore:     score,
		Recommendations:     recs,
		Suggestions:         Suggest(missing, tasks),
	}
}

// ComplianceScore is 100 minus the share of issues (missing activities plus
// delayed tasks) among all contract activities and tasks, floored at 0.
// With nothing to compare it is 100.
func ComplianceScore(activities, tasks, missing, delayed int) float64 {
	total := activities + tasks
	if total == 0 {
		return 100
	}
	issues := float64(missing + delayed)
	return min(max(0, 100-issues/float64(total)*100), 100)
}

func anyTask(activity string, tasks []model.Task) bool {
	for _, t := range tasks {
		if Matches(activity, t.Name) {
			return true
		}
	}
	return false
}

func anyActivity(taskName string, activities []string) bool {
	for _, a := range activities {
		if Matches(a, taskName) {
			return true
		}
	}
	return false
}
