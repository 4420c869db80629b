// Package resource folds task assignments into per-resource workload and
// productivity figures.
package resource

import (
	"sort"

	"github.com/harrisonrobin/planus/pkg/i18n"
	"github.com/harrisonrobin/planus/pkg/model"
)

// OverloadThreshold is the task count above which a resource is overloaded.
const OverloadThreshold = 5

// Utilization is the workload view of every resource named in a schedule.
type Utilization struct {
	// Resources lists resource names in first-seen order.
	Resources []string `json:"resources" yaml:"resources"`
	// TaskCounts maps a resource to the number of tasks assigned to it.
	TaskCounts map[string]int `json:"utilization" yaml:"utilization"`
	// Hours maps a resource to the summed duration of its tasks. Every task
	// contributes its full duration to each co-assigned resource, so effort
	// on shared tasks is counted once per resource.
	Hours map[string]float64 `json:"total_hours" yaml:"total_hours"`
	// Overloaded lists resources with more than OverloadThreshold tasks, by name.
	Overloaded []string `json:"overloaded_resources" yaml:"overloaded_resources"`
	Summary    string   `json:"summary" yaml:"summary"`
}

// Analyze computes task counts, hours and overload flags per resource.
func Analyze(tasks []model.Task, loc i18n.Locale) Utilization {
	u := Utilization{
		Resources:  []string{},
		TaskCounts: map[string]int{},
		Hours:      map[string]float64{},
		Overloaded: []string{},
	}
	for _, t := range tasks {
		for _, name := range t.ResourceNames {
			if _, seen := u.TaskCounts[name]; !seen {
				u.Resources = append(u.Resources, name)
			}
			u.TaskCounts[name]++
			u.Hours[name] += t.Duration
		}
	}
	for name, n := range u.TaskCounts {
		if n > OverloadThreshold {
			u.Overloaded = append(u.Overloaded, name)
		}
	}
	sort.Strings(u.Overloaded)
	u.Summary = i18n.Render(loc, i18n.ResourceSummary, i18n.Args{Count: len(u.Resources)})
	return u
}

// IsOverloaded reports whether name is in the overloaded list.
func (u Utilization) IsOverloaded(name string) bool {
	i := sort.SearchStrings(u.Overloaded, name)
	return i < len(u.Overloaded) && u.Overloaded[i] == name
}
