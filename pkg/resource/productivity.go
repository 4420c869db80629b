package resource

import (
	"sort"

	"github.com/harrisonrobin/planus/pkg/model"
)

// Status classifies a productivity index.
type Status string

const (
	StatusEfficient Status = "efficient"
	StatusNormal    Status = "normal"
	StatusDelayed   Status = "delayed"
)

const (
	efficientIndex = 0.8
	normalIndex    = 0.5
)

// StatusFor partitions an index: [0.8,1] efficient, [0.5,0.8) normal, below delayed.
func StatusFor(index float64) Status {
	switch {
	case index >= efficientIndex:
		return StatusEfficient
	case index >= normalIndex:
		return StatusNormal
	default:
		return StatusDelayed
	}
}

// Stats is the productivity record of one resource.
type Stats struct {
	ResourceName      string  `json:"resource_name" yaml:"resource_name"`
	AssignedTasks     int     `json:"assigned_tasks" yaml:"assigned_tasks"`
	CompletedTasks    int     `json:"completed_tasks" yaml:"completed_tasks"`
	TotalDuration     float64 `json:"total_duration" yaml:"total_duration"`
	CompletedDuration float64 `json:"completed_duration" yaml:"completed_duration"`
	ProductivityIndex float64 `json:"productivity_index" yaml:"productivity_index"`
	Status            Status  `json:"status" yaml:"status"`
}

// Productivity computes one Stats per distinct resource, ordered by
// ascending productivity index so the weakest resources come first. Ties keep
// first-seen order.
func Productivity(tasks []model.Task) []Stats {
	byName := map[string]*Stats{}
	var order []string

	for _, t := range tasks {
		for _, name := range t.ResourceNames {
			s, ok := byName[name]
			if !ok {
				s = &Stats{ResourceName: name}
				byName[name] = s
				order = append(order, name)
			}
			s.AssignedTasks++
			s.TotalDuration += t.Duration
			switch {
			case t.IsComplete():
				s.CompletedTasks++
				s.CompletedDuration += t.Duration
			case t.PercentComplete > 0:
				s.CompletedDuration += t.Duration * (float64(t.PercentComplete) / 100)
			}
		}
	}

	out := make([]Stats, 0, len(order))
	for _, name := range order {
		s := byName[name]
		if s.TotalDuration > 0 {
			s.ProductivityIndex = min(max(s.CompletedDuration/s.TotalDuration, 0), 1)
		}
		s.Status = StatusFor(s.ProductivityIndex)
		out = append(out, *s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ProductivityIndex < out[j].ProductivityIndex
	})
	return out
}

// AnyBelow reports whether any resource has an index under threshold.
func AnyBelow(stats []Stats, threshold float64) bool {
	for _, s := range stats {
		if s.ProductivityIndex < threshold {
			return true
		}
	}
	return false
}
