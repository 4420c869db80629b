// Package risk scores delay risk for schedule tasks and summarizes it for a project.
//
// Scoring is a fixed rule table: six independent factors each add 0-3 points,
// and the accumulated points map onto a 1-5 level. Completed tasks are always
// level 1. The evaluation time is passed in explicitly so results are
// reproducible.
package risk

import (
	"time"

	"github.com/harrisonrobin/planus/pkg/i18n"
)

// Level is a delay risk level from 1 (lowest) to 5 (highest).
type Level int

const (
	LevelVeryLow  Level = 1
	LevelLow      Level = 2
	LevelMedium   Level = 3
	LevelHigh     Level = 4
	LevelCritical Level = 5
)

// Levels lists every level in ascending order.
func Levels() []Level {
	return []Level{LevelVeryLow, LevelLow, LevelMedium, LevelHigh, LevelCritical}
}

// IsValid reports whether l is within 1..5.
func (l Level) IsValid() bool {
	return l >= LevelVeryLow && l <= LevelCritical
}

var levelMessages = map[Level]i18n.Message{
	LevelVeryLow:  i18n.RiskLevel1,
	LevelLow:      i18n.RiskLevel2,
	LevelMedium:   i18n.RiskLevel3,
	LevelHigh:     i18n.RiskLevel4,
	LevelCritical: i18n.RiskLevel5,
}

// Description returns the localized label for the level.
func (l Level) Description(loc i18n.Locale) string {
	msg, ok := levelMessages[l]
	if !ok {
		return "Unknown Risk"
	}
	return i18n.Text(loc, msg)
}

// FactorCode identifies the rule that produced a factor.
type FactorCode string

const (
	FactorOverdue             FactorCode = "overdue"
	FactorRecentOverdue       FactorCode = "recent_overdue"
	FactorBehindSchedule      FactorCode = "behind_schedule"
	FactorLagging             FactorCode = "lagging"
	FactorLongDuration        FactorCode = "long_duration"
	FactorNoResources         FactorCode = "no_resources"
	FactorShouldStart         FactorCode = "should_start"
	FactorStartPassed         FactorCode = "start_passed"
	FactorApproachingDeadline FactorCode = "approaching_deadline"
	FactorApproachingLow      FactorCode = "approaching_low"
	FactorCompleted           FactorCode = "completed"
	FactorAmpleTime           FactorCode = "ample_time"
	FactorGoodProgress        FactorCode = "good_progress"
)

// Factor is one triggered rule. Positive factors carry zero points.
type Factor struct {
	Code    FactorCode `json:"code" yaml:"code"`
	Points  int        `json:"points" yaml:"points"`
	Message string     `json:"message" yaml:"message"`
}

// Assessment is the risk evaluation of a single task.
type Assessment struct {
	TaskID          string    `json:"task_id" yaml:"task_id"`
	TaskName        string    `json:"task_name" yaml:"task_name"`
	Level           Level     `json:"risk_level" yaml:"risk_level"`
	Description     string    `json:"risk_description" yaml:"risk_description"`
	Score           int       `json:"risk_score" yaml:"risk_score"`
	Factors         []Factor  `json:"risk_factors" yaml:"risk_factors"`
	PercentComplete int       `json:"percent_complete" yaml:"percent_complete"`
	Start           time.Time `json:"start_date,omitzero" yaml:"start_date,omitempty"`
	Finish          time.Time `json:"finish_date,omitzero" yaml:"finish_date,omitempty"`
	Resources       []string  `json:"resources" yaml:"resources"`
}

// FactorMessages returns the human-readable factor strings in order.
func (a Assessment) FactorMessages() []string {
	out := make([]string, len(a.Factors))
	for i, f := range a.Factors {
		out[i] = f.Message
	}
	return out
}

// HasFactor reports whether the rule identified by code fired.
func (a Assessment) HasFactor(code FactorCode) bool {
	for _, f := range a.Factors {
		if f.Code == code {
			return true
		}
	}
	return false
}
