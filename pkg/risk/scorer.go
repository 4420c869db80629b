package risk

import (
	"time"

	"github.com/harrisonrobin/planus/pkg/i18n"
	"github.com/harrisonrobin/planus/pkg/model"
)

// Rule thresholds. Durations are compared in whatever unit the schedule
// parser emits (hours for MS Project XML).
const (
	overdueSevereDays   = 30
	overdueModerateDays = 7
	minTimeProgress     = 0.1
	severeProgressGap   = 0.4
	moderateProgressGap = 0.2
	longDuration        = 60.0
	lateStartDays       = 7
	deadlineNearDays    = 7
	deadlineNearPercent = 80
	deadlineSoonDays    = 14
	deadlineSoonPercent = 50
	ampleTimeDays       = 30
	goodProgressPercent = 50
)

// Scorer evaluates tasks and renders factor messages in a single locale.
type Scorer struct {
	locale i18n.Locale
}

// NewScorer returns a Scorer producing messages in loc.
func NewScorer(loc i18n.Locale) *Scorer {
	return &Scorer{locale: loc}
}

// LevelForScore maps accumulated points onto a risk level:
// 0 -> 1, 1 -> 2, 2-3 -> 3, 4-5 -> 4, 6+ -> 5.
func LevelForScore(score int) Level {
	switch {
	case score >= 6:
		return LevelCritical
	case score >= 4:
		return LevelHigh
	case score >= 2:
		return LevelMedium
	case score >= 1:
		return LevelLow
	default:
		return LevelVeryLow
	}
}

// AssessAll scores every task in order.
func (s *Scorer) AssessAll(tasks []model.Task, now time.Time) []Assessment {
	out := make([]Assessment, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, s.Score(t, now))
	}
	return out
}

// Score evaluates a single task at time now.
func (s *Scorer) Score(task model.Task, now time.Time) Assessment {
	var (
		score   int
		factors []Factor
	)
	add := func(code FactorCode, points int, msg i18n.Message, args i18n.Args) {
		score += points
		factors = append(factors, Factor{Code: code, Points: points, Message: i18n.Render(s.locale, msg, args)})
	}
	pct := task.PercentComplete

	// Already past the finish date.
	if task.IsOverdue(now) {
		days := task.DaysOverdue(now)
		switch {
		case days > overdueSevereDays:
			add(FactorOverdue, 3, i18n.FactorOverdue, i18n.Args{Days: days})
		case days > overdueModerateDays:
			add(FactorOverdue, 2, i18n.FactorOverdue, i18n.Args{Days: days})
		default:
			add(FactorRecentOverdue, 1, i18n.FactorRecentOverdue, i18n.Args{Days: days})
		}
	}

	// Work progress against elapsed time.
	if task.HasStart() && task.HasFinish() && !task.Start.After(now) {
		total := task.Finish.Sub(task.Start)
		if total > 0 {
			timeRatio := min(float64(now.Sub(task.Start))/float64(total), 1.0)
			workRatio := float64(pct) / 100.0
			if timeRatio > minTimeProgress {
				gap := timeRatio - workRatio
				switch {
				case gap > severeProgressGap:
					add(FactorBehindSchedule, 2, i18n.FactorBehindSchedule,
						i18n.Args{Percent: pct, TimePercent: int(timeRatio * 100)})
				case gap > moderateProgressGap:
					add(FactorLagging, 1, i18n.FactorLagging, i18n.Args{})
				}
			}
		}
	}

	if task.Duration > longDuration {
		add(FactorLongDuration, 1, i18n.FactorLongDuration, i18n.Args{Duration: int(task.Duration)})
	}

	if len(task.ResourceNames) == 0 {
		add(FactorNoResources, 1, i18n.FactorNoResources, i18n.Args{})
	}

	// Start date passed with no progress.
	if task.HasStart() && task.Start.Before(now) && pct == 0 {
		days := model.WholeDays(now.Sub(task.Start))
		if days > lateStartDays {
			add(FactorShouldStart, 2, i18n.FactorShouldStart, i18n.Args{Days: days})
		} else {
			add(FactorStartPassed, 1, i18n.FactorStartPassed, i18n.Args{Days: days})
		}
	}

	// Deadline close with little done. The second window only applies when
	// the first did not fire.
	if task.HasFinish() && task.Finish.After(now) {
		days := model.WholeDays(task.Finish.Sub(now))
		switch {
		case days <= deadlineNearDays && pct < deadlineNearPercent:
			add(FactorApproachingDeadline, 2, i18n.FactorApproachingDeadline, i18n.Args{Days: days, Percent: pct})
		case days <= deadlineSoonDays && pct < deadlineSoonPercent:
			add(FactorApproachingLow, 1, i18n.FactorApproachingLow, i18n.Args{Days: days, Percent: pct})
		}
	}

	level := LevelForScore(score)

	if task.IsComplete() {
		level = LevelVeryLow
		factors = []Factor{{Code: FactorCompleted, Message: i18n.Text(s.locale, i18n.FactorCompleted)}}
	} else if level <= LevelLow && pct > 0 {
		if task.HasFinish() && task.Finish.After(now) {
			if days := model.WholeDays(task.Finish.Sub(now)); days > ampleTimeDays {
				factors = append(factors, Factor{Code: FactorAmpleTime,
					Message: i18n.Render(s.locale, i18n.FactorAmpleTime, i18n.Args{Days: days})})
			}
		}
		if pct >= goodProgressPercent {
			factors = append(factors, Factor{Code: FactorGoodProgress,
				Message: i18n.Render(s.locale, i18n.FactorGoodProgress, i18n.Args{Percent: pct})})
		}
	}

	if factors == nil {
		factors = []Factor{}
	}

	return Assessment{
		TaskID:          task.ID,
		TaskName:        task.Name,
		Level:           level,
		Description:     level.Description(s.locale),
		Score:           score,
		Factors:         factors,
		PercentComplete: pct,
		Start:           task.Start,
		Finish:          task.Finish,
		Resources:       append([]string{}, task.ResourceNames...),
	}
}
