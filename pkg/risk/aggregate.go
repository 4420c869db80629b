package risk

import (
	"math"
	"sort"

	"github.com/harrisonrobin/planus/pkg/i18n"
)

// Summary is the project-level view of a set of assessments.
type Summary struct {
	Distribution map[Level]int `json:"risk_distribution" yaml:"risk_distribution"`
	AverageScore float64       `json:"average_risk_score" yaml:"average_risk_score"`
	ProjectLevel Level         `json:"project_risk_level" yaml:"project_risk_level"`
	HighRisk     []Assessment  `json:"high_risk_tasks" yaml:"high_risk_tasks"`
	ByRisk       []Assessment  `json:"tasks_by_risk" yaml:"tasks_by_risk"`
	Summary      string        `json:"summary" yaml:"summary"`
	TotalTasks   int           `json:"total_tasks_analyzed" yaml:"total_tasks_analyzed"`
}

// Aggregate summarizes per-task assessments.
//
// The project level is the mean task level rounded half to even (2.5 -> 2,
// 3.5 -> 4). An empty input yields an average of 0 and project level 1.
func Aggregate(assessments []Assessment, loc i18n.Locale) Summary {
	dist := make(map[Level]int, len(Levels()))
	for _, l := range Levels() {
		dist[l] = 0
	}

	high := []Assessment{}
	total := 0
	for _, a := range assessments {
		dist[a.Level]++
		total += int(a.Level)
		if a.Level >= LevelHigh {
			high = append(high, a)
		}
	}

	avg := 0.0
	project := LevelVeryLow
	if n := len(assessments); n > 0 {
		avg = float64(total) / float64(n)
		project = Level(math.RoundToEven(avg))
	}

	byRisk := append([]Assessment{}, assessments...)
	sort.SliceStable(byRisk, func(i, j int) bool {
		return byRisk[i].Level > byRisk[j].Level
	})

	return Summary{
		Distribution: dist,
		AverageScore: avg,
		ProjectLevel: project,
		HighRisk:     high,
		ByRisk:       byRisk,
		Summary:      summaryText(dist, loc),
		TotalTasks:   len(assessments),
	}
}

func summaryText(dist map[Level]int, loc i18n.Locale) string {
	switch {
	case dist[LevelCritical] > 0:
		return i18n.Render(loc, i18n.RiskSummaryCritical, i18n.Args{Count: dist[LevelCritical]})
	case dist[LevelHigh] > 0:
		return i18n.Render(loc, i18n.RiskSummaryHigh, i18n.Args{Count: dist[LevelHigh]})
	case dist[LevelMedium] > 0:
		return i18n.Render(loc, i18n.RiskSummaryMedium, i18n.Args{Count: dist[LevelMedium]})
	default:
		return i18n.Text(loc, i18n.RiskSummaryLow)
	}
}
