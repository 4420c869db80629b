package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrisonrobin/planus/pkg/i18n"
)

func withLevels(levels ...Level) []Assessment {
	out := make([]Assessment, len(levels))
	for i, l := range levels {
		out[i] = Assessment{TaskID: string(rune('a' + i)), Level: l}
	}
	return out
}

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil, i18n.English)

	assert.Equal(t, 0, s.TotalTasks)
	assert.Equal(t, 0.0, s.AverageScore)
	assert.Equal(t, LevelVeryLow, s.ProjectLevel)
	assert.Len(t, s.Distribution, 5)
	for _, l := range Levels() {
		assert.Zero(t, s.Distribution[l])
	}
	assert.Empty(t, s.HighRisk)
	assert.NotNil(t, s.HighRisk)
	assert.Equal(t, "✅ LOW RISK: Project is on track with minimal delay risk.", s.Summary)
}

func TestAggregateProjectLevelRounding(t *testing.T) {
	tests := []struct {
		name   string
		levels []Level
		avg    float64
		want   Level
	}{
		{"exact", []Level{3, 3}, 3, 3},
		{"half down to even", []Level{2, 3}, 2.5, 2},
		{"half up to even", []Level{3, 4}, 3.5, 4},
		{"below half", []Level{1, 1, 2}, 4.0 / 3.0, 1},
		{"above half", []Level{4, 5, 5}, 14.0 / 3.0, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Aggregate(withLevels(tc.levels...), i18n.English)
			assert.InDelta(t, tc.avg, s.AverageScore, 1e-9)
			assert.Equal(t, tc.want, s.ProjectLevel)
		})
	}
}

func TestAggregateDistributionAndHighRisk(t *testing.T) {
	s := Aggregate(withLevels(1, 4, 2, 5, 4, 3), i18n.English)

	assert.Equal(t, map[Level]int{1: 1, 2: 1, 3: 1, 4: 2, 5: 1}, s.Distribution)
	assert.Equal(t, 6, s.TotalTasks)

	sum := 0
	for _, n := range s.Distribution {
		sum += n
	}
	assert.Equal(t, s.TotalTasks, sum)

	require.Len(t, s.HighRisk, 3)
	assert.Equal(t, []string{"b", "d", "e"}, []string{s.HighRisk[0].TaskID, s.HighRisk[1].TaskID, s.HighRisk[2].TaskID})
}

func TestAggregateSortsByRiskStably(t *testing.T) {
	in := withLevels(2, 5, 2, 4, 5)
	s := Aggregate(in, i18n.English)

	var ids []string
	for _, a := range s.ByRisk {
		ids = append(ids, a.TaskID)
	}
	assert.Equal(t, []string{"b", "e", "d", "a", "c"}, ids)
	// Input order is untouched.
	assert.Equal(t, "a", in[0].TaskID)
}

func TestAggregateSummaryPriority(t *testing.T) {
	tests := []struct {
		name   string
		levels []Level
		want   string
	}{
		{"critical wins", []Level{5, 4, 4, 3}, "⚠️ CRITICAL: 1 activities certain to delay. Immediate intervention required!"},
		{"high", []Level{4, 4, 3, 1}, "⚠️ HIGH RISK: 2 activities likely to delay. Close monitoring needed."},
		{"medium", []Level{3, 3, 3, 2}, "⚡ MEDIUM RISK: 3 activities need monitoring."},
		{"low", []Level{1, 2, 2}, "✅ LOW RISK: Project is on track with minimal delay risk."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Aggregate(withLevels(tc.levels...), i18n.English).Summary)
		})
	}
}

func TestAggregateLocalizedSummary(t *testing.T) {
	s := Aggregate(withLevels(4), i18n.Portuguese)
	assert.Equal(t, "⚠️ ALTO RISCO: 1 atividades com provável atraso. Monitoramento próximo necessário.", s.Summary)
}

func TestLevelDescription(t *testing.T) {
	assert.Equal(t, "Very Low Risk - On Track", LevelVeryLow.Description(i18n.English))
	assert.Equal(t, "Risco Crítico - Atraso Certo", LevelCritical.Description(i18n.Portuguese))
	assert.Equal(t, "Unknown Risk", Level(9).Description(i18n.English))
	assert.False(t, Level(0).IsValid())
	assert.True(t, LevelMedium.IsValid())
}
