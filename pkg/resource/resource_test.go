package resource

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrisonrobin/planus/pkg/i18n"
	"github.com/harrisonrobin/planus/pkg/model"
)

func TestAnalyzeCountsAndHours(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Duration: 8, ResourceNames: []string{"Bia", "Ana"}},
		{ID: "2", Duration: 16, ResourceNames: []string{"Ana"}},
		{ID: "3", Duration: 4},
	}

	u := Analyze(tasks, i18n.English)

	assert.Equal(t, []string{"Bia", "Ana"}, u.Resources)
	assert.Equal(t, map[string]int{"Ana": 2, "Bia": 1}, u.TaskCounts)
	// Shared task 1 is counted in full for both resources.
	assert.Equal(t, map[string]float64{"Ana": 24, "Bia": 8}, u.Hours)
	assert.Empty(t, u.Overloaded)
	assert.Equal(t, "Analyzed 2 resources.", u.Summary)
}

func TestAnalyzeOverloaded(t *testing.T) {
	var tasks []model.Task
	for i := 0; i < 6; i++ {
		tasks = append(tasks, model.Task{ID: fmt.Sprint(i), ResourceNames: []string{"Zé", "Carla"}})
	}
	tasks = append(tasks, model.Task{ID: "x", ResourceNames: []string{"Dora"}})
	// Exactly at the threshold is not overloaded.
	for i := 0; i < 4; i++ {
		tasks = append(tasks, model.Task{ID: fmt.Sprint("d", i), ResourceNames: []string{"Dora"}})
	}

	u := Analyze(tasks, i18n.Portuguese)

	assert.Equal(t, 5, u.TaskCounts["Dora"])
	assert.Equal(t, []string{"Carla", "Zé"}, u.Overloaded)
	assert.True(t, u.IsOverloaded("Carla"))
	assert.False(t, u.IsOverloaded("Dora"))
	assert.Equal(t, "Analisados 3 recursos.", u.Summary)
}

func TestAnalyzeEmpty(t *testing.T) {
	u := Analyze(nil, i18n.Spanish)
	assert.Empty(t, u.Resources)
	assert.NotNil(t, u.TaskCounts)
	assert.NotNil(t, u.Overloaded)
	assert.Equal(t, "Analizados 0 recursos.", u.Summary)
}

func TestStatusForThresholds(t *testing.T) {
	tests := []struct {
		index float64
		want  Status
	}{
		{0, StatusDelayed},
		{0.49999, StatusDelayed},
		{0.5, StatusNormal},
		{0.79999, StatusNormal},
		{0.8, StatusEfficient},
		{1, StatusEfficient},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, StatusFor(tc.index), "index %v", tc.index)
	}
}

func TestProductivityAllCompleted(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Duration: 8, PercentComplete: 100, ResourceNames: []string{"Ana", "Bia"}},
		{ID: "2", Duration: 3, PercentComplete: 100, ResourceNames: []string{"Ana"}},
		{ID: "3", Duration: 5, PercentComplete: 100, ResourceNames: []string{"Caio"}},
	}

	stats := Productivity(tasks)

	require.Len(t, stats, 3)
	for _, s := range stats {
		assert.Equal(t, 1.0, s.ProductivityIndex, s.ResourceName)
		assert.Equal(t, StatusEfficient, s.Status, s.ResourceName)
		assert.Equal(t, s.AssignedTasks, s.CompletedTasks, s.ResourceName)
	}
}

func TestProductivityPartialCompletion(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Duration: 10, PercentComplete: 100, ResourceNames: []string{"Ana"}},
		{ID: "2", Duration: 10, PercentComplete: 50, ResourceNames: []string{"Ana", "Bia"}},
		{ID: "3", Duration: 20, PercentComplete: 0, ResourceNames: []string{"Bia"}},
		{ID: "4", Duration: 0, PercentComplete: 30, ResourceNames: []string{"Caio"}},
	}

	stats := Productivity(tasks)
	require.Len(t, stats, 3)

	// Ascending by index; Caio (0, no duration) ties with nobody and comes first.
	assert.Equal(t, "Caio", stats[0].ResourceName)
	assert.Equal(t, 0.0, stats[0].ProductivityIndex)
	assert.Equal(t, StatusDelayed, stats[0].Status)

	bia := stats[1]
	assert.Equal(t, "Bia", bia.ResourceName)
	assert.Equal(t, 2, bia.AssignedTasks)
	assert.Equal(t, 0, bia.CompletedTasks)
	assert.InDelta(t, 30.0, bia.TotalDuration, 1e-9)
	assert.InDelta(t, 5.0, bia.CompletedDuration, 1e-9)
	assert.InDelta(t, 5.0/30.0, bia.ProductivityIndex, 1e-9)
	assert.Equal(t, StatusDelayed, bia.Status)

	ana := stats[2]
	assert.Equal(t, "Ana", ana.ResourceName)
	assert.Equal(t, 1, ana.CompletedTasks)
	assert.InDelta(t, 0.75, ana.ProductivityIndex, 1e-9)
	assert.Equal(t, StatusNormal, ana.Status)

	assert.True(t, AnyBelow(stats, 0.5))
	assert.False(t, AnyBelow(stats[2:], 0.5))
}

func TestProductivityIndexBounded(t *testing.T) {
	var tasks []model.Task
	for pct := 0; pct <= 100; pct += 7 {
		tasks = append(tasks, model.Task{Duration: float64(pct%13 + 1), PercentComplete: pct, ResourceNames: []string{fmt.Sprint("r", pct%4)}})
	}
	for _, s := range Productivity(tasks) {
		assert.GreaterOrEqual(t, s.ProductivityIndex, 0.0)
		assert.LessOrEqual(t, s.ProductivityIndex, 1.0)
		assert.Equal(t, StatusFor(s.ProductivityIndex), s.Status)
	}
}

func TestProductivityStableOrderOnTies(t *testing.T) {
	tasks := []model.Task{
		{Duration: 1, ResourceNames: []string{"c"}},
		{Duration: 1, ResourceNames: []string{"a"}},
		{Duration: 1, ResourceNames: []string{"b"}},
	}
	stats := Productivity(tasks)
	require.Len(t, stats, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{stats[0].ResourceName, stats[1].ResourceName, stats[2].ResourceName})
}

func TestProductivityEmpty(t *testing.T) {
	assert.Empty(t, Productivity(nil))
	assert.NotNil(t, Productivity(nil))
}
