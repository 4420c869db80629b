package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskValidate(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr bool
	}{
		{name: "valid", task: Task{ID: "1", PercentComplete: 50, Duration: 8}},
		{name: "zero values", task: Task{ID: "2"}},
		{name: "complete", task: Task{ID: "3", PercentComplete: 100}},
		{name: "negative percent", task: Task{ID: "4", PercentComplete: -1}, wantErr: true},
		{name: "percent over 100", task: Task{ID: "5", PercentComplete: 101}, wantErr: true},
		{name: "negative duration", task: Task{ID: "6", Duration: -0.5}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.task.Validate()
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTask)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTaskIsOverdue(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	overdue := Task{Finish: now.Add(-40 * 24 * time.Hour), PercentComplete: 50}
	assert.True(t, overdue.IsOverdue(now))
	assert.Equal(t, 40, overdue.DaysOverdue(now))

	done := Task{Finish: now.Add(-40 * 24 * time.Hour), PercentComplete: 100}
	assert.False(t, done.IsOverdue(now))

	future := Task{Finish: now.Add(time.Hour)}
	assert.False(t, future.IsOverdue(now))

	noFinish := Task{PercentComplete: 10}
	assert.False(t, noFinish.IsOverdue(now))
}

func TestWholeDaysTruncates(t *testing.T) {
	assert.Equal(t, 0, WholeDays(23*time.Hour))
	assert.Equal(t, 1, WholeDays(47*time.Hour))
	assert.Equal(t, 7, WholeDays(7*24*time.Hour))
}

func TestCloneTasksIsDeep(t *testing.T) {
	orig := []Task{{ID: "1", ResourceNames: []string{"Ana"}, Predecessors: []string{"0"}}}
	clone := CloneTasks(orig)

	clone[0].ResourceNames[0] = "Bruno"
	clone[0].Predecessors = append(clone[0].Predecessors, "9")
	clone[0].Name = "changed"

	assert.Equal(t, "Ana", orig[0].ResourceNames[0])
	assert.Equal(t, []string{"0"}, orig[0].Predecessors)
	assert.Empty(t, orig[0].Name)
	assert.Nil(t, CloneTasks(nil))
}
