package msproject

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrisonrobin/planus/pkg/model"
)

const sampleProject = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Project xmlns="http://schemas.microsoft.com/project">
  <Name>bridge.xml</Name>
  <Title>River Bridge</Title>
  <Tasks>
    <Task>
      <UID>0</UID>
      <Name>River Bridge</Name>
      <Duration>PT80H0M0S</Duration>
      <PercentComplete>25</PercentComplete>
    </Task>
    <Task>
      <UID>1</UID>
      <Name>Foundations</Name>
      <Start>2024-03-01T08:00:00</Start>
      <Finish>2024-03-15T17:00:00</Finish>
      <Duration>PT88H30M0S</Duration>
      <PercentComplete>60</PercentComplete>
    </Task>
    <Task>
      <UID>2</UID>
      <Name>Deck</Name>
      <Start>2024-03-18T08:00:00</Start>
      <Finish>not a date</Finish>
      <Duration>PT16H0M0S</Duration>
      <PredecessorLink>
        <PredecessorUID>1</PredecessorUID>
        <Type>1</Type>
      </PredecessorLink>
      <PredecessorLink>
        <PredecessorUID>0</PredecessorUID>
      </PredecessorLink>
    </Task>
    <Task>
      <UID>3</UID>
    </Task>
    <Task>
      <Name>No uid</Name>
    </Task>
  </Tasks>
  <Resources>
    <Resource><UID>1</UID><Name>Ana</Name></Resource>
    <Resource><UID>2</UID><Name>Crane crew</Name></Resource>
    <Resource><UID>3</UID></Resource>
  </Resources>
  <Assignments>
    <Assignment><TaskUID>1</TaskUID><ResourceUID>2</ResourceUID></Assignment>
    <Assignment><TaskUID>1</TaskUID><ResourceUID>1</ResourceUID></Assignment>
    <Assignment><TaskUID>2</TaskUID><ResourceUID>3</ResourceUID></Assignment>
    <Assignment><TaskUID>2</TaskUID><ResourceUID>99</ResourceUID></Assignment>
  </Assignments>
</Project>`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(sampleProject), time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "River Bridge", s.Name)
	require.Len(t, s.Tasks, 3)

	summary := s.Tasks[0]
	assert.Equal(t, "0", summary.ID)
	assert.Equal(t, 80.0, summary.Duration)
	assert.False(t, summary.HasStart())

	found := s.Tasks[1]
	assert.Equal(t, "Foundations", found.Name)
	assert.Equal(t, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), found.Start)
	assert.Equal(t, time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC), found.Finish)
	assert.InDelta(t, 88.5, found.Duration, 1e-9)
	assert.Equal(t, 60, found.PercentComplete)
	assert.Equal(t, []string{"Crane crew", "Ana"}, found.ResourceNames)
	assert.Empty(t, found.Predecessors)

	deck := s.Tasks[2]
	assert.True(t, deck.HasStart())
	assert.False(t, deck.HasFinish(), "unparseable dates are absent")
	assert.Equal(t, 0, deck.PercentComplete)
	assert.Empty(t, deck.ResourceNames)
	assert.NotNil(t, deck.ResourceNames)
	assert.Equal(t, []string{"1", "0"}, deck.Predecessors)
}

func TestParseWithoutNamespace(t *testing.T) {
	doc := `<Project><Name>plain</Name><Tasks><Task><UID>7</UID><Name>Only</Name></Task></Tasks></Project>`
	s, err := Parse(strings.NewReader(doc), nil)
	require.NoError(t, err)
	assert.Equal(t, "plain", s.Name)
	require.Len(t, s.Tasks, 1)
	assert.Equal(t, "7", s.Tasks[0].ID)
	assert.Zero(t, s.Tasks[0].Duration)
}

func TestParseLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	doc := `<Project><Tasks><Task><UID>1</UID><Name>A</Name><Start>2024-01-10T08:00:00</Start><Finish>2024-01-10T17:00:00Z</Finish></Task></Tasks></Project>`
	s, err := Parse(strings.NewReader(doc), loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC), s.Tasks[0].Start.UTC())
	assert.Equal(t, time.Date(2024, 1, 10, 17, 0, 0, 0, time.UTC), s.Tasks[0].Finish.UTC())
}

func TestParseEmptyProject(t *testing.T) {
	s, err := Parse(strings.NewReader(`<Project/>`), time.UTC)
	require.NoError(t, err)
	assert.Empty(t, s.Tasks)
	assert.NotNil(t, s.Tasks)
}

func TestParseUnreadableDurationIsZero(t *testing.T) {
	doc := `<Project><Tasks>
  <Task><UID>1</UID><Name>A</Name><Duration>8 hours</Duration><PercentComplete>20</PercentComplete></Task>
  <Task><UID>2</UID><Name>B</Name><Duration>PT8H0M0S</Duration></Task>
</Tasks></Project>`
	s, err := Parse(strings.NewReader(doc), time.UTC)
	require.NoError(t, err)
	require.Len(t, s.Tasks, 2)
	assert.Zero(t, s.Tasks[0].Duration)
	assert.Equal(t, 20, s.Tasks[0].PercentComplete)
	assert.Equal(t, 8.0, s.Tasks[1].Duration)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		element string
	}{
		{"bad percent", `<Project><Tasks><Task><UID>1</UID><Name>A</Name><PercentComplete>half</PercentComplete></Task></Tasks></Project>`, "PercentComplete"},
		{"percent out of range", `<Project><Tasks><Task><UID>1</UID><Name>A</Name><PercentComplete>140</PercentComplete></Task></Tasks></Project>`, "PercentComplete"},
		{"duplicate uid", `<Project><Tasks><Task><UID>1</UID><Name>A</Name></Task><Task><UID>1</UID><Name>B</Name></Task></Tasks></Project>`, "UID"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.doc), time.UTC)
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "got %v", err)
			assert.Equal(t, tc.element, pe.Element)
			assert.Equal(t, "1", pe.UID)
		})
	}

	_, err := Parse(strings.NewReader(`<Project><Tasks>`), time.UTC)
	assert.ErrorContains(t, err, "failed to decode project xml")

	var pe *ParseError
	_, err = Parse(strings.NewReader(`<Project><Tasks><Task><UID>1</UID><Name>A</Name><PercentComplete>101</PercentComplete></Task></Tasks></Project>`), time.UTC)
	require.True(t, errors.As(err, &pe))
	assert.ErrorIs(t, err, model.ErrInvalidTask)
}

func TestInvalidElement(t *testing.T) {
	assert.Equal(t, "PercentComplete", invalidElement(model.Task{PercentComplete: 140}))
	assert.Equal(t, "PercentComplete", invalidElement(model.Task{PercentComplete: -1, Duration: -2}))
	assert.Equal(t, "Duration", invalidElement(model.Task{PercentComplete: 50, Duration: -2}))
}
