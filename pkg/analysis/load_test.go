package analysis

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrisonrobin/planus/pkg/contract"
	"github.com/harrisonrobin/planus/pkg/msproject"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScheduleXML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bridge.xml", `<Project xmlns="http://schemas.microsoft.com/project">
  <Title>River Bridge</Title>
  <Tasks>
    <Task><UID>1</UID><Name>Foundations</Name><Finish>2024-04-22T12:00:00</Finish><Duration>PT40H0M0S</Duration></Task>
  </Tasks>
</Project>`)

	s, err := LoadSchedule(path, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "River Bridge", s.Name)
	require.Len(t, s.Tasks, 1)
	assert.Equal(t, 40.0, s.Tasks[0].Duration)
	assert.Equal(t, time.Date(2024, 4, 22, 12, 0, 0, 0, time.UTC), s.Tasks[0].Finish)
}

func TestLoadScheduleJSONNamedAfterFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Site Plan.JSON", `[{"id": "1", "name": "Survey"}]`)

	s, err := LoadSchedule(path, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "Site Plan", s.Name)
	require.Len(t, s.Tasks, 1)
}

func TestLoadScheduleErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSchedule(writeFile(t, dir, "plan.mpp", "binary"), nil)
	assert.Equal(t, StageReadSchedule, StageOf(err))
	assert.ErrorIs(t, err, ErrUnsupportedSchedule)

	_, err = LoadSchedule(filepath.Join(dir, "absent.xml"), nil)
	assert.Equal(t, StageReadSchedule, StageOf(err))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, dir, "bad.xml", `<Project><Tasks><Task><UID>1</UID><Name>A</Name><PercentComplete>most</PercentComplete></Task></Tasks></Project>`)
	_, err = LoadSchedule(path, nil)
	assert.Equal(t, StageParseSchedule, StageOf(err))
	var pe *msproject.ParseError
	assert.True(t, errors.As(err, &pe))
	assert.Contains(t, err.Error(), "parse_schedule "+path)

	_, err = LoadSchedule(writeFile(t, dir, "bad.json", `{"id": 1}`), nil)
	assert.Equal(t, StageParseSchedule, StageOf(err))
}

func TestLoadContract(t *testing.T) {
	dir := t.TempDir()
	doc, err := LoadContract(writeFile(t, dir, "contract.md", "Activity: Deck\nDeadline: 2024-07-30\nDeliverable: Drawings\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Deck"}, doc.Activities)
	assert.Equal(t, []string{"2024-07-30"}, doc.Deadlines)
	assert.Equal(t, []string{"Drawings"}, doc.Deliverables)
}

func TestLoadContractStages(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadContract(filepath.Join(dir, "absent.docx"))
	assert.Equal(t, StageReadContract, StageOf(err))

	_, err = LoadContract(writeFile(t, dir, "contract.rtf", "{\\rtf1}"))
	assert.Equal(t, StageReadContract, StageOf(err))
	assert.ErrorIs(t, err, contract.ErrUnsupportedFormat)

	_, err = LoadContract(writeFile(t, dir, "contract.docx", "not a zip"))
	assert.Equal(t, StageExtractContract, StageOf(err))
}

func TestStageError(t *testing.T) {
	inner := errors.New("boom")
	assert.Equal(t, "render: boom", (&StageError{Stage: StageRender, Err: inner}).Error())
	assert.Equal(t, "export plan.xml: boom", (&StageError{Stage: StageExport, Path: "plan.xml", Err: inner}).Error())
	assert.ErrorIs(t, &StageError{Stage: StageRender, Err: inner}, inner)
	assert.Equal(t, Stage(""), StageOf(inner))
	assert.Equal(t, Stage(""), StageOf(nil))
}
