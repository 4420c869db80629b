package analysis

import (
	"errors"
	"fmt"
)

// Stage names the step of an analysis that failed.
type Stage string

const (
	StageReadSchedule    Stage = "read_schedule"
	StageParseSchedule   Stage = "parse_schedule"
	StageReadContract    Stage = "read_contract"
	StageExtractContract Stage = "extract_contract"
	StageAnalyze         Stage = "analyze"
	StageRender          Stage = "render"
	StageExport          Stage = "export"
)

// ErrUnsupportedSchedule is returned for schedule files that are neither
// MS Project XML nor task JSON.
var ErrUnsupportedSchedule = errors.New("unsupported schedule format")

// StageError wraps a failure with the stage and, when relevant, the file involved.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// StageOf returns the stage recorded in err, or "" when err carries none.
func StageOf(err error) Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
