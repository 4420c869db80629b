package analysis

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harrisonrobin/planus/pkg/contract"
	"github.com/harrisonrobin/planus/pkg/model"
	"github.com/harrisonrobin/planus/pkg/msproject"
	"github.com/harrisonrobin/planus/pkg/taskjson"
)

// LoadSchedule reads an MS Project XML (.xml) or task JSON (.json) file.
// Zone-less dates are read in loc. A schedule without a name is named after
// the file.
func LoadSchedule(path string, loc *time.Location) (*model.Schedule, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xml" && ext != ".json" {
		return nil, &StageError{Stage: StageReadSchedule, Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedSchedule, ext)}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &StageError{Stage: StageReadSchedule, Path: path, Err: err}
	}
	defer file.Close()

	var schedule *model.Schedule
	switch ext {
	case ".xml":
		schedule, err = msproject.Parse(file, loc)
	case ".json":
		var tasks []model.Task
		tasks, err = taskjson.ParseTasks(file, loc)
		schedule = &model.Schedule{Tasks: tasks}
	}
	if err != nil {
		return nil, &StageError{Stage: StageParseSchedule, Path: path, Err: err}
	}
	if schedule.Name == "" {
		schedule.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return schedule, nil
}

// LoadContract reads a contract document and extracts its activities.
// Missing files and unsupported formats fail in the read stage; undecodable
// documents fail in the extract stage.
func LoadContract(path string) (*contract.Document, error) {
	doc, err := contract.Load(path)
	if err != nil {
		stage := StageExtractContract
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) || errors.Is(err, contract.ErrUnsupportedFormat) {
			stage = StageReadContract
		}
		return nil, &StageError{Stage: stage, Path: path, Err: err}
	}
	return &doc, nil
}
