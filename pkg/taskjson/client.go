// Package taskjson reads and writes schedules as plain task JSON, either a
// single array or a stream of task objects.
package taskjson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/harrisonrobin/planus/pkg/model"
)

// ParseTasks decodes a JSON array of tasks or a stream of task objects.
// Zone-less dates are read in loc (time.Local when nil). Tasks without an
// id or name are skipped.
func ParseTasks(r io.Reader, loc *time.Location) ([]model.Task, error) {
	if loc == nil {
		loc = time.Local
	}
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err == io.EOF {
		return []model.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read task json: %w", err)
	}

	var wire []Task
	decoder := json.NewDecoder(br)
	if first == '[' {
		if err := decoder.Decode(&wire); err != nil {
			return nil, fmt.Errorf("failed to decode task json: %w", err)
		}
	} else {
		for {
			var task Task
			if err := decoder.Decode(&task); err != nil {
				if err == io.EOF {
					break
				}
				return nil, fmt.Errorf("failed to decode task json: %w", err)
			}
			wire = append(wire, task)
		}
	}

	tasks := make([]model.Task, 0, len(wire))
	for _, w := range wire {
		if w.ID == "" || w.Name == "" {
			continue
		}
		t := model.Task{
			ID:              w.ID,
			Name:            w.Name,
			Start:           w.StartDate.In(loc),
			Finish:          w.FinishDate.In(loc),
			Duration:        w.Duration,
			PercentComplete: w.PercentComplete,
			ResourceNames:   append([]string{}, w.ResourceNames...),
			Predecessors:    append([]string{}, w.Predecessors...),
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// WriteTasks encodes tasks as an indented JSON array.
func WriteTasks(w io.Writer, tasks []model.Task) error {
	wire := make([]Task, len(tasks))
	for i, t := range tasks {
		wire[i] = Task{
			ID:              t.ID,
			Name:            t.Name,
			Duration:        t.Duration,
			PercentComplete: t.PercentComplete,
			ResourceNames:   append([]string{}, t.ResourceNames...),
			Predecessors:    append([]string{}, t.Predecessors...),
		}
		if t.HasStart() {
			wire[i].StartDate = &Time{Time: t.Start}
		}
		if t.HasFinish() {
			wire[i].FinishDate = &Time{Time: t.Finish}
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(wire); err != nil {
		return fmt.Errorf("failed to encode task json: %w", err)
	}
	return nil
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}
