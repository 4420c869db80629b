// Package msproject reads MS Project XML exports into a normalized schedule.
//
// Elements are matched by local name, so files with or without the
// http://schemas.microsoft.com/project namespace are accepted.
package msproject

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/harrisonrobin/planus/pkg/model"
)

// ParseError reports a task field that could not be interpreted.
type ParseError struct {
	Element string
	UID     string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("msproject: task %s: %s: %v", e.UID, e.Element, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type project struct {
	Name        string       `xml:"Name"`
	Title       string       `xml:"Title"`
	Resources   []resource   `xml:"Resources>Resource"`
	Assignments []assignment `xml:"Assignments>Assignment"`
	Tasks       []task       `xml:"Tasks>Task"`
}

type resource struct {
	UID  *string `xml:"UID"`
	Name *string `xml:"Name"`
}

type assignment struct {
	TaskUID     *string `xml:"TaskUID"`
	ResourceUID *string `xml:"ResourceUID"`
}

type task struct {
	UID             *string `xml:"UID"`
	Name            *string `xml:"Name"`
	Start           string  `xml:"Start"`
	Finish          string  `xml:"Finish"`
	Duration        string  `xml:"Duration"`
	PercentComplete string  `xml:"PercentComplete"`
	Predecessors    []struct {
		UID *string `xml:"PredecessorUID"`
	} `xml:"PredecessorLink"`
}

var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02",
}

// Parse reads an MS Project XML document. Dates without a zone are read in
// loc (time.Local when nil). Tasks with an empty or absent UID or Name are
// skipped, and an unparseable date is treated as absent.
func Parse(r io.Reader, loc *time.Location) (*model.Schedule, error) {
	if loc == nil {
		loc = time.Local
	}

	var p project
	if err := xml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode project xml: %w", err)
	}

	resourceNames := make(map[string]string, len(p.Resources))
	for _, res := range p.Resources {
		if res.UID != nil && res.Name != nil {
			resourceNames[text(res.UID)] = text(res.Name)
		}
	}

	taskResources := map[string][]string{}
	for _, a := range p.Assignments {
		if a.TaskUID == nil || a.ResourceUID == nil {
			continue
		}
		if name := resourceNames[text(a.ResourceUID)]; name != "" {
			uid := text(a.TaskUID)
			taskResources[uid] = append(taskResources[uid], name)
		}
	}

	schedule := &model.Schedule{Name: p.Title, Tasks: []model.Task{}}
	if schedule.Name == "" {
		schedule.Name = p.Name
	}

	seen := map[string]bool{}
	for _, t := range p.Tasks {
		uid, name := text(t.UID), text(t.Name)
		if uid == "" || name == "" {
			continue
		}
		if seen[uid] {
			return nil, &ParseError{Element: "UID", UID: uid, Err: fmt.Errorf("duplicate task uid")}
		}
		seen[uid] = true

		// Unreadable durations count as zero hours rather than failing the schedule.
		duration, err := ParseDuration(t.Duration)
		if err != nil {
			duration = 0
		}

		pct := 0
		if s := strings.TrimSpace(t.PercentComplete); s != "" {
			if pct, err = strconv.Atoi(s); err != nil {
				return nil, &ParseError{Element: "PercentComplete", UID: uid, Err: err}
			}
		}

		mt := model.Task{
			ID:              uid,
			Name:            name,
			Start:           parseDate(t.Start, loc),
			Finish:          parseDate(t.Finish, loc),
			Duration:        duration,
			PercentComplete: pct,
			ResourceNames:   append([]string{}, taskResources[uid]...),
			Predecessors:    []string{},
		}
		for _, link := range t.Predecessors {
			if link.UID != nil {
				mt.Predecessors = append(mt.Predecessors, text(link.UID))
			}
		}
		if err := mt.Validate(); err != nil {
			return nil, &ParseError{Element: invalidElement(mt), UID: uid, Err: err}
		}
		schedule.Tasks = append(schedule.Tasks, mt)
	}

	return schedule, nil
}

func parseDate(s string, loc *time.Location) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t
		}
	}
	return time.Time{}
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// invalidElement names the XML element behind a failed Validate.
func invalidElement(t model.Task) string {
	if t.PercentComplete < 0 || t.PercentComplete > 100 {
		return "PercentComplete"
	}
	return "Duration"
}
