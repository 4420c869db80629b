package google

import (
	"context"
	"strings"

	"google.golang.org/api/calendar/v3"

	"github.com/harrisonrobin/planus/pkg/analysis"
	"github.com/harrisonrobin/planus/pkg/logging"
	"github.com/harrisonrobin/planus/pkg/overdue"
	"github.com/harrisonrobin/planus/pkg/risk"
)

// EventSyncer is the part of CalendarClient the exporter needs.
type EventSyncer interface {
	SyncEvent(ctx context.Context, key string, event *calendar.Event) (*calendar.Event, error)
	PatchEvent(ctx context.Context, eventID string, patch *calendar.Event) (*calendar.Event, error)
}

// EventPruner is implemented by syncers that can delete the events of tasks
// no longer in the schedule.
type EventPruner interface {
	Tracked(prefix string) map[string]string
	DeleteEvent(ctx context.Context, key, eventID string) error
}

// ExportStats counts what one export did.
type ExportStats struct {
	Synced  int
	Skipped int
	Failed  int
	Flagged int
	Deleted int
}

// Exporter pushes an analysis result to a calendar.
type Exporter struct {
	client  EventSyncer
	pending *overdue.Table
	logger  *logging.Logger
	prune   bool
}

// WithPrune makes Export delete the events of tasks that left the schedule.
// It has no effect when the client is not an EventPruner.
func (e *Exporter) WithPrune(prune bool) *Exporter {
	e.prune = prune
	return e
}

// NewExporter returns an Exporter. pending may be nil to disable the sweep of
// previously exported tasks.
func NewExporter(client EventSyncer, pending *overdue.Table, logger *logging.Logger) *Exporter {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Exporter{client: client, pending: pending, logger: logger}
}

// Export syncs one event per task of res. Tasks without dates are skipped and
// individual sync failures are logged and counted; only a cancelled context
// aborts the export.
//
// Before syncing, pending tasks from earlier exports whose finish date has
// passed and that are absent from res get their event summary prefixed with
// "! ". When pruning, those events are deleted instead, together with any
// other tracked event of the project whose task is gone.
func (e *Exporter) Export(ctx context.Context, res *analysis.Result) (ExportStats, error) {
	var stats ExportStats
	log := e.logger.WithRun(res.RunID).WithStage(string(analysis.StageExport))
	now := res.GeneratedAt

	current := make(map[string]bool, len(res.Tasks))
	for _, t := range res.Tasks {
		current[TaskKey(res.Project, t.ID)] = true
	}
	pruner, pruning := e.client.(EventPruner)
	pruning = pruning && e.prune
	prefix := TaskKey(res.Project, "")

	if e.pending != nil {
		for _, entry := range e.pending.Sweep(now) {
			if current[entry.Key] || pruning && strings.HasPrefix(entry.Key, prefix) {
				continue
			}
			if _, err := e.client.PatchEvent(ctx, entry.EventID, &calendar.Event{Summary: "! " + entry.Summary}); err != nil {
				log.Warn("sweep: could not flag overdue event", "key", entry.Key, "event_id", entry.EventID, "error", err)
				// Keep it for the next export.
				e.pending.Update(entry.Key, entry.EventID, entry.Summary, entry.Finish)
				continue
			}
			stats.Flagged++
		}
	}

	for i, t := range res.Tasks {
		if err := ctx.Err(); err != nil {
			return stats, &analysis.StageError{Stage: analysis.StageExport, Err: err}
		}
		key := TaskKey(res.Project, t.ID)

		var assessment risk.Assessment
		if i < len(res.Risk.Assessments) {
			assessment = res.Risk.Assessments[i]
		}
		event, err := ConvertTask(t, assessment, res.Project, now)
		if err != nil {
			log.Debug("skipping task", "key", key, "error", err)
			stats.Skipped++
			continue
		}

		synced, err := e.client.SyncEvent(ctx, key, event)
		if err != nil {
			if ctx.Err() != nil {
				return stats, &analysis.StageError{Stage: analysis.StageExport, Err: ctx.Err()}
			}
			log.Warn("could not sync event", "key", key, "error", err)
			stats.Failed++
			continue
		}
		stats.Synced++

		if e.pending != nil {
			if !t.IsComplete() && !t.IsOverdue(now) {
				e.pending.Update(key, synced.Id, t.Name, t.Finish)
			} else {
				e.pending.Remove(key)
			}
		}
	}

	if pruning {
		for key, eventID := range pruner.Tracked(prefix) {
			if current[key] {
				continue
			}
			if err := pruner.DeleteEvent(ctx, key, eventID); err != nil {
				log.Warn("could not delete event of removed task", "key", key, "event_id", eventID, "error", err)
				stats.Failed++
				continue
			}
			if e.pending != nil {
				e.pending.Remove(key)
			}
			stats.Deleted++
		}
	}

	log.Info("export completed", "synced", stats.Synced, "skipped", stats.Skipped, "failed", stats.Failed,
		"flagged", stats.Flagged, "deleted", stats.Deleted)
	return stats, nil
}
