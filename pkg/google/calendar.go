package google

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/calendar/v3"

	"github.com/harrisonrobin/planus/pkg/index"
	"github.com/harrisonrobin/planus/pkg/logging"
)

// CalendarClient manages the events of one calendar.
type CalendarClient struct {
	srv        *calendar.Service
	calendarID string
	index      *index.EventIndex
	logger     *logging.Logger
}

// NewCalendarClient wraps srv for calendarID. idx may be nil, in which case
// every sync searches the calendar for the task key.
func NewCalendarClient(srv *calendar.Service, calendarID string, idx *index.EventIndex, logger *logging.Logger) *CalendarClient {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &CalendarClient{srv: srv, calendarID: calendarID, index: idx, logger: logger}
}

// SyncEvent creates the event for key or patches the fields that changed.
func (c *CalendarClient) SyncEvent(ctx context.Context, key string, event *calendar.Event) (*calendar.Event, error) {
	var existing *calendar.Event
	if c.index != nil {
		if eventID := c.index.Get(key); eventID != "" {
			found, err := c.srv.Events.Get(c.calendarID, eventID).Context(ctx).Do()
			if err != nil {
				c.logger.Debug("indexed event not found, searching", "key", key, "event_id", eventID, "error", err)
			} else if found.Status != "cancelled" {
				existing = found
			}
		}
	}

	if existing == nil {
		var err error
		existing, err = c.GetEventByTaskKey(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("error searching for event: %w", err)
		}
	}

	if existing != nil {
		patch, err := EventNeedsUpdate(existing, event)
		if err != nil {
			return nil, fmt.Errorf("could not compare task with its calendar event: %w", err)
		}
		if patch == nil {
			c.remember(key, existing.Id)
			return existing, nil
		}
		updated, err := c.PatchEvent(ctx, existing.Id, patch)
		if err != nil {
			return nil, err
		}
		c.remember(key, updated.Id)
		return updated, nil
	}

	created, err := c.srv.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to create event: %w", err)
	}
	c.remember(key, created.Id)
	return created, nil
}

func (c *CalendarClient) remember(key, eventID string) {
	if c.index != nil {
		c.index.Set(key, eventID)
	}
}

// PatchEvent performs a partial update on an event.
func (c *CalendarClient) PatchEvent(ctx context.Context, eventID string, patch *calendar.Event) (*calendar.Event, error) {
	updated, err := c.srv.Events.Patch(c.calendarID, eventID, patch).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to patch event %s: %w", eventID, err)
	}
	return updated, nil
}

// DeleteEvent deletes an event and forgets its key.
func (c *CalendarClient) DeleteEvent(ctx context.Context, key, eventID string) error {
	if err := c.srv.Events.Delete(c.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to delete event %s: %w", eventID, err)
	}
	if c.index != nil {
		c.index.Remove(key)
	}
	return nil
}

// Tracked returns the indexed event IDs of every key starting with prefix.
func (c *CalendarClient) Tracked(prefix string) map[string]string {
	out := make(map[string]string)
	if c.index == nil {
		return out
	}
	for _, key := range c.index.Keys() {
		if strings.HasPrefix(key, prefix) {
			out[key] = c.index.Get(key)
		}
	}
	return out
}

// GetEventByTaskKey searches for the event carrying key in its private
// extended properties. It returns nil, nil when there is none.
func (c *CalendarClient) GetEventByTaskKey(ctx context.Context, key string) (*calendar.Event, error) {
	events, err := c.srv.Events.List(c.calendarID).
		PrivateExtendedProperty(fmt.Sprintf("%s=%s", TaskKeyProperty, key)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	if len(events.Items) > 0 {
		return events.Items[0], nil
	}
	return nil, nil
}
