package google

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/calendar/v3"

	"github.com/harrisonrobin/planus/pkg/auth"
	"github.com/harrisonrobin/planus/pkg/index"
	"github.com/harrisonrobin/planus/pkg/logging"
)

var errStopPaging = errors.New("stop paging")

// NewClient authorizes with the credentials in dir and returns a client for
// the calendar whose summary is calendarName.
func NewClient(ctx context.Context, dir, calendarName string, idx *index.EventIndex, logger *logging.Logger) (*CalendarClient, error) {
	srv, err := auth.CalendarService(ctx, dir, logger)
	if err != nil {
		return nil, err
	}
	return NewClientWithService(ctx, srv, calendarName, idx, logger)
}

// NewClientWithService resolves calendarName with an existing service.
func NewClientWithService(ctx context.Context, srv *calendar.Service, calendarName string, idx *index.EventIndex, logger *logging.Logger) (*CalendarClient, error) {
	calendarID, err := FindCalendarID(ctx, srv, calendarName)
	if err != nil {
		return nil, err
	}
	return NewCalendarClient(srv, calendarID, idx, logger), nil
}

// FindCalendarID returns the ID of the calendar named calendarName.
func FindCalendarID(ctx context.Context, srv *calendar.Service, calendarName string) (string, error) {
	var calendarID string
	err := srv.CalendarList.List().Pages(ctx, func(page *calendar.CalendarList) error {
		for _, item := range page.Items {
			if item.Summary == calendarName {
				calendarID = item.Id
				return errStopPaging
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopPaging) {
		return "", fmt.Errorf("unable to retrieve calendar list: %w", err)
	}
	if calendarID == "" {
		return "", fmt.Errorf("calendar '%s' not found", calendarName)
	}
	return calendarID, nil
}
