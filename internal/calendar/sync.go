package calendar

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-block-calendar/internal/adapter"
	"github.com/MKhiriev/go-block-calendar/internal/logger"
	"github.com/MKhiriev/go-block-calendar/internal/utils"
	"github.com/MKhiriev/go-block-calendar/models"
)

// SyncReport is the outcome of fetching one month.
type SyncReport struct {
	// Month is the first day of the fetched month.
	Month time.Time
	// Events holds the events of every successful day, in day order.
	Events []models.CalendarEvent
	// Failures is the number of days whose request failed.
	Failures int
	// FailedDays lists the failed dates in ascending order.
	FailedDays []string
}

// Syncer loads a month of blocks into a [Widget].
type Syncer struct {
	adapter     adapter.BlocksAdapter
	widget      Widget
	maxParallel int

	logger *logger.Logger
}

// NewSyncer returns a Syncer issuing at most maxParallel requests at once.
// A non-positive maxParallel removes the limit.
func NewSyncer(a adapter.BlocksAdapter, w Widget, maxParallel int, logger *logger.Logger) *Syncer {
	return &Syncer{adapter: a, widget: w, maxParallel: maxParallel, logger: logger}
}

// Widget returns the widget the syncer writes to.
func (s *Syncer) Widget() Widget {
	return s.widget
}

// SyncMonth fetches the month of anchor and replaces the widget's events with
// the result.
func (s *Syncer) SyncMonth(ctx context.Context, userID string, anchor time.Time) SyncReport {
	report := s.FetchMonth(ctx, userID, anchor)
	s.Apply(report)
	return report
}

// FetchMonth issues one non-throwing list request per day of anchor's month
// and waits for all of them. The widget is not touched.
func (s *Syncer) FetchMonth(ctx context.Context, userID string, anchor time.Time) SyncReport {
	days := utils.MonthDays(anchor)
	results := make([][]models.TimeBlock, len(days))
	failed := make([]bool, len(days))

	var g errgroup.Group
	if s.maxParallel > 0 {
		g.SetLimit(s.maxParallel)
	}

	for i, day := range days {
		g.Go(func() error {
			res, err := s.adapter.List(ctx, userID, day, adapter.SendOptions{})
			if err != nil || !res.IsSuccess() || res.Parsed == nil || res.Parsed.Failed() {
				s.logger.Debug().
					Err(err).
					Str("date", day).
					Int("status", res.Status).
					Msg("month sync: day request failed")
				failed[i] = true
				return nil
			}
			results[i] = res.Parsed.BlockList()
			return nil
		})
	}
	_ = g.Wait()

	report := SyncReport{Month: firstOfMonth(anchor), Events: []models.CalendarEvent{}}
	for i, day := range days {
		if failed[i] {
			report.Failures++
			report.FailedDays = append(report.FailedDays, day)
			continue
		}
		report.Events = append(report.Events, ToEvents(results[i])...)
	}

	s.logger.Debug().
		Str("month", report.Month.Format("2006-01")).
		Int("events", len(report.Events)).
		Int("failures", report.Failures).
		Msg("month sync finished")

	return report
}

// Apply clears the widget and adds the report's events.
func (s *Syncer) Apply(report SyncReport) {
	s.widget.RemoveAllEvents()
	for _, e := range report.Events {
		s.widget.AddEvent(e)
	}
}
