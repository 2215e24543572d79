// Package workers runs the client's background jobs.
//
// A [Workers] aggregate starts and stops every registered [Worker] together.
// The only job today is [MonthRefresher], which periodically reloads the
// displayed calendar month on a cron schedule.
package workers

import (
	"context"

	"github.com/MKhiriev/go-block-calendar/internal/calendar"
)

// Worker is a background job with an explicit lifecycle.
//
// Start must not block; Stop blocks until running work has finished.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// CalendarRefresher reloads the displayed month.
type CalendarRefresher interface {
	RefreshCalendar(ctx context.Context) calendar.SyncReport
}
