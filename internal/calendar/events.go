// Package calendar keeps the month view in step with the remote API.
//
// [Syncer] fetches every day of a month concurrently and replaces the
// contents of a [Widget] with the combined events; failed days are counted,
// never fatal. [ExportICS] and [PrintMonth] render the same events as an
// iCalendar feed and as a terminal month grid.
package calendar

import (
	"github.com/MKhiriev/go-block-calendar/models"
)

// ToEvents maps blocks one-to-one onto calendar events.
func ToEvents(blocks []models.TimeBlock) []models.CalendarEvent {
	events := make([]models.CalendarEvent, 0, len(blocks))
	for _, b := range blocks {
		events = append(events, models.CalendarEvent{
			ID:    b.BlockID,
			Title: b.Label,
			Start: b.Date + "T" + b.Start,
			End:   b.Date + "T" + b.End,
		})
	}
	return events
}
