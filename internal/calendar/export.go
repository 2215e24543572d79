package calendar

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/MKhiriev/go-block-calendar/internal/utils"
	"github.com/MKhiriev/go-block-calendar/models"
)

const productID = "-//blockcal//time blocks//EN"

const eventTimeLayout = "2006-01-02T15:04"

// ExportICS writes events as an iCalendar feed. Each event becomes one VEVENT
// whose UID is the block id; times are interpreted in the local zone.
func ExportICS(w io.Writer, events []models.CalendarEvent, now time.Time) error {
	cal := ical.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ical.MethodPublish)

	for _, e := range events {
		start, err := time.ParseInLocation(eventTimeLayout, e.Start, time.Local)
		if err != nil {
			return fmt.Errorf("event %s: invalid start %q: %w", e.ID, e.Start, err)
		}
		end, err := time.ParseInLocation(eventTimeLayout, e.End, time.Local)
		if err != nil {
			return fmt.Errorf("event %s: invalid end %q: %w", e.ID, e.End, err)
		}

		ev := cal.AddEvent(e.ID)
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(e.Title)
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}

// MonthFileName is the default export name for the month of anchor.
func MonthFileName(anchor time.Time) string {
	return "blockcal-" + utils.FormatDateLocal(anchor)[:7] + ".ics"
}
