package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/MKhiriev/go-block-calendar/internal/utils"
	"github.com/MKhiriev/go-block-calendar/models"
)

const weekWidth = len("Su Mo Tu We Th Fr Sa")

// PrintMonth writes a Sunday-first month grid for anchor. Days with events
// are bold, today is underlined and the selected day is inverted.
func PrintMonth(w io.Writer, anchor time.Time, events []models.CalendarEvent, selected, today string) {
	title := color.New(color.FgWhite, color.Italic)
	plain := color.New(color.Faint)
	busy := color.New(color.Bold, color.FgHiWhite)

	busyDays := make(map[string]bool, len(events))
	for _, e := range events {
		busyDays[e.Date()] = true
	}

	first := firstOfMonth(anchor)
	heading := first.Format("January 2006")
	mid := (weekWidth - len(heading)) / 2
	_, _ = title.Fprintf(w, "%s%s\n", strings.Repeat(" ", max(mid, 0)), heading)
	_, _ = fmt.Fprintln(w, "Su Mo Tu We Th Fr Sa")

	d := first.Weekday()
	// Pad out the start of the month.
	_, _ = fmt.Fprint(w, strings.Repeat("   ", int(d)))

	for i, date := range utils.MonthDays(anchor) {
		printer := plain
		if busyDays[date] {
			printer = busy
		}
		if date == today {
			printer = color.New(color.Underline)
			if busyDays[date] {
				printer.Add(color.Bold)
			}
		}
		if date == selected {
			printer = color.New(color.ReverseVideo)
		}
		_, _ = printer.Fprintf(w, "%2d", i+1)
		_, _ = fmt.Fprint(w, " ")

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		}
	}
	_, _ = fmt.Fprint(w, "\n")
}
