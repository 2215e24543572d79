package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-block-calendar/internal/utils"
	"github.com/MKhiriev/go-block-calendar/models"
)

const weekHeader = "Su Mo Tu We Th Fr Sa"

type monthStyles struct {
	header   lipgloss.Style
	empty    lipgloss.Style
	entry    lipgloss.Style
	today    lipgloss.Style
	selected lipgloss.Style
}

// renderMonth draws a Sunday-first grid for the month containing anchor.
func renderMonth(anchor time.Time, busy map[string]bool, selected, today string, st monthStyles) string {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.Local)

	var b strings.Builder
	b.WriteString(st.header.Render(centered(first.Format("January 2006"), len(weekHeader))))
	b.WriteString("\n")
	b.WriteString(st.header.Render(weekHeader))
	b.WriteString("\n")

	d := first.Weekday()
	b.WriteString(strings.Repeat("   ", int(d)))
	for i, date := range utils.MonthDays(anchor) {
		style := st.empty
		if busy[date] {
			style = st.entry
		}
		if date == today {
			style = style.Inherit(st.today).Underline(true)
		}
		if date == selected {
			style = st.selected
		}
		b.WriteString(style.Render(twoDigits(i + 1)))

		d++
		if d > time.Saturday {
			d = time.Sunday
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	return strings.TrimRight(b.String(), "\n ")
}

// gridCell returns the week row and weekday column of date inside its month grid.
func gridCell(date string) (*models.GridCell, bool) {
	t, err := utils.ParseISODate(date)
	if err != nil {
		return nil, false
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
	offset := int(first.Weekday()) + t.Day() - 1
	return &models.GridCell{Week: offset / 7, Weekday: offset % 7}, true
}

// shiftDate moves an ISO date by days, falling back to today when date is invalid.
func shiftDate(date, today string, days int) string {
	t, err := utils.ParseISODate(date)
	if err != nil {
		if t, err = utils.ParseISODate(today); err != nil {
			return today
		}
	}
	return utils.FormatDateLocal(t.AddDate(0, 0, days))
}

func centered(s string, width int) string {
	pad := (width - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

func twoDigits(n int) string {
	return fmt.Sprintf("%2d", n)
}
