package calendar

import (
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-block-calendar/models"
)

//go:generate mockgen -source=widget.go -destination=../mock/calendar_widget_mock.go -package=mock

// Widget is the month view the controller drives.
type Widget interface {
	// CurrentDate returns a date inside the displayed month.
	CurrentDate() time.Time
	// GotoDate displays the month containing t.
	GotoDate(t time.Time)
	RemoveAllEvents()
	AddEvent(e models.CalendarEvent)
}

// MonthWidget is an in-memory [Widget] safe for concurrent use.
type MonthWidget struct {
	mu      sync.RWMutex
	current time.Time
	events  []models.CalendarEvent
}

// NewMonthWidget returns a widget showing the month of anchor.
func NewMonthWidget(anchor time.Time) *MonthWidget {
	return &MonthWidget{current: firstOfMonth(anchor)}
}

func (w *MonthWidget) CurrentDate() time.Time {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

func (w *MonthWidget) GotoDate(t time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.current = firstOfMonth(t)
}

func (w *MonthWidget) RemoveAllEvents() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.events = nil
}

func (w *MonthWidget) AddEvent(e models.CalendarEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.events = append(w.events, e)
}

// Events returns a copy of the current events.
func (w *MonthWidget) Events() []models.CalendarEvent {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.events)
}

// DaysWithEvents returns the set of ISO dates holding at least one event.
func (w *MonthWidget) DaysWithEvents() map[string]bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	days := make(map[string]bool, len(w.events))
	for _, e := range w.events {
		days[e.Date()] = true
	}
	return days
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}
