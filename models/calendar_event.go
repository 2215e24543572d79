package models

// CalendarEvent is the projection of a [TimeBlock] shown on the month
// calendar. It is derived from server data and never persisted.
type CalendarEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// Start and End are local date-times in "2006-01-02T15:04" form.
	Start string `json:"start"`
	End   string `json:"end"`
}

// Date returns the ISO day part of the event start.
func (e CalendarEvent) Date() string {
	if len(e.Start) < 10 {
		return e.Start
	}
	return e.Start[:10]
}

// GridCell identifies a day cell of a month grid by week row and weekday
// column (Sunday is 0).
type GridCell struct {
	Week    int
	Weekday int
}
