package tui

import (
	"sync"

	"github.com/MKhiriev/go-block-calendar/internal/view"
	"github.com/MKhiriev/go-block-calendar/models"
)

// screen is the state the controller writes into. It implements
// controller.View and is read by the bubbletea model on every render.
type screen struct {
	mu sync.RWMutex

	table     view.Table
	message   string
	isError   bool
	debug     string
	title     string
	highlight string
	origin    *models.GridCell

	dateField        string
	dateFieldVersion uint64

	form models.FormValues
}

type screenState struct {
	table     view.Table
	message   string
	isError   bool
	debug     string
	title     string
	highlight string
	origin    *models.GridCell

	dateField        string
	dateFieldVersion uint64
}

func newScreen() *screen {
	return &screen{table: view.BuildTable(nil)}
}

func (s *screen) RenderTable(t view.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = t
}

func (s *screen) ShowMessage(msg string, isError bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = msg
	s.isError = isError
}

func (s *screen) SetDebug(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debug = text
}

func (s *screen) SetDateField(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dateField = date
	s.dateFieldVersion++
}

func (s *screen) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
}

func (s *screen) HighlightDate(date string, origin *models.GridCell) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.highlight = date
	s.origin = origin
}

func (s *screen) ReadForm() models.FormValues {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.form
}

func (s *screen) setForm(f models.FormValues) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = f
}

func (s *screen) snapshot() screenState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return screenState{
		table:            s.table,
		message:          s.message,
		isError:          s.isError,
		debug:            s.debug,
		title:            s.title,
		highlight:        s.highlight,
		origin:           s.origin,
		dateField:        s.dateField,
		dateFieldVersion: s.dateFieldVersion,
	}
}
