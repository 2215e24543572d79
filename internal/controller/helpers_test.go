package controller

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-block-calendar/internal/adapter"
	"github.com/MKhiriev/go-block-calendar/internal/calendar"
	"github.com/MKhiriev/go-block-calendar/internal/config"
	"github.com/MKhiriev/go-block-calendar/internal/fakeapi"
	"github.com/MKhiriev/go-block-calendar/internal/logger"
	"github.com/MKhiriev/go-block-calendar/internal/view"
	"github.com/MKhiriev/go-block-calendar/models"
)

type message struct {
	Text    string
	IsError bool
}

// recordingView is a goroutine-safe View keeping every call.
type recordingView struct {
	mu         sync.Mutex
	form       models.FormValues
	tables     []view.Table
	messages   []message
	debug      []string
	dateField  string
	title      string
	highlights []string
}

func (v *recordingView) RenderTable(t view.Table) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tables = append(v.tables, t)
}

func (v *recordingView) ShowMessage(msg string, isError bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.messages = append(v.messages, message{msg, isError})
}

func (v *recordingView) SetDebug(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.debug = append(v.debug, text)
}

func (v *recordingView) SetDateField(date string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dateField = date
}

func (v *recordingView) SetTitle(title string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.title = title
}

func (v *recordingView) HighlightDate(date string, _ *models.GridCell) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.highlights = append(v.highlights, date)
}

func (v *recordingView) ReadForm() models.FormValues {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.form
}

func (v *recordingView) setForm(f models.FormValues) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.form = f
}

func (v *recordingView) lastMessage() message {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.messages) == 0 {
		return message{}
	}
	return v.messages[len(v.messages)-1]
}

func (v *recordingView) lastDebug() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.debug) == 0 {
		return ""
	}
	return v.debug[len(v.debug)-1]
}

func (v *recordingView) lastTable() (view.Table, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.tables) == 0 {
		return view.Table{}, false
	}
	return v.tables[len(v.tables)-1], true
}

func (v *recordingView) tableCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.tables)
}

func (v *recordingView) hasMessage(prefix string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, m := range v.messages {
		if strings.HasPrefix(m.Text, prefix) {
			return true
		}
	}
	return false
}

func fixedClock(date string) func() time.Time {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t.Add(10 * time.Hour) }
}

type fakeEnv struct {
	api    *fakeapi.Handler
	srv    *httptest.Server
	view   *recordingView
	widget *calendar.MonthWidget
	ctrl   *Controller
}

// newFakeEnv wires a controller to an in-memory API server with today fixed
// to today.
func newFakeEnv(t *testing.T, today string) *fakeEnv {
	t.Helper()

	api := fakeapi.NewHandler(logger.Nop())
	srv := httptest.NewServer(api.Init())
	t.Cleanup(srv.Close)

	a, err := adapter.NewHTTPBlocksAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)

	clock := fixedClock(today)
	v := &recordingView{}
	w := calendar.NewMonthWidget(clock())
	c := New(a, identityFunc(func() string { return "user-test" }), v, logger.Nop(),
		WithCalendar(calendar.NewSyncer(a, w, 31, logger.Nop())),
		WithClock(clock),
	)

	return &fakeEnv{api: api, srv: srv, view: v, widget: w, ctrl: c}
}

type identityFunc func() string

func (f identityFunc) GetOrCreateUserID(context.Context) (string, error) { return f(), nil }
