package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-block-calendar/internal/adapter"
	"github.com/MKhiriev/go-block-calendar/internal/calendar"
	"github.com/MKhiriev/go-block-calendar/internal/config"
	"github.com/MKhiriev/go-block-calendar/internal/logger"
	"github.com/MKhiriev/go-block-calendar/internal/mock"
	"github.com/MKhiriev/go-block-calendar/models"
)

func okList(blocks ...models.TimeBlock) models.APIResult {
	ok := true
	return models.APIResult{
		Status:  http.StatusOK,
		RawBody: `{"ok":true}`,
		URL:     "http://api.test/blocks/list",
		Parsed:  &models.BlocksResponse{OK: &ok, Blocks: blocks},
	}
}

// newMockedController returns a controller whose adapter is a strict mock:
// any call without an expectation fails the test.
func newMockedController(t *testing.T) (*Controller, *mock.MockBlocksAdapter, *recordingView) {
	t.Helper()
	ctrl := gomock.NewController(t)
	a := mock.NewMockBlocksAdapter(ctrl)
	v := &recordingView{}
	c := New(a, identityFunc(func() string { return "user-1" }), v, logger.Nop(), WithClock(fixedClock("2024-05-01")))
	require.NoError(t, c.Identify(context.Background()))
	return c, a, v
}

// ── SetSelectedDate ─────────────────────────────────────────────────────────

func TestSetSelectedDate(t *testing.T) {
	c, _, v := newMockedController(t)

	require.NoError(t, c.SetSelectedDate("2024-06-10", &models.GridCell{Week: 1, Weekday: 1}))
	assert.Equal(t, "2024-06-10", c.State().SelectedDate)
	assert.Equal(t, "2024-06-10", v.dateField)
	assert.Equal(t, "Selected Date: 2024-06-10", v.title)
	assert.Equal(t, "2024-06-10", v.highlights[len(v.highlights)-1])

	err := c.SetSelectedDate("10/06/2024", nil)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "2024-06-10", c.State().SelectedDate, "state unchanged on invalid date")
}

func TestDateFieldChanged(t *testing.T) {
	c, _, v := newMockedController(t)

	c.DateFieldChanged("2024-0")
	assert.Equal(t, "2024-05-01", c.State().SelectedDate)

	c.DateFieldChanged("2024-07-04")
	assert.Equal(t, "2024-07-04", c.State().SelectedDate)
	assert.Equal(t, "Selected Date: 2024-07-04", v.title)
	assert.Zero(t, v.tableCount(), "no request, no render")
}

// ── SaveBlock ───────────────────────────────────────────────────────────────

func TestSaveBlock_ValidationMakesNoRequest(t *testing.T) {
	tests := []struct {
		name    string
		form    models.FormValues
		wantMsg string
	}{
		{name: "missing start", form: models.FormValues{End: "10:00", Label: "x"}, wantMsg: "Date, start, end, and label are required."},
		{name: "missing end", form: models.FormValues{Start: "09:00", Label: "x"}, wantMsg: "Date, start, end, and label are required."},
		{name: "blank label", form: models.FormValues{Start: "09:00", End: "10:00", Label: "   "}, wantMsg: "Date, start, end, and label are required."},
		{name: "end equals start", form: models.FormValues{Start: "09:00", End: "09:00", Label: "x"}, wantMsg: "End time must be after start time."},
		{name: "end before start", form: models.FormValues{Start: "10:00", End: "09:00", Label: "x"}, wantMsg: "End time must be after start time."},
		{name: "start not a clock time", form: models.FormValues{Start: "9:00", End: "10:00", Label: "x"}, wantMsg: "Start and end must be HH:MM."},
		{name: "end not a clock time", form: models.FormValues{Start: "09:00", End: "10am", Label: "x"}, wantMsg: "Start and end must be HH:MM."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no adapter expectations: any request fails the test
			c, _, v := newMockedController(t)
			v.setForm(tt.form)

			err := c.SaveBlock(context.Background())

			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, message{tt.wantMsg, true}, v.lastMessage())
			assert.Zero(t, v.tableCount())
		})
	}
}

func TestSaveBlock_InvalidSelectedDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockBlocksAdapter(ctrl)
	v := &recordingView{form: models.FormValues{Start: "09:00", End: "10:00", Label: "x"}}
	c := New(a, identityFunc(func() string { return "u" }), v, logger.Nop())

	err := c.SaveBlock(context.Background())

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, message{"Please select a valid date (YYYY-MM-DD).", true}, v.lastMessage())
}

func TestSaveBlock_TrimsLabelAndUsesSelectedDate(t *testing.T) {
	c, a, v := newMockedController(t)
	require.NoError(t, c.SetSelectedDate("2024-05-02", nil))
	v.setForm(models.FormValues{Date: "1999-01-01", Start: "09:00", End: "09:30", Label: "  Standup "})

	saved := models.TimeBlock{BlockID: "b1", Date: "2024-05-02", Start: "09:00", End: "09:30", Label: "Standup"}
	a.EXPECT().Create(gomock.Any(), models.CreateRequest{
		UserID: "user-1", Date: "2024-05-02", Start: "09:00", End: "09:30", Label: "Standup",
	}).Return(okList(saved), nil)

	require.NoError(t, c.SaveBlock(context.Background()))

	assert.Equal(t, message{"Block saved.", false}, v.lastMessage())
	tbl, ok := v.lastTable()
	require.True(t, ok)
	assert.Equal(t, "b1", tbl.Rows[0].BlockID)
	assert.True(t, strings.HasPrefix(v.lastDebug(), "POST /blocks\nURL: http://api.test/blocks/list\nHTTP: 200\nResponse:\n"))
}

func TestSaveBlock_ServerRejection(t *testing.T) {
	c, a, v := newMockedController(t)
	v.setForm(models.FormValues{Start: "09:00", End: "09:30", Label: "Standup"})

	a.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(models.APIResult{Status: 400}, &adapter.HTTPError{Status: 400, URL: "http://api.test/blocks", Body: `{"ok":false}`})

	err := c.SaveBlock(context.Background())

	require.Error(t, err)
	assert.Equal(t, message{`HTTP 400 from http://api.test/blocks. Response: {"ok":false}`, true}, v.lastMessage())
	assert.Equal(t, "SAVE ERROR\n"+err.Error(), v.lastDebug())
	assert.Zero(t, v.tableCount(), "table untouched on failure")
}

// ── DeleteBlock ─────────────────────────────────────────────────────────────

func TestDeleteBlock_PayloadAndReplace(t *testing.T) {
	c, a, v := newMockedController(t)
	require.NoError(t, c.SetSelectedDate("2024-05-03", nil))

	remaining := models.TimeBlock{BlockID: "keep", Date: "2024-05-03", Start: "11:00", End: "12:00", Label: "Lunch"}
	res := okList(remaining)
	res.Parsed.Message = "Deleted"
	a.EXPECT().Delete(gomock.Any(), models.DeleteRequest{
		UserID: "user-1", Date: "2024-05-03", BlockID: "abc-123",
	}).Return(res, nil)

	require.NoError(t, c.DeleteBlock(context.Background(), "abc-123"))

	assert.Equal(t, message{"Deleted", false}, v.lastMessage())
	tbl, _ := v.lastTable()
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "keep", tbl.Rows[0].BlockID)
	assert.True(t, strings.HasPrefix(v.lastDebug(), "POST /blocks/delete\n"))
}

func TestDeleteBlock_EmptyListAndDefaultMessage(t *testing.T) {
	c, a, v := newMockedController(t)
	a.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(models.APIResult{Status: 200}, nil)

	require.NoError(t, c.DeleteBlock(context.Background(), "x"))

	assert.Equal(t, message{"Deleted.", false}, v.lastMessage())
	tbl, _ := v.lastTable()
	assert.True(t, tbl.Empty())
	assert.True(t, strings.HasSuffix(v.lastDebug(), "Response:\n<empty>"))
}

func TestDeleteBlock_Failure(t *testing.T) {
	c, a, v := newMockedController(t)
	apiErr := &adapter.HTTPError{Status: 404, URL: "http://api.test/blocks/delete", Body: `{"ok": false, "error": "Block not found"}`}
	a.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(models.APIResult{Status: 404}, apiErr)

	err := c.DeleteBlock(context.Background(), "gone")

	assert.ErrorIs(t, err, adapter.ErrHTTP)
	assert.Equal(t, "DELETE ERROR\n"+apiErr.Error(), v.lastDebug())
	assert.True(t, v.lastMessage().IsError)
	assert.Zero(t, v.tableCount())
}

// ── LoadSelectedDate ────────────────────────────────────────────────────────

func TestLoadSelectedDate_InvalidInput(t *testing.T) {
	c, _, v := newMockedController(t)
	v.setForm(models.FormValues{Date: "May 5"})

	err := c.LoadSelectedDate(context.Background())

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, message{"Enter date as YYYY-MM-DD.", true}, v.lastMessage())
	assert.Equal(t, "2024-05-01", c.State().SelectedDate)
}

func TestLoadSelectedDate_Success(t *testing.T) {
	c, a, v := newMockedController(t)
	v.setForm(models.FormValues{Date: "2024-08-15"})

	a.EXPECT().List(gomock.Any(), "user-1", "2024-08-15", adapter.Throwing).Return(okList(), nil)

	require.NoError(t, c.LoadSelectedDate(context.Background()))

	assert.Equal(t, "2024-08-15", c.State().SelectedDate)
	assert.Equal(t, message{"Loaded 0 block(s) for 2024-08-15.", false}, v.lastMessage())
	assert.True(t, strings.HasPrefix(v.lastDebug(), "LIST /blocks/list\n"))
}

func TestLoadSelectedDate_ListFailure(t *testing.T) {
	c, a, v := newMockedController(t)
	v.setForm(models.FormValues{Date: "2024-08-15"})
	a.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.APIResult{}, &adapter.TransportError{URL: "http://api.test/blocks/list", Err: errors.New("refused")})

	err := c.LoadSelectedDate(context.Background())

	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.True(t, strings.HasPrefix(v.lastDebug(), "LOAD ERROR\nNetwork request failed before reaching API. URL: http://api.test/blocks/list."))
}

// ── RunConnectionTest ───────────────────────────────────────────────────────

func TestRunConnectionTest_Statuses(t *testing.T) {
	tests := []struct {
		status  int
		wantMsg message
		wantErr bool
	}{
		{status: 200, wantMsg: message{"Connection test succeeded (HTTP 200).", false}},
		{status: 403, wantMsg: message{"Connection test failed (HTTP 403).", true}, wantErr: true},
		{status: 502, wantMsg: message{"Connection test failed (HTTP 502).", true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, a, v := newMockedController(t)
			a.EXPECT().List(gomock.Any(), "user-1", "2024-05-01", adapter.SendOptions{}).
				Return(models.APIResult{Status: tt.status, URL: "http://api.test/blocks/list"}, nil)

			err := c.RunConnectionTest(context.Background())

			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantMsg, v.lastMessage())
			assert.True(t, strings.HasPrefix(v.lastDebug(), "CONNECTION TEST\nURL: http://api.test/blocks/list\nHTTP: "))
			assert.Zero(t, v.tableCount(), "connection test never touches the table")
		})
	}
}

func TestRunConnectionTest_UnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	a, err := adapter.NewHTTPBlocksAdapter(config.ClientAdapter{HTTPAddress: addr, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	v := &recordingView{}
	c := New(a, identityFunc(func() string { return "u" }), v, logger.Nop(), WithClock(fixedClock("2024-05-01")))
	require.NoError(t, c.SetSelectedDate("2024-05-09", nil))

	err = c.RunConnectionTest(context.Background())

	require.Error(t, err)
	assert.Equal(t, message{"Connection test failed before receiving HTTP response.", true}, v.lastMessage())
	assert.True(t, strings.HasPrefix(v.lastDebug(), "CONNECTION TEST ERROR\n"))
	assert.Contains(t, v.lastDebug(), addr+"/blocks/list")
	assert.Equal(t, "2024-05-09", c.State().SelectedDate)
	assert.Zero(t, v.tableCount())
}

// ── Init / identity ─────────────────────────────────────────────────────────

func TestInit_IdentityFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockBlocksAdapter(ctrl)
	identity := mock.NewMockIdentityService(ctrl)
	identity.EXPECT().GetOrCreateUserID(gomock.Any()).Return("", errors.New("storage locked"))
	v := &recordingView{}

	err := New(a, identity, v, logger.Nop()).Init(context.Background())

	require.Error(t, err)
	assert.Equal(t, message{"storage locked", true}, v.lastMessage())
}

func TestInit_ListFailureReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockBlocksAdapter(ctrl)
	a.EXPECT().List(gomock.Any(), "user-9", "2024-05-01", adapter.Throwing).
		Return(models.APIResult{Status: 500}, &adapter.HTTPError{Status: 500, URL: "u"})
	v := &recordingView{}

	err := New(a, identityFunc(func() string { return "user-9" }), v, logger.Nop(), WithClock(fixedClock("2024-05-01"))).
		Init(context.Background())

	require.Error(t, err)
	assert.True(t, strings.HasPrefix(v.lastDebug(), "INITIAL LOAD ERROR\nHTTP 500 from u."))
	assert.Equal(t, "Selected Date: 2024-05-01", v.title)
}

// ── stale responses ─────────────────────────────────────────────────────────

func TestSelectDate_StaleListDiscarded(t *testing.T) {
	c, a, v := newMockedController(t)

	releaseSlow := make(chan struct{})
	slowStarted := make(chan struct{})

	a.EXPECT().List(gomock.Any(), "user-1", "2024-05-10", adapter.Throwing).
		DoAndReturn(func(context.Context, string, string, adapter.SendOptions) (models.APIResult, error) {
			close(slowStarted)
			<-releaseSlow
			return okList(models.TimeBlock{BlockID: "old", Start: "09:00"}), nil
		})
	a.EXPECT().List(gomock.Any(), "user-1", "2024-05-11", adapter.Throwing).
		Return(okList(models.TimeBlock{BlockID: "new", Start: "10:00"}), nil)

	done := make(chan error)
	go func() { done <- c.SelectDate(context.Background(), "2024-05-10", nil) }()
	<-slowStarted

	require.NoError(t, c.SelectDate(context.Background(), "2024-05-11", nil))
	close(releaseSlow)
	require.NoError(t, <-done)

	tbl, _ := v.lastTable()
	assert.Equal(t, "new", tbl.Rows[0].BlockID)
	assert.Equal(t, 1, v.tableCount())
	assert.Equal(t, "2024-05-11", c.State().SelectedDate)
	assert.Equal(t, message{"Loaded 1 block(s) for 2024-05-11.", false}, v.lastMessage())
}

func TestSaveBlock_ResponseOlderThanDateClickIsDiscarded(t *testing.T) {
	c, a, v := newMockedController(t)
	v.setForm(models.FormValues{Start: "09:00", End: "10:00", Label: "day1"})

	saveStarted := make(chan struct{})
	releaseSave := make(chan struct{})
	listStarted := make(chan struct{})
	releaseList := make(chan struct{})

	saved := okList(models.TimeBlock{BlockID: "b1", Start: "09:00", End: "10:00", Label: "day1"})
	saved.Parsed.Message = "Block saved"
	a.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.CreateRequest) (models.APIResult, error) {
			close(saveStarted)
			<-releaseSave
			return saved, nil
		})
	a.EXPECT().List(gomock.Any(), "user-1", "2024-05-02", adapter.Throwing).
		DoAndReturn(func(context.Context, string, string, adapter.SendOptions) (models.APIResult, error) {
			close(listStarted)
			<-releaseList
			return okList(models.TimeBlock{BlockID: "b2", Start: "11:00", Label: "day2"}), nil
		})

	saveDone := make(chan error)
	go func() { saveDone <- c.SaveBlock(context.Background()) }()
	<-saveStarted

	selectDone := make(chan error)
	go func() { selectDone <- c.SelectDate(context.Background(), "2024-05-02", nil) }()
	<-listStarted

	close(releaseSave)
	require.NoError(t, <-saveDone)
	close(releaseList)
	require.NoError(t, <-selectDone)

	tbl, ok := v.lastTable()
	require.True(t, ok)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "day2", tbl.Rows[len(tbl.Rows)-1].Label)
	assert.Equal(t, "2024-05-02", c.State().SelectedDate)
	assert.Equal(t, message{"Loaded 1 block(s) for 2024-05-02.", false}, v.lastMessage())
	assert.True(t, strings.HasPrefix(v.lastDebug(), "LIST /blocks/list"))
}

func TestSaveBlock_ResponseNewerThanDateClickIsRendered(t *testing.T) {
	c, a, v := newMockedController(t)
	v.setForm(models.FormValues{Start: "09:00", End: "10:00", Label: "day1"})

	listStarted := make(chan struct{})
	releaseList := make(chan struct{})

	a.EXPECT().List(gomock.Any(), "user-1", "2024-05-01", adapter.Throwing).
		DoAndReturn(func(context.Context, string, string, adapter.SendOptions) (models.APIResult, error) {
			close(listStarted)
			<-releaseList
			return okList(), nil
		})
	a.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(okList(models.TimeBlock{BlockID: "b1", Start: "09:00", Label: "day1"}), nil)

	selectDone := make(chan error)
	go func() { selectDone <- c.SelectDate(context.Background(), "2024-05-01", nil) }()
	<-listStarted

	require.NoError(t, c.SaveBlock(context.Background()))
	close(releaseList)
	require.NoError(t, <-selectDone)

	tbl, _ := v.lastTable()
	assert.Equal(t, "day1", tbl.Rows[0].Label)
	assert.Equal(t, 1, v.tableCount())
	assert.Equal(t, message{"Block saved.", false}, v.lastMessage())
}

func TestSelectDate_ListFailureGoesToDiagnostics(t *testing.T) {
	c, a, v := newMockedController(t)
	httpErr := &adapter.HTTPError{Status: 400, URL: "http://api.test/blocks/list", Body: `{"ok":false,"error":"Invalid date"}`}
	a.EXPECT().List(gomock.Any(), "user-1", "2024-02-30", adapter.Throwing).
		Return(models.APIResult{Status: 400}, httpErr)

	err := c.SelectDate(context.Background(), "2024-02-30", nil)
	require.ErrorIs(t, err, adapter.ErrHTTP)

	assert.Equal(t, message{httpErr.Error(), true}, v.lastMessage())
	assert.Equal(t, "LIST ERROR\n"+httpErr.Error(), v.lastDebug())
	assert.Contains(t, v.lastDebug(), "http://api.test/blocks/list")
	assert.Contains(t, v.lastDebug(), "HTTP 400")
}

func TestNavigateMonth_StartsFromFirstOfShownMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockBlocksAdapter(ctrl)
	w := mock.NewMockWidget(ctrl)
	v := &recordingView{}

	jan31 := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local)
	feb1 := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local)

	gomock.InOrder(
		w.EXPECT().CurrentDate().Return(jan31),
		w.EXPECT().GotoDate(feb1),
	)
	w.EXPECT().CurrentDate().Return(feb1).AnyTimes()
	w.EXPECT().RemoveAllEvents()
	a.EXPECT().List(gomock.Any(), "user-1", gomock.Any(), adapter.SendOptions{}).Return(okList(), nil).Times(29)

	c := New(a, identityFunc(func() string { return "user-1" }), v, logger.Nop(),
		WithCalendar(calendar.NewSyncer(a, w, 4, logger.Nop())),
		WithClock(fixedClock("2024-01-31")),
	)
	require.NoError(t, c.Identify(context.Background()))

	report := c.NavigateMonth(context.Background(), 1)
	assert.Equal(t, time.February, report.Month.Month())
	assert.Zero(t, report.Failures)
}

func TestDebugText(t *testing.T) {
	got := debugText("LIST /blocks/list", models.APIResult{Status: 200, URL: "http://x/blocks/list", RawBody: `{"ok":true}`})
	assert.Equal(t, "LIST /blocks/list\nURL: http://x/blocks/list\nHTTP: 200\nResponse:\n{\"ok\":true}", got)
}
