package controller

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-block-calendar/internal/adapter"
	"github.com/MKhiriev/go-block-calendar/internal/calendar"
	"github.com/MKhiriev/go-block-calendar/internal/logger"
	"github.com/MKhiriev/go-block-calendar/internal/service"
	"github.com/MKhiriev/go-block-calendar/internal/utils"
	"github.com/MKhiriev/go-block-calendar/internal/view"
	"github.com/MKhiriev/go-block-calendar/models"
)

// Controller coordinates the view, the calendar and the API.
// It is safe for concurrent use; its mutex is never held across a network
// call.
type Controller struct {
	adapter  adapter.BlocksAdapter
	identity service.IdentityService
	syncer   *calendar.Syncer
	view     View
	clock    utils.Clock

	mu     sync.Mutex
	state  AppState
	lists  generations
	months generations

	logger *logger.Logger
}

// Option configures a [Controller].
type Option func(*Controller)

// WithCalendar enables month synchronisation through syncer.
func WithCalendar(syncer *calendar.Syncer) Option {
	return func(c *Controller) {
		c.syncer = syncer
	}
}

// WithClock replaces the wall clock used to determine today.
func WithClock(clock utils.Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// New returns a Controller. Without [WithCalendar] calendar refreshes are
// no-ops.
func New(a adapter.BlocksAdapter, identity service.IdentityService, v View, logger *logger.Logger, opts ...Option) *Controller {
	c := &Controller{
		adapter:  a,
		identity: identity,
		view:     v,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() AppState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Today returns the local ISO date according to the controller's clock.
func (c *Controller) Today() string {
	return utils.TodayISO(c.clock)
}

// Identify resolves the profile identifier and selects today.
func (c *Controller) Identify(ctx context.Context) error {
	userID, err := c.identity.GetOrCreateUserID(ctx)
	if err != nil {
		c.view.ShowMessage(err.Error(), true)
		return err
	}

	c.mu.Lock()
	c.state.UserID = userID
	c.mu.Unlock()
	c.logger.Debug().Str("user_id", userID).Msg("profile identified")

	return c.SetSelectedDate(c.Today(), nil)
}

// Init identifies the profile, selects today and loads its blocks.
// A failed load is reported and returned but leaves the controller usable.
func (c *Controller) Init(ctx context.Context) error {
	if err := c.Identify(ctx); err != nil {
		return err
	}

	if t, err := utils.ParseISODate(c.State().SelectedDate); err == nil && c.syncer != nil {
		c.syncer.Widget().GotoDate(t)
	}

	if err := c.listBlocks(ctx, c.State().SelectedDate, true); err != nil {
		c.view.ShowMessage(err.Error(), true)
		c.view.SetDebug("INITIAL LOAD ERROR\n" + err.Error())
		return err
	}
	return nil
}

// SetSelectedDate makes date the active date and updates the date field, the
// title and the calendar highlight. Dates not shaped YYYY-MM-DD are rejected.
func (c *Controller) SetSelectedDate(date string, origin *models.GridCell) error {
	if !utils.IsISODate(date) {
		return &ValidationError{Field: "date", Value: date, Message: msgInvalidSelectedDate}
	}

	c.mu.Lock()
	c.state.SelectedDate = date
	c.mu.Unlock()

	c.view.SetDateField(date)
	c.view.SetTitle("Selected Date: " + date)
	c.view.HighlightDate(date, origin)
	return nil
}

// SelectDate handles a click on a calendar day: it selects the date and lists
// its blocks.
func (c *Controller) SelectDate(ctx context.Context, date string, origin *models.GridCell) error {
	if err := c.SetSelectedDate(date, origin); err != nil {
		c.view.ShowMessage(err.Error(), true)
		return err
	}
	if err := c.listBlocks(ctx, date, true); err != nil {
		c.view.ShowMessage(err.Error(), true)
		c.view.SetDebug("LIST ERROR\n" + err.Error())
		return err
	}
	return nil
}

// DateFieldChanged selects date when it is well formed and ignores it
// otherwise. No request is made.
func (c *Controller) DateFieldChanged(date string) {
	if utils.IsISODate(date) {
		_ = c.SetSelectedDate(date, nil)
	}
}

// LoadSelectedDate selects the date typed into the form, moves the calendar to
// its month and lists its blocks.
func (c *Controller) LoadSelectedDate(ctx context.Context) error {
	input := c.view.ReadForm().Date
	if !utils.IsISODate(input) {
		c.view.ShowMessage(msgEnterDate, true)
		return &ValidationError{Field: "date", Value: input, Message: msgEnterDate}
	}

	if err := c.SetSelectedDate(input, nil); err != nil {
		c.view.ShowMessage(err.Error(), true)
		c.view.SetDebug("LOAD ERROR\n" + err.Error())
		return err
	}
	monthChanged := c.gotoDate(input)

	err := c.listBlocks(ctx, input, true)
	if err != nil {
		c.view.ShowMessage(err.Error(), true)
		c.view.SetDebug("LOAD ERROR\n" + err.Error())
	}

	if monthChanged {
		c.RefreshCalendar(ctx)
	}
	return err
}

// SaveBlock validates the form and creates a block on the selected date.
func (c *Controller) SaveBlock(ctx context.Context) error {
	form := c.view.ReadForm()
	st := c.State()
	label := strings.TrimSpace(form.Label)

	switch {
	case st.SelectedDate == "" || !utils.IsISODate(st.SelectedDate):
		return c.reject("date", st.SelectedDate, msgSelectValidDate)
	case form.Start == "" || form.End == "" || label == "":
		return c.reject("form", "", msgFieldsRequired)
	case !utils.IsClockTime(form.Start):
		return c.reject("start", form.Start, msgClockTime)
	case !utils.IsClockTime(form.End):
		return c.reject("end", form.End, msgClockTime)
	case form.End <= form.Start:
		return c.reject("end", form.End, msgEndAfterStart)
	}

	gen := c.reserveList()
	res, err := c.adapter.Create(ctx, models.CreateRequest{
		UserID: st.UserID,
		Date:   st.SelectedDate,
		Start:  form.Start,
		End:    form.End,
		Label:  label,
	})
	if err != nil {
		c.view.ShowMessage(err.Error(), true)
		c.view.SetDebug("SAVE ERROR\n" + err.Error())
		return err
	}

	c.applyMutation(gen, res, msgBlockSaved, "POST /blocks")
	c.RefreshCalendar(ctx)
	return nil
}

// DeleteBlock removes blockID from the selected date.
func (c *Controller) DeleteBlock(ctx context.Context, blockID string) error {
	st := c.State()

	gen := c.reserveList()
	res, err := c.adapter.Delete(ctx, models.DeleteRequest{
		UserID:  st.UserID,
		Date:    st.SelectedDate,
		BlockID: blockID,
	})
	if err != nil {
		c.view.ShowMessage(err.Error(), true)
		c.view.SetDebug("DELETE ERROR\n" + err.Error())
		return err
	}

	c.applyMutation(gen, res, msgDeleted, "POST /blocks/delete")
	c.RefreshCalendar(ctx)
	return nil
}

// RunConnectionTest lists today's blocks without throwing and reports the
// HTTP status. The table and the selection are left untouched.
func (c *Controller) RunConnectionTest(ctx context.Context) error {
	res, err := c.adapter.List(ctx, c.State().UserID, c.Today(), adapter.SendOptions{})
	if err != nil {
		c.view.ShowMessage(msgConnectionNoResp, true)
		c.view.SetDebug("CONNECTION TEST ERROR\n" + err.Error())
		return err
	}

	c.view.SetDebug(debugText("CONNECTION TEST", res))
	if !res.IsSuccess() {
		c.view.ShowMessage(fmt.Sprintf("Connection test failed (HTTP %d).", res.Status), true)
		return fmt.Errorf("%w: HTTP %d", ErrConnectionTestFailed, res.Status)
	}

	c.view.ShowMessage(fmt.Sprintf("Connection test succeeded (HTTP %d).", res.Status), false)
	return nil
}

// RefreshCalendar reloads the displayed month and re-highlights the selected
// date. Day failures are reported as a warning.
func (c *Controller) RefreshCalendar(ctx context.Context) calendar.SyncReport {
	if c.syncer == nil {
		return calendar.SyncReport{}
	}

	c.mu.Lock()
	userID := c.state.UserID
	if userID == "" {
		c.mu.Unlock()
		c.logger.Debug().Msg("skipping month sync before the profile is identified")
		return calendar.SyncReport{}
	}
	gen := c.months.next()
	c.mu.Unlock()

	report := c.syncer.FetchMonth(ctx, userID, c.syncer.Widget().CurrentDate())

	c.mu.Lock()
	if !c.months.accept(gen) {
		c.mu.Unlock()
		c.logger.Debug().Uint64("generation", gen).Msg("discarding stale month sync")
		return report
	}
	c.syncer.Apply(report)
	selected := c.state.SelectedDate
	c.mu.Unlock()

	if report.Failures > 0 {
		c.view.ShowMessage(fmt.Sprintf(
			"Calendar loaded with %d day request failure(s). Check Connection Test for details.",
			report.Failures), true)
		c.view.SetDebug("MONTH SYNC ERROR\nFailed days: " + strings.Join(report.FailedDays, ", "))
	}
	c.view.HighlightDate(selected, nil)

	return report
}

// NavigateMonth shows the month delta months away and reloads it.
func (c *Controller) NavigateMonth(ctx context.Context, delta int) calendar.SyncReport {
	if c.syncer == nil {
		return calendar.SyncReport{}
	}
	w := c.syncer.Widget()
	shown := w.CurrentDate()
	first := time.Date(shown.Year(), shown.Month(), 1, 0, 0, 0, 0, shown.Location())
	w.GotoDate(first.AddDate(0, delta, 0))
	return c.RefreshCalendar(ctx)
}

func (c *Controller) listBlocks(ctx context.Context, date string, showStatus bool) error {
	gen := c.reserveList()
	userID := c.State().UserID

	res, err := c.adapter.List(ctx, userID, date, adapter.Throwing)
	if err != nil {
		return err
	}

	blocks := res.Parsed.BlockList()
	if !c.renderIfCurrent(gen, blocks) {
		return nil
	}
	if showStatus {
		c.view.ShowMessage(fmt.Sprintf("Loaded %d block(s) for %s.", len(blocks), date), false)
	}
	c.view.SetDebug(debugText("LIST /blocks/list", res))
	return nil
}

// reserveList takes a list generation before a request that answers with a
// block list is sent, so the answer is ordered by when it was asked for.
func (c *Controller) reserveList() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lists.next()
}

// applyMutation renders the list returned by a create or delete call issued
// under gen. Nothing is shown when a newer list was already applied.
func (c *Controller) applyMutation(gen uint64, res models.APIResult, defaultMsg, debugTitle string) {
	if !c.renderIfCurrent(gen, res.Parsed.BlockList()) {
		return
	}

	msg := defaultMsg
	if res.Parsed != nil && res.Parsed.Message != "" {
		msg = res.Parsed.Message
	}
	c.view.ShowMessage(msg, false)
	c.view.SetDebug(debugText(debugTitle, res))
}

func (c *Controller) renderIfCurrent(gen uint64, blocks []models.TimeBlock) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lists.accept(gen) {
		c.logger.Debug().Uint64("generation", gen).Msg("discarding stale block list")
		return false
	}
	c.view.RenderTable(view.BuildTable(blocks))
	return true
}

// gotoDate moves the calendar to date and reports whether the month changed.
func (c *Controller) gotoDate(date string) bool {
	if c.syncer == nil {
		return false
	}
	t, err := utils.ParseISODate(date)
	if err != nil {
		c.logger.Debug().Str("date", date).Msg("not navigating to impossible date")
		return false
	}

	w := c.syncer.Widget()
	before := w.CurrentDate()
	w.GotoDate(t)
	after := w.CurrentDate()
	return before.Year() != after.Year() || before.Month() != after.Month()
}

func (c *Controller) reject(field, value, msg string) error {
	c.view.ShowMessage(msg, true)
	return &ValidationError{Field: field, Value: value, Message: msg}
}

func debugText(title string, res models.APIResult) string {
	body := res.RawBody
	if body == "" {
		body = "<empty>"
	}
	return fmt.Sprintf("%s\nURL: %s\nHTTP: %d\nResponse:\n%s", title, res.URL, res.Status, body)
}
