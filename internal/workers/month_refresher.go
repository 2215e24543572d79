package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/MKhiriev/go-block-calendar/internal/calendar"
	"github.com/MKhiriev/go-block-calendar/internal/logger"
)

// RefreshHook is called after every scheduled refresh.
type RefreshHook func(calendar.SyncReport)

// MonthRefresher reloads the displayed month on a cron schedule. Runs never
// overlap: a tick that fires while the previous refresh is still running is
// skipped.
type MonthRefresher struct {
	target    CalendarRefresher
	onRefresh RefreshHook
	cron      *cron.Cron

	mu  sync.Mutex
	ctx context.Context

	logger *logger.Logger
}

// NewMonthRefresher schedules target on spec (standard cron syntax or
// descriptors such as "@every 5m").
func NewMonthRefresher(target CalendarRefresher, spec string, onRefresh RefreshHook, logger *logger.Logger) (*MonthRefresher, error) {
	cl := cronLogger{logger}
	m := &MonthRefresher{
		target:    target,
		onRefresh: onRefresh,
		cron:      cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		ctx:       context.Background(),
		logger:    logger,
	}

	if _, err := m.cron.AddFunc(spec, m.run); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	return m, nil
}

// Start begins the schedule. Refreshes run with ctx.
func (m *MonthRefresher) Start(ctx context.Context) {
	m.mu.Lock()
	m.ctx = ctx
	m.mu.Unlock()

	m.cron.Start()
	m.logger.Debug().Msg("month refresher started")
}

// Stop halts the schedule and waits for a running refresh to return.
func (m *MonthRefresher) Stop() {
	<-m.cron.Stop().Done()
	m.logger.Debug().Msg("month refresher stopped")
}

func (m *MonthRefresher) run() {
	m.mu.Lock()
	ctx := m.ctx
	m.mu.Unlock()

	if ctx.Err() != nil {
		return
	}

	report := m.target.RefreshCalendar(ctx)
	m.logger.Debug().
		Str("month", report.Month.Format("2006-01")).
		Int("failures", report.Failures).
		Msg("scheduled month refresh")

	if m.onRefresh != nil {
		m.onRefresh(report)
	}
}

// cronLogger adapts the application logger to cron.Logger.
type cronLogger struct {
	l *logger.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
