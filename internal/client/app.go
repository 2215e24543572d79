package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-block-calendar/internal/adapter"
	"github.com/MKhiriev/go-block-calendar/internal/calendar"
	"github.com/MKhiriev/go-block-calendar/internal/config"
	"github.com/MKhiriev/go-block-calendar/internal/controller"
	"github.com/MKhiriev/go-block-calendar/internal/logger"
	"github.com/MKhiriev/go-block-calendar/internal/service"
	"github.com/MKhiriev/go-block-calendar/internal/store"
	"github.com/MKhiriev/go-block-calendar/internal/tui"
	"github.com/MKhiriev/go-block-calendar/internal/utils"
	"github.com/MKhiriev/go-block-calendar/internal/workers"
)

// App owns every long-lived component of one blockcal process.
type App struct {
	cfg      *config.ClientConfig
	logger   *logger.Logger
	storage  store.LocalStorage
	services *service.ClientServices
	adapter  adapter.BlocksAdapter
	widget   *calendar.MonthWidget
	ctrl     *controller.Controller
	clock    utils.Clock
}

// NewApp builds the component graph and binds the controller to v.
func NewApp(ctx context.Context, cfg *config.ClientConfig, v controller.View, clock utils.Clock, log *logger.Logger) (*App, error) {
	if clock == nil {
		clock = time.Now
	}

	localStorage, err := store.NewClientStorage(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	blocksAdapter, err := adapter.NewHTTPBlocksAdapter(cfg.Adapter, log)
	if err != nil {
		_ = localStorage.Close()
		return nil, fmt.Errorf("create blocks adapter: %w", err)
	}

	services := service.NewClientServices(localStorage, log)
	widget := calendar.NewMonthWidget(clock())
	syncer := calendar.NewSyncer(blocksAdapter, widget, cfg.Adapter.MaxParallel, log)

	ctrl := controller.New(blocksAdapter, services.IdentityService, v, log,
		controller.WithCalendar(syncer),
		controller.WithClock(clock),
	)

	return &App{
		cfg:      cfg,
		logger:   log,
		storage:  localStorage,
		services: services,
		adapter:  blocksAdapter,
		widget:   widget,
		ctrl:     ctrl,
		clock:    clock,
	}, nil
}

// Controller returns the block controller.
func (a *App) Controller() *controller.Controller {
	return a.ctrl
}

// Widget returns the month calendar.
func (a *App) Widget() *calendar.MonthWidget {
	return a.widget
}

// Close releases local storage.
func (a *App) Close() error {
	return a.storage.Close()
}

// uiClient runs the terminal UI together with the background workers.
type uiClient struct {
	app *App
	ui  *tui.TUI
}

func (c *uiClient) Run(ctx context.Context) error {
	ws, err := workers.NewClientWorkers(c.app.cfg.Workers, c.app.ctrl, c.ui.Refreshed, c.app.logger)
	if err != nil {
		return fmt.Errorf("create workers: %w", err)
	}

	ws.Start(ctx)
	defer ws.Stop()

	return c.ui.Run(ctx, c.app.ctrl, c.app.widget)
}
