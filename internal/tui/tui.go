package tui

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-block-calendar/internal/calendar"
	"github.com/MKhiriev/go-block-calendar/internal/controller"
	"github.com/MKhiriev/go-block-calendar/internal/logger"
	"github.com/MKhiriev/go-block-calendar/models"
)

// TUI is the full-screen terminal front end of the block calendar.
type TUI struct {
	screen *screen
	info   models.AppBuildInfo
	logger *logger.Logger

	program atomic.Pointer[tea.Program]
}

// New returns a TUI. Its View must be handed to the controller before Run.
func New(info models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		screen: newScreen(),
		info:   info,
		logger: logger,
	}
}

// View is the controller.View the controller renders into.
func (t *TUI) View() controller.View {
	return t.screen
}

// Refreshed asks a running program to redraw after a background calendar
// sync. It is safe to call from any goroutine and does nothing before Run.
func (t *TUI) Refreshed(calendar.SyncReport) {
	if p := t.program.Load(); p != nil {
		p.Send(refreshedMsg{})
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context, ctrl Controller, month MonthView) error {
	m := newModel(ctx, ctrl, month, t.screen, buildFooter(t.info))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	t.program.Store(p)
	defer t.program.Store(nil)

	t.logger.Info().Msg("starting terminal UI")
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
