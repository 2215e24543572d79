package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-block-calendar/internal/calendar"
	"github.com/MKhiriev/go-block-calendar/internal/config"
	"github.com/MKhiriev/go-block-calendar/internal/controller"
	"github.com/MKhiriev/go-block-calendar/internal/logger"
	"github.com/MKhiriev/go-block-calendar/internal/tui"
	"github.com/MKhiriev/go-block-calendar/internal/utils"
	"github.com/MKhiriev/go-block-calendar/models"
)

const (
	appRole     = "blockcal"
	monthLayout = "2006-01"
)

type rootOptions struct {
	flags   *config.Flags
	verbose bool
	info    models.AppBuildInfo
	out     io.Writer
	errOut  io.Writer
	clock   utils.Clock
}

// NewRootCommand returns the blockcal command tree. Running it without a
// subcommand starts the terminal UI.
func NewRootCommand(info models.AppBuildInfo) *cobra.Command {
	return newRootCommand(&rootOptions{
		info:   info,
		out:    os.Stdout,
		errOut: os.Stderr,
		clock:  time.Now,
	})
}

func newRootCommand(o *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "blockcal",
		Short:         "Plan your day in time blocks",
		Long:          "blockcal keeps labelled time blocks per calendar day on a remote blocks API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runUI(cmd.Context())
		},
	}
	o.flags = config.BindFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Print request diagnostics")

	root.AddCommand(
		o.uiCommand(),
		o.listCommand(),
		o.saveCommand(),
		o.deleteCommand(),
		o.monthCommand(),
		o.exportCommand(),
		o.pingCommand(),
		o.whoamiCommand(),
		o.versionCommand(),
	)
	return root
}

// withApp loads the configuration, builds an App around a console view and
// identifies the profile before calling fn.
func (o *rootOptions) withApp(ctx context.Context, form models.FormValues, verbose bool, fn func(ctx context.Context, app *App) error) error {
	cfg, err := config.GetClientConfig(o.flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	log := logger.NewClientLogger(appRole, cfg.App.LogFile)

	v := newConsoleView(o.out, o.errOut, o.verbose || verbose, form)
	app, err := NewApp(ctx, cfg, v, o.clock, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			log.Err(cerr).Msg("closing local storage")
		}
	}()

	if err = app.ctrl.Identify(ctx); err != nil {
		return reported(err)
	}
	return fn(ctx, app)
}

func (o *rootOptions) runUI(ctx context.Context) error {
	cfg, err := config.GetClientConfig(o.flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	log := logger.NewClientLogger(appRole, cfg.App.LogFile)

	ui := tui.New(o.info, log)
	app, err := NewApp(ctx, cfg, ui.View(), o.clock, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			log.Err(cerr).Msg("closing local storage")
		}
	}()

	var c Client = &uiClient{app: app, ui: ui}
	return c.Run(ctx)
}

func (o *rootOptions) uiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the full-screen calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runUI(cmd.Context())
		},
	}
}

func (o *rootOptions) listCommand() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "list [date]",
		Short: "List the blocks of a day",
		Example: `
blockcal list
blockcal list 2024-03-01
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				date = args[0]
			}
			return o.withApp(cmd.Context(), models.FormValues{}, false, func(ctx context.Context, app *App) error {
				if date == "" {
					date = app.ctrl.Today()
				}
				return reported(app.ctrl.SelectDate(ctx, date, nil))
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day to list, YYYY-MM-DD (default today)")
	return cmd
}

func (o *rootOptions) saveCommand() *cobra.Command {
	var form models.FormValues
	cmd := &cobra.Command{
		Use:     "save",
		Short:   "Save a new time block",
		Example: `blockcal save --date 2024-03-01 --start 09:00 --end 09:30 --label Standup`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd.Context(), form, false, func(ctx context.Context, app *App) error {
				if err := selectDate(app.ctrl, form.Date); err != nil {
					return err
				}
				return reported(app.ctrl.SaveBlock(ctx))
			})
		},
	}
	cmd.Flags().StringVar(&form.Date, "date", "", "Day of the block, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&form.Start, "start", "", "Start time, HH:MM")
	cmd.Flags().StringVar(&form.End, "end", "", "End time, HH:MM")
	cmd.Flags().StringVar(&form.Label, "label", "", "What the block is for")
	return cmd
}

func (o *rootOptions) deleteCommand() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "delete <block-id>",
		Short: "Delete a time block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd.Context(), models.FormValues{}, false, func(ctx context.Context, app *App) error {
				if err := selectDate(app.ctrl, date); err != nil {
					return err
				}
				return reported(app.ctrl.DeleteBlock(ctx, args[0]))
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day the block belongs to, YYYY-MM-DD (default today)")
	return cmd
}

func (o *rootOptions) monthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show a month with its busy days",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd.Context(), models.FormValues{}, false, func(ctx context.Context, app *App) error {
				report, err := syncMonth(ctx, app, args)
				if err != nil {
					return err
				}

				st := app.ctrl.State()
				calendar.PrintMonth(o.out, app.widget.CurrentDate(), report.Events, st.SelectedDate, app.ctrl.Today())
				printEvents(o.out, report.Events)
				return nil
			})
		},
	}
}

func (o *rootOptions) exportCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export [YYYY-MM]",
		Short: "Export a month as an iCalendar file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd.Context(), models.FormValues{}, false, func(ctx context.Context, app *App) error {
				report, err := syncMonth(ctx, app, args)
				if err != nil {
					return err
				}

				path := output
				if path == "" {
					path = calendar.MonthFileName(app.widget.CurrentDate())
				}
				if err = writeICS(path, report.Events, app.clock()); err != nil {
					return err
				}
				printf(o.out, "Exported %d block(s) to %s\n", len(report.Events), path)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default blockcal-YYYY-MM.ics)")
	return cmd
}

func (o *rootOptions) pingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Run a connection test against the blocks API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd.Context(), models.FormValues{}, true, func(ctx context.Context, app *App) error {
				printf(o.out, "API: %s\n", app.adapter.BaseURL())
				return reported(app.ctrl.RunConnectionTest(ctx))
			})
		},
	}
}

func (o *rootOptions) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the profile identifier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd.Context(), models.FormValues{}, false, func(ctx context.Context, app *App) error {
				printf(o.out, "%s\n", app.ctrl.State().UserID)
				return nil
			})
		},
	}
}

func (o *rootOptions) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printf(o.out, "%s\n", o.info)
		},
	}
}

// selectDate makes date the selected date. An empty date keeps today.
func selectDate(ctrl *controller.Controller, date string) error {
	if date == "" {
		return nil
	}
	return ctrl.SetSelectedDate(date, nil)
}

// syncMonth moves the calendar to the month in args, if any, and loads it.
func syncMonth(ctx context.Context, app *App, args []string) (calendar.SyncReport, error) {
	if len(args) == 1 {
		anchor, err := time.ParseInLocation(monthLayout, args[0], time.Local)
		if err != nil {
			return calendar.SyncReport{}, fmt.Errorf("%w: month must be YYYY-MM, got %q", ErrUnexpectedArgs, args[0])
		}
		app.widget.GotoDate(anchor)
	}
	return app.ctrl.RefreshCalendar(ctx), nil
}

func printEvents(w io.Writer, events []models.CalendarEvent) {
	if len(events) == 0 {
		return
	}
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range events {
		tbl.AddRow(e.Date(), clockPart(e.Start)+"-"+clockPart(e.End), e.Title, faint.Sprint(e.ID))
	}
	printf(w, "\n%s\n", tbl)
}

func writeICS(path string, events []models.CalendarEvent, now time.Time) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err = calendar.ExportICS(f, events, now); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// clockPart returns the HH:MM part of a "2006-01-02T15:04" date-time.
func clockPart(dateTime string) string {
	if len(dateTime) < len("2006-01-02T15:04") {
		return dateTime
	}
	return dateTime[11:16]
}
