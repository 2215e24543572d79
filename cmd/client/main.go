package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/MKhiriev/go-block-calendar/internal/client"
	"github.com/MKhiriev/go-block-calendar/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if err := client.NewRootCommand(info).ExecuteContext(ctx); err != nil {
		if !client.IsReported(err) {
			_, _ = color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}
