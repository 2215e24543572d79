package client

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/MKhiriev/go-block-calendar/internal/view"
	"github.com/MKhiriev/go-block-calendar/models"
)

// consoleView prints what the controller renders. The form is fixed when the
// view is created from command line flags.
type consoleView struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	verbose bool
	form    models.FormValues
}

func newConsoleView(out, errOut io.Writer, verbose bool, form models.FormValues) *consoleView {
	return &consoleView{out: out, errOut: errOut, verbose: verbose, form: form}
}

func (v *consoleView) RenderTable(t view.Table) {
	v.mu.Lock()
	defer v.mu.Unlock()
	view.PrintTable(v.out, t)
}

func (v *consoleView) ShowMessage(msg string, isError bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if isError {
		_, _ = color.New(color.FgRed).Fprintln(v.errOut, msg)
		return
	}
	_, _ = color.New(color.FgGreen).Fprintln(v.out, msg)
}

func (v *consoleView) SetDebug(text string) {
	if !v.verbose {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	_, _ = color.New(color.Faint).Fprintln(v.errOut, text)
}

func (v *consoleView) SetDateField(string) {}

func (v *consoleView) SetTitle(title string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, _ = color.New(color.Bold).Fprintln(v.out, title)
}

func (v *consoleView) HighlightDate(string, *models.GridCell) {}

func (v *consoleView) ReadForm() models.FormValues {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.form
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
