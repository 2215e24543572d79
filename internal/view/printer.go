package view

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// PrintTable writes t to w as an aligned text table with a bold header.
// Block ids are shown in the last column so they can be passed to the delete
// command.
func PrintTable(w io.Writer, t Table) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true

	tbl.AddRow(bold.Sprint("Start"), bold.Sprint("End"), bold.Sprint("Label"), bold.Sprint("Created"), bold.Sprint("ID"))
	if t.Empty() {
		tbl.AddRow(faint.Sprint(EmptyPlaceholder))
	} else {
		for _, r := range t.Rows {
			tbl.AddRow(r.Start, r.End, r.Label, faint.Sprint(r.CreatedAt), faint.Sprint(r.BlockID))
		}
	}

	_, _ = fmt.Fprintln(w, tbl)
}
