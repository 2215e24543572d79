// Package view turns block lists into display-ready tables.
//
// The package is UI agnostic: [BuildTable] produces a [Table] of escaped
// strings that the terminal UI and the plain CLI printer both render.
package view

import (
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"github.com/MKhiriev/go-block-calendar/models"
)

// EmptyPlaceholder is the single row shown when a date has no blocks.
const EmptyPlaceholder = "No blocks for this date."

// Headers are the column titles of a block table.
var Headers = []string{"Start", "End", "Label", "Created", ""}

// Row is one line of a block table.
type Row struct {
	Start     string
	End       string
	Label     string
	CreatedAt string

	// BlockID is the target of the row's delete action. It is empty for the
	// placeholder row.
	BlockID string
}

// Cells returns the row in column order. The last column is the delete
// action label.
func (r Row) Cells() []string {
	if r.IsPlaceholder() {
		return []string{EmptyPlaceholder, "", "", "", ""}
	}
	return []string{r.Start, r.End, r.Label, r.CreatedAt, "Delete"}
}

// IsPlaceholder reports whether r is the empty-table placeholder.
func (r Row) IsPlaceholder() bool {
	return r.BlockID == "" && r.Start == "" && r.Label == EmptyPlaceholder
}

// Table is the rendered form of a block list.
type Table struct {
	Rows []Row
}

// Empty reports whether the table holds only the placeholder.
func (t Table) Empty() bool {
	return len(t.Rows) == 1 && t.Rows[0].IsPlaceholder()
}

// SortBlocks returns a copy of blocks ordered by start time. The sort is
// stable, so blocks with equal starts keep their server order.
func SortBlocks(blocks []models.TimeBlock) []models.TimeBlock {
	sorted := make([]models.TimeBlock, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})
	return sorted
}

// BuildTable sorts blocks and converts them into escaped rows.
// An empty list yields exactly one placeholder row.
func BuildTable(blocks []models.TimeBlock) Table {
	sorted := SortBlocks(blocks)
	if len(sorted) == 0 {
		return Table{Rows: []Row{{Label: EmptyPlaceholder}}}
	}

	rows := make([]Row, 0, len(sorted))
	for _, b := range sorted {
		rows = append(rows, Row{
			Start:     Escape(b.Start),
			End:       Escape(b.End),
			Label:     Escape(b.Label),
			CreatedAt: Escape(b.CreatedAt),
			BlockID:   b.BlockID,
		})
	}
	return Table{Rows: rows}
}

// Escape neutralises terminal markup in s: ANSI escape sequences are removed
// and any remaining control characters become spaces.
func Escape(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}
