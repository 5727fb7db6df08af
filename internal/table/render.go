// Package table turns a page of events into the fixed-width text grid the
// pager scrolls over.
package table

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"spaceevents/internal/model"
)

// Renderer is stateless apart from its optional filter; Render is safe to
// call from any goroutine.
type Renderer struct {
	Filter *Filter
}

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Render builds the grid for events. An empty input yields model.NoEvents;
// input that the filter empties yields model.NoMatches.
func (r Renderer) Render(events []model.Event) model.RenderedPage {
	if len(events) == 0 {
		return model.NoEvents
	}
	kept := r.Filter.Apply(events)
	if len(kept) == 0 {
		return model.NoMatches
	}

	headers := append([]string{"id"}, model.Columns...)
	rows := make([][]string, 0, len(kept))
	for _, e := range kept {
		rows = append(rows, row(e))
	}

	t := ltable.New().
		Border(lipgloss.ASCIIBorder()).
		BorderRow(true).
		StyleFunc(func(int, int) lipgloss.Style { return cellStyle }).
		Headers(headers...).
		Rows(rows...)

	lines := strings.Split(t.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return model.RenderedPage{Kind: model.KindTable, Lines: lines, Events: kept}
}

func row(e model.Event) []string {
	f := e.Fields()
	out := make([]string, 0, len(model.Columns)+1)
	out = append(out, strconv.FormatInt(e.ID, 10))
	for _, c := range model.Columns {
		s := anyToString(f[c])
		if c == "description" {
			s = wrapText(s, DescriptionWidth)
		}
		out = append(out, s)
	}
	return out
}
