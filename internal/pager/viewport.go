package pager

import "github.com/charmbracelet/x/ansi"

// Chrome is the number of terminal rows taken by the header (5) and footer (2).
const Chrome = 7

// Viewport is the scroll position over the current page. Offsets survive page
// changes; the column offset has no upper bound.
type Viewport struct {
	LineOffset int
	ColOffset  int
}

// BodyHeight is how many table rows fit in a terminal termH rows tall.
func BodyHeight(termH int) int { return max(termH-Chrome, 0) }

// ScrollDown moves one line down while the last line is not yet visible.
func (v *Viewport) ScrollDown(total, height int) {
	if v.LineOffset+height < total {
		v.LineOffset++
	}
}

func (v *Viewport) ScrollUp() {
	if v.LineOffset > 0 {
		v.LineOffset--
	}
}

func (v *Viewport) PanRight() { v.ColOffset++ }

func (v *Viewport) PanLeft() {
	if v.ColOffset > 0 {
		v.ColOffset--
	}
}

// Top is the first line shown for a page of total lines: the stored offset,
// held back so a non-empty page always shows at least its last line. The
// stored offset itself is left alone so it survives page changes.
func (v Viewport) Top(total int) int {
	return min(max(v.LineOffset, 0), max(total-1, 0))
}

// Render returns the visible slice of lines for a termH x termW terminal,
// each cut to the display columns [ColOffset, ColOffset+termW-1). Lines past
// either end of the page are never returned.
func (v Viewport) Render(lines []string, termH, termW int) []string {
	height := BodyHeight(termH)
	from := v.Top(len(lines))
	to := min(from+height, len(lines))
	if from >= to {
		return nil
	}
	width := max(termW-1, 0)
	out := make([]string, 0, to-from)
	for _, l := range lines[from:to] {
		if width == 0 {
			out = append(out, "")
			continue
		}
		out = append(out, ansi.Cut(l, v.ColOffset, v.ColOffset+width))
	}
	return out
}
