package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"spaceevents/internal/model"
)

const (
	title    = "SPACEFLIGHT EVENTS LIBRARY"
	titleCol = 45
	infoLink = "For more info about the events visit: https://thespacedevs.com/llapi"
)

var usage = []string{
	" Click any arrow key to display the data",
	" Use arrow keys to navigate",
	" To exit the program press 'q'",
	" Press 'n' or 'p' to go 'next page' or previous page'",
}

func (m *Model) View() string {
	if m.tooSmall() {
		return m.expandView()
	}
	rows := make([]string, 0, m.height)
	rows = append(rows, strings.Repeat(" ", titleCol)+m.styles.Title.Render(title))
	for _, u := range usage {
		rows = append(rows, m.styles.Usage.Render(u))
	}

	body := m.body()
	for i := range m.bodyHeight() {
		if i < len(body) {
			rows = append(rows, body[i])
		} else {
			rows = append(rows, "")
		}
	}

	rows = append(rows, m.statusLine())
	rows = append(rows, m.styles.Footer.Render(infoLink))
	return m.clip(rows)
}

func (m *Model) body() []string {
	if m.waiting {
		return []string{"", "", "", strings.Repeat(" ", 48) + m.spin.View() + m.styles.Notice.Render("PLEASE WAIT...")}
	}
	lines := m.vp.Render(m.nav.Current().Lines, m.height, m.width)
	for i, l := range lines {
		lines[i] = m.styles.Table.Render(l)
	}
	return lines
}

func (m *Model) statusLine() string {
	cur := m.nav.Current()
	var seg string
	switch cur.Kind {
	case model.KindTable:
		seg = fmt.Sprintf(" %d events | %d on this page | line %d/%d col %d/%d",
			m.nav.Count(), len(cur.Events), m.vp.Top(cur.Len())+1, cur.Len(), m.vp.ColOffset, cur.Width())
		if m.nav.HasPrev() {
			seg = " ◂ more |" + seg
		}
		if m.nav.HasNext() {
			seg += " | more ▸"
		}
	case model.KindEmpty:
		seg = fmt.Sprintf(" %d events", m.nav.Count())
	default:
		seg = " " + cur.Kind.String()
	}
	if m.cfg.Where != "" {
		seg += " | where " + m.cfg.Where
	}
	out := m.styles.Status.Render(seg)
	switch {
	case m.status != "" && m.statusErr:
		out += m.styles.Error.Render("  " + m.status)
	case m.status != "":
		out += m.styles.Notice.Render("  " + m.status)
	default:
		out += "  " + m.help.View(m.keymap)
	}
	return out
}

func (m *Model) expandView() string {
	msg := "PLEASE EXPAND THE WINDOW"
	pad := max((m.width-len(msg))/2, 0)
	return m.clip([]string{"", m.styles.Notice.Render(strings.Repeat(" ", pad) + msg)})
}

// clip keeps every row inside the terminal so nothing wraps.
func (m *Model) clip(rows []string) string {
	w := max(m.width-1, 0)
	if m.height > 0 && len(rows) > m.height {
		rows = rows[:m.height]
	}
	for i, r := range rows {
		rows[i] = ansi.Truncate(r, w, "")
	}
	return strings.Join(rows, "\n")
}
