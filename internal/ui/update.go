package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"spaceevents/internal/export"
	"spaceevents/internal/pager"
	"spaceevents/internal/util/logx"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Only the latest geometry matters; the next View clips against it.
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case pageMsg:
		m.waiting = false
		if msg.err != nil {
			m.nav.Fail()
			m.err = msg.err
			logx.Errorf("ui: page fetch failed: %v", msg.err)
			return m, tea.Quit
		}
		m.nav.Apply(msg.res)
		m.status, m.statusErr = "", false
		return m, nil
	case exportMsg:
		m.statusErr = false
		switch {
		case errors.Is(msg.err, export.ErrNothing):
			m.status = "nothing to export on this screen"
		case msg.err != nil:
			m.status = "export failed: " + msg.err.Error()
			m.statusErr = true
			logx.Warnf("ui: export to %s failed: %v", msg.path, msg.err)
		default:
			m.status = fmt.Sprintf("exported %d events to %s", msg.n, msg.path)
			logx.Infof("ui: exported %d events to %s", msg.n, msg.path)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Quit) {
		return m, tea.Quit
	}
	// One transition at a time.
	if m.waiting {
		return m, nil
	}
	// Any other key just redraws the expand notice.
	if m.tooSmall() {
		return m, nil
	}

	total := m.nav.Current().Len()
	switch {
	case key.Matches(msg, m.keymap.Down):
		m.vp.ScrollDown(total, m.bodyHeight())
	case key.Matches(msg, m.keymap.Up):
		m.vp.ScrollUp()
	case key.Matches(msg, m.keymap.Right):
		m.vp.PanRight()
	case key.Matches(msg, m.keymap.Left):
		m.vp.PanLeft()
	case key.Matches(msg, m.keymap.Next):
		return m, m.navigate(pager.Advance)
	case key.Matches(msg, m.keymap.Prev):
		return m, m.navigate(pager.Retreat)
	case key.Matches(msg, m.keymap.Export):
		return m, m.exportPage()
	}
	return m, nil
}

func (m *Model) navigate(dir pager.Direction) tea.Cmd {
	t, err := m.nav.Plan(dir)
	if err != nil {
		logx.Debugf("ui: %s ignored: %v", dir, err)
		return nil
	}
	switch t.Action {
	case pager.ActionShown:
		m.status, m.statusErr = "", false
	case pager.ActionFetch:
		m.waiting = true
		return tea.Batch(m.spin.Tick, fetchPage(m.ctx, m.loader, t.Cursor))
	}
	return nil
}

func fetchPage(ctx context.Context, l pager.PageLoader, cursor string) tea.Cmd {
	return func() tea.Msg {
		res, err := l.Load(ctx, cursor)
		return pageMsg{res: res, err: err}
	}
}

func (m *Model) exportPage() tea.Cmd {
	format, path := m.cfg.ExportFormat, m.cfg.ExportOut
	events := m.nav.Current().Events
	return func() tea.Msg {
		err := export.Write(format, path, events)
		return exportMsg{path: path, n: len(events), err: err}
	}
}
