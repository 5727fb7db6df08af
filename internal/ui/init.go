package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"spaceevents/internal/api"
	"spaceevents/internal/config"
	"spaceevents/internal/pager"
)

func initialModel(ctx context.Context, cfg *config.Config, loader pager.PageLoader, first api.Result) *Model {
	m := &Model{
		ctx:    ctx,
		cfg:    cfg,
		loader: loader,
		nav:    pager.New(first),
		help:   help.New(),
		styles: NewStyles(cfg.Theme != config.ThemeLight),
		keymap: DefaultKeyMap(),
		spin:   spinner.New(),
		// until the first WindowSizeMsg
		width:  80,
		height: 24,
	}
	m.spin.Spinner = spinner.Dot
	m.keymap.Export.SetEnabled(cfg.ExportFormat != "")
	return m
}

// Run shows the session started by first until the user quits. A failed page
// fetch ends the session and is returned.
func Run(ctx context.Context, cfg *config.Config, loader pager.PageLoader, first api.Result) error {
	m := initialModel(ctx, cfg, loader, first)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	if fm, ok := final.(*Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}

func (m *Model) Init() tea.Cmd { return nil }
