// Package ui is the full-screen pager: it routes keys to the viewport and
// the navigator and draws the visible part of the current page.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"

	"spaceevents/internal/config"
	"spaceevents/internal/pager"
)

const minWidth = 20

type Model struct {
	ctx    context.Context
	cfg    *config.Config
	loader pager.PageLoader

	nav *pager.Navigator
	vp  pager.Viewport

	width  int
	height int

	// waiting is set while a page fetch is in flight; keys other than quit are dropped.
	waiting bool
	status  string
	// statusErr renders status as a failure.
	statusErr bool
	// err is the fetch error that ended the session.
	err error

	spin   spinner.Model
	help   help.Model
	keymap KeyMap
	styles Styles
}

// Err returns the error that ended the session, if any.
func (m *Model) Err() error { return m.err }

func (m *Model) tooSmall() bool {
	return m.height < pager.Chrome+1 || m.width < minWidth
}

func (m *Model) bodyHeight() int { return pager.BodyHeight(m.height) }
