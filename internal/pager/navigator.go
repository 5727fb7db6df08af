// Package pager holds the session state of the events pager: which page is
// current, the one-page cache in each direction, and the scroll offsets.
package pager

import (
	"context"
	"errors"

	"spaceevents/internal/api"
	"spaceevents/internal/model"
	"spaceevents/internal/util"
	"spaceevents/internal/util/logx"
)

// ErrBusy is returned by Plan while a fetch planned earlier has not been
// applied or failed yet.
var ErrBusy = errors.New("pager: navigation already in progress")

// Direction is the way a navigation key moves through the pages.
type Direction int

const (
	Advance Direction = iota
	Retreat
)

func (d Direction) String() string {
	if d == Retreat {
		return "retreat"
	}
	return "advance"
}

// Action is what a planned transition needs from the caller.
type Action int

const (
	// ActionNone means the key was absorbed and nothing changed.
	ActionNone Action = iota
	// ActionShown means the transition completed from cache or by showing a boundary screen.
	ActionShown
	// ActionFetch means Cursor must be loaded and passed to Apply or Fail.
	ActionFetch
)

// Transition is the outcome of Plan; Cursor is set only for ActionFetch.
type Transition struct {
	Action Action
	Cursor string
}

// PageLoader loads and renders one page.
type PageLoader interface {
	Load(ctx context.Context, url string) (api.Result, error)
}

// Navigator is the pagination state machine. count, next and prev always
// describe the page last fetched from the network; cache hits and boundary
// screens leave them alone. Each cache slot is cleared as soon as it is used.
type Navigator struct {
	current model.RenderedPage
	count   int
	next    *string
	prev    *string

	ahead  *model.RenderedPage
	behind *model.RenderedPage

	pending bool
}

// New starts a session from the first fetch.
func New(first api.Result) *Navigator {
	n := &Navigator{}
	n.load(first)
	return n
}

func (n *Navigator) Current() model.RenderedPage { return n.current }

func (n *Navigator) Count() int { return n.count }

// Busy reports whether a fetch is outstanding.
func (n *Navigator) Busy() bool { return n.pending }

func (n *Navigator) HasNext() bool { return n.next != nil }

func (n *Navigator) HasPrev() bool { return n.prev != nil }

// Plan performs the part of a transition that needs no network. When the
// result is ActionFetch the navigator stays busy until Apply or Fail.
func (n *Navigator) Plan(dir Direction) (Transition, error) {
	if n.pending {
		return Transition{}, ErrBusy
	}

	// Same rules both ways with the roles swapped.
	wall, slot, stash, cursor, boundary := model.KindEnd, &n.ahead, &n.behind, n.next, model.End
	if dir == Retreat {
		wall, slot, stash, cursor, boundary = model.KindBeginning, &n.behind, &n.ahead, n.prev, model.Beginning
	}

	if n.current.Kind == wall {
		return Transition{Action: ActionNone}, nil
	}
	// A boundary screen is left only through its slot: advance from BEGINNING
	// returns to the page it was entered from, as the screen's "Enter 'n'"
	// hint promises. Retreat from END mirrors it.
	if *slot != nil && n.count != 0 {
		n.current = **slot
		*slot = nil
		logx.Debugf("pager: %s served from cache", dir)
		return Transition{Action: ActionShown}, nil
	}
	if n.current.IsSentinel() {
		// The only way off a boundary screen is back through its cache slot.
		return Transition{Action: ActionNone}, nil
	}
	if cursor != nil {
		n.pending = true
		logx.Debugf("pager: %s fetching %s", dir, util.RedactURL(*cursor))
		return Transition{Action: ActionFetch, Cursor: *cursor}, nil
	}
	if n.count == 0 {
		return Transition{Action: ActionNone}, nil
	}
	cur := n.current
	*stash = &cur
	n.current = boundary
	logx.Debugf("pager: %s reached %s", dir, boundary.Kind)
	return Transition{Action: ActionShown}, nil
}

// Apply installs a fetched page. Both cache slots are dropped.
func (n *Navigator) Apply(res api.Result) {
	n.pending = false
	n.load(res)
}

// Fail ends a planned fetch without changing state.
func (n *Navigator) Fail() { n.pending = false }

// Navigate runs a whole transition, fetching synchronously through l when
// needed. It reports whether the current page changed.
func (n *Navigator) Navigate(ctx context.Context, dir Direction, l PageLoader) (bool, error) {
	t, err := n.Plan(dir)
	if err != nil {
		return false, err
	}
	switch t.Action {
	case ActionNone:
		return false, nil
	case ActionShown:
		return true, nil
	}
	res, err := l.Load(ctx, t.Cursor)
	if err != nil {
		n.Fail()
		return false, err
	}
	n.Apply(res)
	return true, nil
}

func (n *Navigator) load(res api.Result) {
	n.current = res.Page
	n.count = res.Count
	n.next = res.Next
	n.prev = res.Previous
	n.ahead = nil
	n.behind = nil
	if res.Count == 0 {
		n.current = model.NoEvents
	}
}
