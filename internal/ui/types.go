package ui

import "spaceevents/internal/api"

// pageMsg carries the outcome of a fetch started by a navigation key.
type pageMsg struct {
	res api.Result
	err error
}

// exportMsg reports a finished export of the current page.
type exportMsg struct {
	path string
	n    int
	err  error
}
