package model

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Event is one record of the events endpoint. Fields the API returns as null
// decode to their zero value.
type Event struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	Duration     string `json:"duration"`
	WebcastLive  bool   `json:"webcast_live"`
	Location     string `json:"location"`
	NewsURL      string `json:"news_url"`
	VideoURL     string `json:"video_url"`
	FeatureImage string `json:"feature_image"`
	Slug         string `json:"slug"`
	LastUpdated  string `json:"last_updated"`
}

// Page is one decoded response of the paginated API. Next and Previous are
// nil when there is no page in that direction.
type Page struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Event `json:"results"`
}

// Columns is the fixed column order of the rendered table after the id index.
var Columns = []string{
	"name",
	"date",
	"description",
	"url",
	"duration",
	"webcast_live",
	"location",
	"news_url",
	"video_url",
	"feature_image",
	"slug",
	"last_updated",
}

// Fields returns the event as a column -> value map, used by filters and exports.
func (e Event) Fields() map[string]any {
	return map[string]any{
		"id":            e.ID,
		"name":          e.Name,
		"date":          e.Date,
		"description":   e.Description,
		"url":           e.URL,
		"duration":      e.Duration,
		"webcast_live":  e.WebcastLive,
		"location":      e.Location,
		"news_url":      e.NewsURL,
		"video_url":     e.VideoURL,
		"feature_image": e.FeatureImage,
		"slug":          e.Slug,
		"last_updated":  e.LastUpdated,
	}
}

// Kind tells a data page apart from the fixed screens.
type Kind int

const (
	KindTable Kind = iota
	KindEmpty
	KindBeginning
	KindEnd
)

func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindEmpty:
		return "empty"
	case KindBeginning:
		return "beginning"
	case KindEnd:
		return "end"
	default:
		return "unknown"
	}
}

// RenderedPage is an immutable block of pre-rendered text lines. Events holds
// the records the lines were built from; it is nil for the fixed screens.
type RenderedPage struct {
	Kind   Kind
	Lines  []string
	Events []Event
}

// IsSentinel reports whether p is one of the boundary screens.
func (p RenderedPage) IsSentinel() bool {
	return p.Kind == KindBeginning || p.Kind == KindEnd
}

// Len is the number of lines on the page.
func (p RenderedPage) Len() int { return len(p.Lines) }

// Width is the display width of the widest line.
func (p RenderedPage) Width() int {
	w := 0
	for _, l := range p.Lines {
		if n := runewidth.StringWidth(l); n > w {
			w = n
		}
	}
	return w
}

func at(col int, s string) string { return strings.Repeat(" ", col) + s }

// screen pads a fixed message with the three blank rows the table area starts with.
func screen(lines ...string) []string {
	return append([]string{"", " ", " "}, lines...)
}

var (
	// Beginning is shown when there is no page before the first one.
	Beginning = RenderedPage{
		Kind: KindBeginning,
		Lines: screen(
			at(48, "YOU'VE REACHED THE BEGINNING"),
			"",
			at(46, "Enter 'n' to go to the first page"),
			at(40, "Still can't find the event you're looking for?"),
			at(40, "Try running the program with different dates."),
		),
	}

	// End is shown when there is no page after the last one.
	End = RenderedPage{
		Kind: KindEnd,
		Lines: screen(
			at(48, "YOU'VE REACHED THE END"),
			"",
			at(41, "Enter 'p' to go to the previous page"),
			at(36, "Still can't find the event you're looking for?"),
			at(36, "Try running the program with different dates."),
		),
	}

	// NoEvents replaces the table when a query matches nothing.
	NoEvents = RenderedPage{
		Kind:  KindEmpty,
		Lines: screen(at(49, "NO EVENTS"), " ", " ", ""),
	}

	// NoMatches replaces the table when the record filter drops every row of
	// a page that did have results.
	NoMatches = RenderedPage{
		Kind:  KindEmpty,
		Lines: screen(at(36, "NO EVENTS ON THIS PAGE MATCH THE FILTER"), " ", " ", ""),
	}
)
