package api

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"spaceevents/internal/dates"
)

// Query describes the first request of a session. Later pages are fetched
// from the cursors the API returns.
type Query struct {
	BaseURL string
	Today   bool
	// Start and End bound the range mode; nil means RangeDays from Now.
	Start     *time.Time
	End       *time.Time
	RangeDays int
	Limit     int
	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

func (q Query) now() time.Time {
	if q.Now != nil {
		return q.Now().UTC()
	}
	return time.Now().UTC()
}

// URL renders the query as base?filters. Today mode uses day/month/year
// filters; range mode uses date__gte/date__lte on ISO dates.
func (q Query) URL() string {
	now := q.now()
	var filters []string
	if q.Today {
		filters = append(filters,
			"day="+strconv.Itoa(now.Day()),
			"month="+strconv.Itoa(int(now.Month())),
			"year="+strconv.Itoa(now.Year()),
		)
	} else {
		days := time.Duration(q.RangeDays) * 24 * time.Hour
		start := now.Add(-days)
		if q.Start != nil {
			start = *q.Start
		}
		end := now.Add(days)
		if q.End != nil {
			end = *q.End
		}
		filters = append(filters, "date__gte="+dates.ISO(start), "date__lte="+dates.ISO(end))
	}
	if q.Limit > 0 {
		filters = append(filters, "limit="+strconv.Itoa(q.Limit))
	}
	return q.BaseURL + "?" + strings.Join(filters, "&")
}

// Validate checks that the base URL is absolute http(s).
func (q Query) Validate() error {
	u, err := url.Parse(q.BaseURL)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &url.Error{Op: "parse", URL: q.BaseURL, Err: errNotHTTP}
	}
	return nil
}
