package main

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"spaceevents/internal/model"
	"spaceevents/internal/util/logx"
)

var (
	eventKinds = []string{"Static Fire", "Docking", "Spacewalk", "Press Conference", "Rollout", "Landing", "Splashdown", "Flyby"}
	vehicles   = []string{"Starship", "Crew Dragon", "Starliner", "Artemis II", "New Glenn", "Soyuz MS-27", "Tianzhou 8", "Vulcan"}
	sites      = []string{"Starbase, TX", "Kennedy Space Center, FL", "Baikonur Cosmodrome", "Wenchang, China", "International Space Station", "Vandenberg SFB, CA"}
	blurbs     = []string{
		"Teams will review vehicle telemetry before the window opens.",
		"Live coverage begins one hour before the scheduled time and continues through the post-event briefing with mission managers.",
		"Crew members will relocate the spacecraft to a different port to make room for the next arrival.",
		"A short test to validate engine performance ahead of the upcoming flight.",
	}
)

// generate builds n events spread around now, sorted by date.
func generate(n int, seed uint64, now time.Time) []model.Event {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]model.Event, n)
	base := now.Truncate(24*time.Hour).AddDate(0, 0, -20)
	step := 40 * 24 * time.Hour / time.Duration(max(n, 1))
	for i := range out {
		id := int64(1000 + i)
		when := base.Add(time.Duration(i)*step + time.Duration(r.Int64N(int64(step)/2+1))).Truncate(time.Minute)
		name := vehicles[r.IntN(len(vehicles))] + " " + eventKinds[r.IntN(len(eventKinds))]
		slug := strings.ToLower(strings.ReplaceAll(name, " ", "-")) + "-" + strconv.FormatInt(id, 10)
		ev := model.Event{
			ID:          id,
			Name:        name,
			Date:        when.Format(time.RFC3339),
			Description: blurbs[r.IntN(len(blurbs))],
			URL:         fmt.Sprintf("https://lldev.thespacedevs.com/2.2.0/event/%d/", id),
			WebcastLive: r.IntN(4) == 0,
			Location:    sites[r.IntN(len(sites))],
			Slug:        slug,
			LastUpdated: when.Add(-time.Duration(r.IntN(72)) * time.Hour).Format(time.RFC3339),
		}
		if r.IntN(3) == 0 {
			ev.Duration = fmt.Sprintf("PT%dH", 1+r.IntN(6))
		}
		if r.IntN(2) == 0 {
			ev.VideoURL = "https://www.youtube.com/watch?v=" + slug
		}
		out[i] = ev
	}
	return out
}

type server struct {
	events   []model.Event
	pageSize int
	latency  time.Duration
	failRate float64
	// rnd decides failures; nil means never fail.
	rnd func() float64
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.latency > 0 {
		select {
		case <-time.After(s.latency):
		case <-r.Context().Done():
			return
		}
	}
	if s.failRate > 0 && s.roll() < s.failRate {
		logx.Warnf("fakeapi: injected failure for %s", r.URL.RawQuery)
		http.Error(w, "injected failure", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	matched, err := s.match(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	limit := s.pageSize
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	offset := 0
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	page := model.Page{Count: len(matched), Results: []model.Event{}}
	if offset < len(matched) {
		page.Results = matched[offset:min(offset+limit, len(matched))]
	}
	if offset+limit < len(matched) {
		page.Next = cursor(r, q, offset+limit, limit)
	}
	if offset > 0 {
		page.Previous = cursor(r, q, max(offset-limit, 0), limit)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(page); err != nil {
		logx.Warnf("fakeapi: write response: %v", err)
	}
}

func (s *server) roll() float64 {
	if s.rnd != nil {
		return s.rnd()
	}
	return rand.Float64()
}

// match applies the day/month/year or date__gte/date__lte filters.
func (s *server) match(q url.Values) ([]model.Event, error) {
	var keep func(time.Time) bool
	switch {
	case q.Get("day") != "" || q.Get("month") != "" || q.Get("year") != "":
		d, err1 := strconv.Atoi(q.Get("day"))
		m, err2 := strconv.Atoi(q.Get("month"))
		y, err3 := strconv.Atoi(q.Get("year"))
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("day, month and year must all be integers")
		}
		keep = func(t time.Time) bool { return t.Day() == d && int(t.Month()) == m && t.Year() == y }
	default:
		lo, err := isoBound(q.Get("date__gte"), time.Time{})
		if err != nil {
			return nil, err
		}
		hi, err := isoBound(q.Get("date__lte"), time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC))
		if err != nil {
			return nil, err
		}
		// date__lte is inclusive of the whole day.
		hi = hi.Add(24*time.Hour - time.Nanosecond)
		keep = func(t time.Time) bool { return !t.Before(lo) && !t.After(hi) }
	}

	var out []model.Event
	for _, e := range s.events {
		t, err := time.Parse(time.RFC3339, e.Date)
		if err != nil {
			continue
		}
		if keep(t.UTC()) {
			out = append(out, e)
		}
	}
	return out, nil
}

func isoBound(v string, def time.Time) (time.Time, error) {
	if v == "" {
		return def, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q, want YYYY-MM-DD", v)
	}
	return t, nil
}

func cursor(r *http.Request, q url.Values, offset, limit int) *string {
	next := url.Values{}
	for k, v := range q {
		next[k] = v
	}
	next.Set("offset", strconv.Itoa(offset))
	next.Set("limit", strconv.Itoa(limit))
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	u := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path, RawQuery: next.Encode()}
	s := u.String()
	return &s
}
