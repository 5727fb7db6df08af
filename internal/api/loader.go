package api

import (
	"context"

	"spaceevents/internal/model"
	"spaceevents/internal/table"
)

// Result is one fetched page together with its pagination metadata.
type Result struct {
	Count    int
	Next     *string
	Previous *string
	Page     model.RenderedPage
}

// Loader fetches a page and renders it.
type Loader struct {
	Fetcher  Fetcher
	Renderer table.Renderer
}

func (l Loader) Load(ctx context.Context, url string) (Result, error) {
	p, err := l.Fetcher.Fetch(ctx, url)
	if err != nil {
		return Result{}, err
	}
	res := Result{Count: p.Count, Next: nonEmpty(p.Next), Previous: nonEmpty(p.Previous)}
	if p.Count == 0 {
		res.Page = model.NoEvents
		return res, nil
	}
	res.Page = l.Renderer.Render(p.Results)
	return res, nil
}

// nonEmpty treats "" like a missing link.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
