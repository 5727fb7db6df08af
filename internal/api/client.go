// Package api talks to the paginated events endpoint.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"spaceevents/internal/model"
	"spaceevents/internal/util"
	"spaceevents/internal/util/logx"
	"spaceevents/internal/version"
)

var errNotHTTP = errors.New("base URL must be an absolute http(s) URL")

// TransportError is a failed page fetch: either a non-200 status or a
// network error. It ends the session; fetches are never retried.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("Error : couldn't get the data\n Status code : %d", e.StatusCode)
	}
	return fmt.Sprintf("Error : couldn't get the data\n %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Fetcher performs one blocking GET of a cursor or query URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (model.Page, error)
}

type Client struct {
	http      *http.Client
	userAgent string
}

func NewClient(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}, userAgent: version.UserAgent()}
}

// NewClientWith wraps an existing http.Client, e.g. one from httptest.
func NewClientWith(hc *http.Client) *Client {
	return &Client{http: hc, userAgent: version.UserAgent()}
}

func (c *Client) Fetch(ctx context.Context, url string) (model.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Page{}, &TransportError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logx.Warnf("api: GET %s failed: %v", util.RedactURL(url), err)
		return model.Page{}, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()
	logx.Infof("api: GET %s -> %d in %s", util.RedactURL(url), resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return model.Page{}, &TransportError{URL: url, StatusCode: resp.StatusCode}
	}
	var page model.Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return model.Page{}, fmt.Errorf("decode page from %s: %w", util.RedactURL(url), err)
	}
	return page, nil
}
