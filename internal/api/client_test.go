package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"spaceevents/internal/model"
	"spaceevents/internal/table"
)

const onePage = `{
  "count": 1,
  "next": null,
  "previous": null,
  "results": [{
    "id": 42,
    "name": "Starship Flight Test",
    "date": "2024-03-14T13:25:00Z",
    "description": "Third integrated flight test.",
    "url": "https://ll.thespacedevs.com/2.2.0/event/42/",
    "duration": null,
    "webcast_live": true,
    "location": "Starbase, TX",
    "news_url": null,
    "video_url": "https://youtu.be/x",
    "feature_image": null,
    "slug": "starship-flight-test",
    "last_updated": "2024-03-14T15:00:00Z",
    "type": {"id": 2, "name": "Test"}
  }]
}`

func TestFetchDecodesPage(t *testing.T) {
	var gotAccept, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, onePage)
	}))
	defer srv.Close()

	p, err := NewClientWith(srv.Client()).Fetch(context.Background(), srv.URL+"/event/")
	require.NoError(t, err)
	require.Equal(t, 1, p.Count)
	require.Nil(t, p.Next)
	require.Nil(t, p.Previous)
	require.Len(t, p.Results, 1)
	ev := p.Results[0]
	require.Equal(t, int64(42), ev.ID)
	require.Equal(t, "Starship Flight Test", ev.Name)
	require.True(t, ev.WebcastLive)
	require.Empty(t, ev.Duration)
	require.Equal(t, "application/json", gotAccept)
	require.True(t, strings.HasPrefix(gotUA, "spaceevents/"), gotUA)
}

func TestFetchNon200IsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClientWith(srv.Client()).Fetch(context.Background(), srv.URL)
	var te *TransportError
	require.True(t, errors.As(err, &te))
	require.Equal(t, http.StatusNotFound, te.StatusCode)
	require.Contains(t, te.Error(), "Status code : 404")
}

func TestFetchNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClientWith(&http.Client{}).Fetch(context.Background(), url)
	var te *TransportError
	require.True(t, errors.As(err, &te))
	require.Zero(t, te.StatusCode)
	require.Error(t, te.Unwrap())
}

func TestFetchBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "{not json")
	}))
	defer srv.Close()

	_, err := NewClientWith(srv.Client()).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	var te *TransportError
	require.False(t, errors.As(err, &te))
}

func TestLoaderRendersResults(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, onePage)
	}))
	defer srv.Close()

	l := Loader{Fetcher: NewClientWith(srv.Client())}
	res, err := l.Load(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, int32(1), hits.Load())
	require.Equal(t, 1, res.Count)
	require.Equal(t, model.KindTable, res.Page.Kind)
	require.Contains(t, strings.Join(res.Page.Lines, "\n"), "Starship Flight Test")
}

func TestLoaderEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"count":0,"next":null,"previous":null,"results":[]}`)
	}))
	defer srv.Close()

	res, err := Loader{Fetcher: NewClientWith(srv.Client())}.Load(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Zero(t, res.Count)
	require.Equal(t, model.NoEvents.Lines, res.Page.Lines)
	require.Equal(t, model.KindEmpty, res.Page.Kind)
}

func TestLoaderCursorsAndFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"count":30,"next":"http://x/event/?offset=20","previous":"",
			"results":[{"id":1,"name":"A","webcast_live":false},{"id":2,"name":"B","webcast_live":true}]}`)
	}))
	defer srv.Close()

	f, err := table.NewFilter("webcast_live == true")
	require.NoError(t, err)
	res, err := Loader{Fetcher: NewClientWith(srv.Client()), Renderer: table.Renderer{Filter: f}}.Load(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, 30, res.Count)
	require.NotNil(t, res.Next)
	require.Equal(t, "http://x/event/?offset=20", *res.Next)
	require.Nil(t, res.Previous)
	require.Len(t, res.Page.Events, 1)
	require.Equal(t, "B", res.Page.Events[0].Name)
}
