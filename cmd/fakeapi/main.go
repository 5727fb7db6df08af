// Command fakeapi serves a local, paginated copy of the events endpoint so
// the pager can be tried without network access:
//
//	go run ./cmd/fakeapi -addr :8080 &
//	go run ./cmd/spaceevents --base-url http://localhost:8080/2.2.0/event/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spaceevents/internal/util/logx"
)

func main() {
	var (
		addr     string
		total    int
		pageSize int
		seed     uint64
		latency  time.Duration
		failRate float64
	)
	flag.StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	flag.IntVar(&total, "events", 60, "number of generated events")
	flag.IntVar(&pageSize, "page-size", 10, "default page size when the request has no limit")
	flag.Uint64Var(&seed, "seed", 1, "generator seed; the same seed gives the same events")
	flag.DurationVar(&latency, "latency", 300*time.Millisecond, "delay added to every response")
	flag.Float64Var(&failRate, "fail-rate", 0, "fraction of requests answered with 500 (0..1)")
	flag.Parse()

	if total < 0 || pageSize <= 0 || failRate < 0 || failRate > 1 {
		fmt.Fprintln(os.Stderr, "invalid flags: need events >= 0, page-size > 0, 0 <= fail-rate <= 1")
		os.Exit(2)
	}
	logx.SetLevelFromEnv()

	srv := &server{
		events:   generate(total, seed, time.Now().UTC()),
		pageSize: pageSize,
		latency:  latency,
		failRate: failRate,
	}
	mux := http.NewServeMux()
	mux.Handle("/2.2.0/event/", srv)

	hs := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	// Setup interrupt handling
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = hs.Shutdown(shutdown)
	}()

	fmt.Fprintf(os.Stderr, "serving %d events on http://%s/2.2.0/event/\n", total, addr)
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
