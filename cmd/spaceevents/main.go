package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"spaceevents/internal/api"
	"spaceevents/internal/config"
	"spaceevents/internal/table"
	"spaceevents/internal/ui"
	"spaceevents/internal/util/logx"
	"spaceevents/internal/version"
)

// runUI is replaced in tests.
var runUI = ui.Run

func main() {
	logx.SetLevelFromEnv()

	// Setup cancellation on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	logx.Close()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadArgs(args, stderr)
	if err != nil {
		return exitCode(stderr, err)
	}
	if cfg.ShowVersion {
		fmt.Fprintln(stdout, "spaceevents", version.String())
		return 0
	}

	filter, err := table.NewFilter(cfg.Where)
	if err != nil {
		return exitCode(stderr, &config.InputFormatError{Msg: "invalid --where expression: " + err.Error()})
	}
	q := api.Query{
		BaseURL:   cfg.BaseURL,
		Today:     cfg.Today,
		Start:     cfg.Start,
		End:       cfg.End,
		RangeDays: config.DefaultRangeDays,
		Limit:     cfg.Limit,
	}
	if err := q.Validate(); err != nil {
		return exitCode(stderr, &config.InputFormatError{Msg: err.Error()})
	}

	logx.Infof("starting spaceevents %s: %s", version.String(), cfg.String())
	loader := api.Loader{
		Fetcher:  api.NewClient(cfg.Timeout()),
		Renderer: table.Renderer{Filter: filter},
	}
	first, err := loader.Load(ctx, q.URL())
	if err != nil {
		return exitCode(stderr, err)
	}
	if err := runUI(ctx, cfg, loader, first); err != nil {
		return exitCode(stderr, err)
	}
	return 0
}

func exitCode(stderr io.Writer, err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	var ife *config.InputFormatError
	if errors.As(err, &ife) {
		fmt.Fprintln(stderr, ife.Msg)
		return 2
	}
	logx.Errorf("spaceevents exited with error: %v", err)
	var te *api.TransportError
	if errors.As(err, &te) {
		fmt.Fprintln(stderr, te.Error())
		return 1
	}
	fmt.Fprintln(stderr, "Something went wrong:", err)
	return 1
}
