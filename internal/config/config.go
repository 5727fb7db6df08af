package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"spaceevents/internal/dates"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

const (
	DefaultBaseURL    = "https://lldev.thespacedevs.com/2.2.0/event/"
	DefaultTimeoutSec = 30
	// DefaultRangeDays is how far before and after today an open date range reaches.
	DefaultRangeDays = 15
)

type Config struct {
	StartDate    string
	EndDate      string
	Today        bool
	BaseURL      string
	TimeoutSec   int
	Limit        int
	Where        string
	Theme        Theme
	ExportFormat string
	ExportOut    string
	ConfigPath   string
	ShowVersion  bool

	// Parsed from StartDate/EndDate; nil when the flag was omitted.
	Start *time.Time
	End   *time.Time
}

// InputFormatError reports a bad command line. It is raised once at startup
// and never retried.
type InputFormatError struct {
	Msg string
}

func (e *InputFormatError) Error() string { return e.Msg }

func inputErr(format string, a ...any) error {
	return &InputFormatError{Msg: fmt.Sprintf(format, a...)}
}

// fileConfig is the optional TOML file.
type fileConfig struct {
	BaseURL    string `toml:"base_url"`
	TimeoutSec int    `toml:"timeout_sec"`
	Limit      int    `toml:"limit"`
	Where      string `toml:"where"`
	Theme      string `toml:"theme"`
}

func Load() (*Config, error) {
	return LoadArgs(os.Args[1:], os.Stderr)
}

// LoadArgs builds the configuration from args with precedence
// flag > environment > config file > default.
func LoadArgs(args []string, out io.Writer) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("spaceevents", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintln(out, "Displays the spaceflight events in a given time interval in tabular form.")
		fmt.Fprintf(out, "By default shows events from %d days before to %d days after today.\n\n", DefaultRangeDays, DefaultRangeDays)
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.StartDate, "start", "", "first day to show, "+dates.Layout+" (default: 15 days before today)")
	fs.StringVar(&cfg.StartDate, "s", "", "shorthand for --start")
	fs.StringVar(&cfg.EndDate, "end", "", "last day to show, "+dates.Layout+" (default: 15 days after today)")
	fs.StringVar(&cfg.EndDate, "e", "", "shorthand for --end")
	fs.BoolVar(&cfg.Today, "today", false, "show today's events only")
	fs.BoolVar(&cfg.Today, "t", false, "shorthand for --today")
	fs.StringVar(&cfg.BaseURL, "base-url", DefaultBaseURL, "events API endpoint")
	fs.IntVar(&cfg.TimeoutSec, "timeout-sec", DefaultTimeoutSec, "HTTP request timeout in seconds")
	fs.IntVar(&cfg.Limit, "limit", 0, "page size requested from the API (0 = API default)")
	fs.StringVar(&cfg.Where, "where", "", "only show events matching this expression, e.g. 'webcast_live == true'")
	theme := string(ThemeDark)
	fs.StringVar(&theme, "theme", string(ThemeDark), "theme: dark|light")
	fs.StringVar(&cfg.ExportFormat, "export", "", "export format for the 'e' key: csv|json")
	fs.StringVar(&cfg.ExportOut, "out", "", "output path for export")
	fs.StringVar(&cfg.ConfigPath, "config", "", "path to a TOML config file")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, &InputFormatError{Msg: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, inputErr("unexpected argument %q", fs.Arg(0))
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Layer file and env underneath whatever was given explicitly.
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = os.Getenv("SPACEEVENTS_CONFIG")
	}
	fc, err := readFile(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	layer := func(name string, fileVal, envKey string, dst *string) {
		if set[name] {
			return
		}
		if fileVal != "" {
			*dst = fileVal
		}
		if v := os.Getenv(envKey); v != "" {
			*dst = v
		}
	}
	layer("base-url", fc.BaseURL, "SPACEEVENTS_BASE_URL", &cfg.BaseURL)
	layer("where", fc.Where, "SPACEEVENTS_WHERE", &cfg.Where)
	layer("theme", fc.Theme, "SPACEEVENTS_THEME", &theme)
	cfg.Theme = Theme(strings.ToLower(theme))
	if !set["timeout-sec"] {
		if fc.TimeoutSec > 0 {
			cfg.TimeoutSec = fc.TimeoutSec
		}
		cfg.TimeoutSec = getenvDefaultInt("SPACEEVENTS_TIMEOUT_SEC", cfg.TimeoutSec)
	}
	if !set["limit"] {
		if fc.Limit > 0 {
			cfg.Limit = fc.Limit
		}
		cfg.Limit = getenvDefaultInt("SPACEEVENTS_LIMIT", cfg.Limit)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Today {
		if c.StartDate != "" || c.EndDate != "" {
			return inputErr("Can't use both today and (start or end) at the same time")
		}
	} else {
		if c.StartDate != "" {
			t, err := dates.Parse(c.StartDate)
			if err != nil {
				return inputErr("Please enter a valid start date in the format %s", dates.Layout)
			}
			c.Start = &t
		}
		if c.EndDate != "" {
			t, err := dates.Parse(c.EndDate)
			if err != nil {
				return inputErr("Please enter a valid end date in the format %s", dates.Layout)
			}
			c.End = &t
		}
		if c.Start != nil && c.End != nil && c.End.Before(*c.Start) {
			return inputErr("The end date %s is before the start date %s", c.EndDate, c.StartDate)
		}
	}
	switch c.Theme {
	case ThemeDark, ThemeLight:
	default:
		return inputErr("unknown theme %q (valid: dark, light)", c.Theme)
	}
	switch c.ExportFormat {
	case "":
	case "csv", "json":
		if c.ExportOut == "" {
			return inputErr("--export requires --out path")
		}
	default:
		return inputErr("unknown export format %q (valid: csv, json)", c.ExportFormat)
	}
	if c.TimeoutSec <= 0 {
		return inputErr("--timeout-sec must be positive")
	}
	if c.Limit < 0 {
		return inputErr("--limit must not be negative")
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		return inputErr("--base-url must not be empty")
	}
	return nil
}

// readFile loads the TOML config. An explicit path must exist; the default
// location is optional.
func readFile(path string) (fileConfig, error) {
	var fc fileConfig
	explicit := path != ""
	if !explicit {
		path = defaultPath()
		if path == "" {
			return fc, nil
		}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return fc, nil
		}
		return fc, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return fc, nil
}

func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "spaceevents", "config.toml")
}

func getenvDefaultInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func (c *Config) Timeout() time.Duration { return time.Duration(c.TimeoutSec) * time.Second }

func (c *Config) String() string {
	return fmt.Sprintf("start=%s end=%s today=%v base=%s limit=%d where=%q theme=%s", c.StartDate, c.EndDate, c.Today, c.BaseURL, c.Limit, c.Where, c.Theme)
}
