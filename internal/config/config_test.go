package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolate keeps the developer's own config file and env out of the test.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, k := range []string{"SPACEEVENTS_CONFIG", "SPACEEVENTS_BASE_URL", "SPACEEVENTS_WHERE", "SPACEEVENTS_THEME", "SPACEEVENTS_TIMEOUT_SEC", "SPACEEVENTS_LIMIT"} {
		t.Setenv(k, "")
	}
}

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	return LoadArgs(args, io.Discard)
}

func TestDefaults(t *testing.T) {
	isolate(t)
	cfg, err := load(t)
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL, cfg.BaseURL)
	require.Equal(t, DefaultTimeoutSec, cfg.TimeoutSec)
	require.Equal(t, ThemeDark, cfg.Theme)
	require.False(t, cfg.Today)
	require.Nil(t, cfg.Start)
	require.Nil(t, cfg.End)
}

func TestShortAndLongDateFlags(t *testing.T) {
	isolate(t)
	cfg, err := load(t, "-s", "01-01-2023", "--end", "31-1-2023")
	require.NoError(t, err)
	require.NotNil(t, cfg.Start)
	require.NotNil(t, cfg.End)
	require.Equal(t, "2023-01-01", cfg.Start.Format("2006-01-02"))
	require.Equal(t, "2023-01-31", cfg.End.Format("2006-01-02"))
}

func TestInputErrors(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"today with start", []string{"-t", "-s", "01-01-2023"}, "Can't use both today and (start or end) at the same time"},
		{"today with end", []string{"--today", "-e", "01-01-2023"}, "Can't use both today and (start or end) at the same time"},
		{"bad start", []string{"-s", "29-02-2001"}, "Please enter a valid start date in the format DD-MM-YYYY"},
		{"bad end", []string{"-e", "31-04-2022"}, "Please enter a valid end date in the format DD-MM-YYYY"},
		{"end before start", []string{"-s", "02-01-2023", "-e", "01-01-2023"}, "The end date 01-01-2023 is before the start date 02-01-2023"},
		{"export without out", []string{"--export", "csv"}, "--export requires --out path"},
		{"unknown export", []string{"--export", "xml", "--out", "x"}, `unknown export format "xml" (valid: csv, json)`},
		{"unknown theme", []string{"--theme", "neon"}, `unknown theme "neon" (valid: dark, light)`},
		{"stray arg", []string{"foo"}, `unexpected argument "foo"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.args...)
			var ife *InputFormatError
			require.True(t, errors.As(err, &ife), "want InputFormatError, got %v", err)
			require.Equal(t, tt.msg, ife.Msg)
		})
	}
}

func TestHelpFlag(t *testing.T) {
	isolate(t)
	_, err := load(t, "-h")
	require.ErrorIs(t, err, flag.ErrHelp)
}

func TestPrecedence(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url = "http://file.example/event/"
timeout_sec = 7
limit = 25
theme = "light"
where = "webcast_live == true"
`), 0o644))

	cfg, err := load(t, "--config", path)
	require.NoError(t, err)
	require.Equal(t, "http://file.example/event/", cfg.BaseURL)
	require.Equal(t, 7, cfg.TimeoutSec)
	require.Equal(t, 25, cfg.Limit)
	require.Equal(t, ThemeLight, cfg.Theme)
	require.Equal(t, "webcast_live == true", cfg.Where)

	t.Setenv("SPACEEVENTS_BASE_URL", "http://env.example/event/")
	t.Setenv("SPACEEVENTS_TIMEOUT_SEC", "9")
	cfg, err = load(t, "--config", path)
	require.NoError(t, err)
	require.Equal(t, "http://env.example/event/", cfg.BaseURL)
	require.Equal(t, 9, cfg.TimeoutSec)

	cfg, err = load(t, "--config", path, "--base-url", "http://flag.example/event/", "--timeout-sec", "3")
	require.NoError(t, err)
	require.Equal(t, "http://flag.example/event/", cfg.BaseURL)
	require.Equal(t, 3, cfg.TimeoutSec)
}

func TestDefaultConfigFileLocation(t *testing.T) {
	isolate(t)
	dir, err := os.UserConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "spaceevents"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spaceevents", "config.toml"), []byte("limit = 5\n"), 0o644))

	cfg, err := load(t)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Limit)
}

func TestExplicitConfigMustExist(t *testing.T) {
	isolate(t)
	_, err := load(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestMalformedConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("limit = = 3"), 0o644))
	_, err := load(t, "--config", path)
	require.Error(t, err)
}

func TestBadFlagIsInputFormatError(t *testing.T) {
	isolate(t)
	for _, args := range [][]string{{"--nope"}, {"--limit", "many"}} {
		_, err := load(t, args...)
		var ife *InputFormatError
		require.True(t, errors.As(err, &ife), "%v: %v", args, err)
	}
}
