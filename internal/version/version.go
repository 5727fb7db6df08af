// Package version reports build metadata for --version, the startup log line
// and the HTTP User-Agent.
package version

import (
	"runtime/debug"
	"strings"
	"sync"
)

// Set with -ldflags "-X spaceevents/internal/version.Version=v1.2.3 ...".
// Left empty, they are filled from the module build info when available.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

var fill sync.Once

func resolve() {
	fill.Do(func() {
		info, ok := debug.ReadBuildInfo()
		if ok {
			fromBuildInfo(info)
		}
		if Version == "" {
			Version = "dev"
		}
	})
}

func fromBuildInfo(info *debug.BuildInfo) {
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == "" && len(s.Value) >= 7 {
				Commit = s.Value[:7]
			}
		case "vcs.time":
			if Date == "" {
				Date = s.Value
			}
		}
	}
}

func String() string {
	resolve()
	var b strings.Builder
	b.WriteString(Version)
	if Commit != "" {
		b.WriteString(" (" + Commit + ")")
	}
	if Date != "" {
		b.WriteString(" " + Date)
	}
	return b.String()
}

// UserAgent identifies the client to the events API.
func UserAgent() string {
	resolve()
	return "spaceevents/" + Version
}
