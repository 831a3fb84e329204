// Package version reports the shim build and the Mastodon API level it claims
package version

import (
	"runtime/debug"
	"sync"
)

// MastodonVersion is the API level clients see; Elk and Ivory gate features on it
const MastodonVersion = "4.2.0"

// overridden with -ldflags "-X mastoshim/internal/core/version.version=v0.3.0 -X ...commit=... -X ...date=..."
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build describes the running binary
type Build struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

var (
	once  sync.Once
	cache Build
)

// Info returns the ldflags values, falling back to the vcs stamp go embeds
func Info() Build {
	once.Do(func() {
		cache = Build{Version: version, Commit: commit, Date: date}
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if cache.Commit == "" {
					cache.Commit = s.Value
				}
			case "vcs.time":
				if cache.Date == "" {
					cache.Date = s.Value
				}
			}
		}
	})
	return cache
}

// Compatible is the instance version string, e.g. "4.2.0 (compatible; mastoshim dev)"
func Compatible() string {
	return MastodonVersion + " (compatible; mastoshim " + Info().Version + ")"
}

// UserAgent identifies the shim to the platform API
func UserAgent() string { return "mastoshim/" + Info().Version }
