// Package version reports the build version of zooskeys.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/zooskeys/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/zooskeys/internal/version.Commit=abc123" ./cmd/zooskeys
//
// Otherwise they are read from the VCS stamp in the binary, and finally fall
// back to "dev" with a timestamp.
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		fromBuildInfo(readBuildSettings())
	}
	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

func readBuildSettings() map[string]string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	out := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		out[s.Key] = s.Value
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		out["main.version"] = info.Main.Version
	}
	return out
}

// fromBuildInfo fills whichever of Version and Commit is still empty
func fromBuildInfo(settings map[string]string) {
	if Commit == "" {
		if rev := settings["vcs.revision"]; rev != "" {
			if len(rev) > 7 {
				rev = rev[:7]
			}
			if settings["vcs.modified"] == "true" {
				rev += "-dirty"
			}
			Commit = rev
		}
	}

	if Version == "" {
		// go install module@version stamps the module version
		if v := settings["main.version"]; v != "" {
			Version = v
		} else if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
			Version = fmt.Sprintf("dev-%s", t.Format("20060102"))
		}
	}
}

// Full returns the version with its commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
