// Package version reports the build version of the musiccast tools.
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/musiccast/internal/version.Version=v0.2.0 \
//	                   -X github.com/muurk/musiccast/internal/version.Commit=abc1234"
//
// Otherwise they are filled from the module and VCS build info, or left as
// "dev" and "unknown".
var (
	Version = ""
	Commit  = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fromBuildInfo(info)
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo fills unset values. A module installed with go install
// carries its tag in Main.Version; a local build only has VCS settings.
func fromBuildInfo(info *debug.BuildInfo) {
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	if Commit != "" {
		return
	}
	var revision string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if revision != "" && dirty {
		revision += "-dirty"
	}
	Commit = revision
}

// Full returns the version including the commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// UserAgent is the User-Agent header sent to receivers
func UserAgent() string {
	return "musiccast/" + Version
}
