package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are stamped by release builds of cmd/server
// and cmd/wordcloud:
//
//	go build -ldflags "-X github.com/heartmarshall/wordcloud/internal/app.Version=v1.0.0 \
//	  -X github.com/heartmarshall/wordcloud/internal/app.Commit=$(git rev-parse --short HEAD)" ./cmd/...
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version shown in the server's startup log, its
// /health response and `wordcloud --version`. Without an ldflags commit the
// VCS revision recorded by the toolchain is used.
func BuildVersion() string {
	return formatVersion(Version, Commit, BuildTime, vcsRevision())
}

func formatVersion(version, commit, builtAt, revision string) string {
	if commit == "unknown" && revision != "" {
		commit = revision
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, builtAt)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return ""
}
