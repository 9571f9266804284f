package id3dissect

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the id3dissect library.
const Version = "0.1.0"

// GetVersion returns Version.
func GetVersion() string {
	return Version
}

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// String renders the build on one line.
func (v VersionInfo) String() string {
	return fmt.Sprintf("id3dissect %s (commit %s, built %s, %s)", v.Version, v.GitCommit, v.BuildTime, v.GoVersion)
}

// GetVersionInfo returns build details. The commit and build time come from
// -ldflags when set:
//
//	go build -ldflags="-X github.com/simonhull/id3dissect.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/id3dissect.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// and otherwise from the VCS stamp the go command embeds, or "unknown".
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.GitCommit == "unknown":
			info.GitCommit = s.Value
		case s.Key == "vcs.time" && info.BuildTime == "unknown":
			info.BuildTime = s.Value
		}
	}
	return info
}

var (
	gitCommit = "unknown"
	buildTime = "unknown"
)
