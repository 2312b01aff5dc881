// Package version reports the build of the memo binary.
//
// Release builds set the variables below with -ldflags "-X ...". Builds
// without them fall back to the module and VCS data embedded by the go tool.
package version

import (
	"runtime"
	"runtime/debug"
)

var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// BuildInfo describes one build of the binary.
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
	GoVersion string
	Modified  bool
}

// Get returns the build info, preferring ldflags values over embedded data.
func Get() BuildInfo {
	return fromBuildInfo(debug.ReadBuildInfo())
}

func fromBuildInfo(bi *debug.BuildInfo, ok bool) BuildInfo {
	info := BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
	}
	if !ok || bi == nil {
		return info
	}

	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildDate == "unknown" {
				info.BuildDate = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String is the one-line form used by --version.
func (b BuildInfo) String() string {
	if b.Version == "dev" {
		return "memo development version"
	}
	if b.Modified {
		return "memo " + b.Version + " (modified)"
	}
	return "memo " + b.Version
}
