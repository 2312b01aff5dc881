package version

import (
	"runtime"
	"runtime/debug"
	"testing"
)

func setVars(t *testing.T, version, date, commit string) {
	t.Helper()
	v, d, c := Version, BuildDate, GitCommit
	t.Cleanup(func() { Version, BuildDate, GitCommit = v, d, c })
	Version, BuildDate, GitCommit = version, date, commit
}

func TestFromBuildInfoWithoutEmbeddedData(t *testing.T) {
	setVars(t, "dev", "unknown", "unknown")

	info := fromBuildInfo(nil, false)
	if info.Version != "dev" || info.GitCommit != "unknown" {
		t.Errorf("Expected defaults, got %+v", info)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("Expected go version %q, got %q", runtime.Version(), info.GoVersion)
	}
	if got := info.String(); got != "memo development version" {
		t.Errorf("Expected development string, got %q", got)
	}
}

func TestFromBuildInfoEmbeddedFallback(t *testing.T) {
	setVars(t, "dev", "unknown", "unknown")

	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	info := fromBuildInfo(bi, true)

	if info.Version != "v0.3.0" {
		t.Errorf("Expected v0.3.0, got %q", info.Version)
	}
	if info.GitCommit != "abc123" {
		t.Errorf("Expected abc123, got %q", info.GitCommit)
	}
	if info.BuildDate != "2026-10-01T12:00:00Z" {
		t.Errorf("Expected vcs time, got %q", info.BuildDate)
	}
	if got := info.String(); got != "memo v0.3.0 (modified)" {
		t.Errorf("Expected modified string, got %q", got)
	}
}

func TestFromBuildInfoPrefersLdflags(t *testing.T) {
	setVars(t, "1.2.3", "2026-01-02", "deadbeef")

	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
		},
	}
	info := fromBuildInfo(bi, true)

	if info.Version != "1.2.3" || info.GitCommit != "deadbeef" || info.BuildDate != "2026-01-02" {
		t.Errorf("Expected ldflags values, got %+v", info)
	}
	if got := info.String(); got != "memo 1.2.3" {
		t.Errorf("Expected 'memo 1.2.3', got %q", got)
	}
}
