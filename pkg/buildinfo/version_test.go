package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

// stub replaces the ldflags variables and the toolchain build info.
func stub(t *testing.T, version, commit, date string, bi *debug.BuildInfo) {
	t.Helper()
	old := [3]string{Version, Commit, Date}
	oldRead := readBuildInfo
	t.Cleanup(func() {
		Version, Commit, Date = old[0], old[1], old[2]
		readBuildInfo = oldRead
	})

	Version, Commit, Date = version, commit, date
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestGetLdflags(t *testing.T) {
	stub(t, "v1.2.3", "abc123", "2026-01-02", &debug.BuildInfo{Main: debug.Module{Version: "v9.9.9"}})

	got := Get()
	if got.Version != "v1.2.3" || got.Commit != "abc123" || got.Date != "2026-01-02" {
		t.Errorf("Get() = %+v, want ldflags values", got)
	}
	if got.GoVersion == "" || !strings.Contains(got.Platform, "/") {
		t.Errorf("runtime fields missing: %+v", got)
	}
}

func TestGetModuleFallback(t *testing.T) {
	stub(t, "dev", "none", "unknown", &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeef"},
			{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
		},
	})

	got := Get()
	if got.Version != "v0.4.0" || got.Commit != "deadbeef" || got.Date != "2026-03-04T05:06:07Z" {
		t.Errorf("Get() = %+v, want module build info", got)
	}
}

func TestGetDevelBuild(t *testing.T) {
	stub(t, "dev", "none", "unknown", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if got := Get().Version; got != "dev" {
		t.Errorf("Version = %q, want dev", got)
	}

	stub(t, "dev", "none", "unknown", nil)
	if got := Get().Version; got != "dev" {
		t.Errorf("Version without build info = %q, want dev", got)
	}
}

func TestInfoString(t *testing.T) {
	i := Info{Version: "v1.2.3", Commit: "abc123", Date: "2026-01-02", GoVersion: "go1.24.0", Platform: "linux/amd64"}
	want := "version: v1.2.3\ncommit: abc123\nbuilt: 2026-01-02\ngo: go1.24.0 (linux/amd64)"
	if got := i.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTemplate(t *testing.T) {
	stub(t, "v1.2.3", "abc123", "2026-01-02", nil)

	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version: v1.2.3\ncommit: abc123") {
		t.Errorf("Template() = %q", tmpl)
	}
	if !strings.HasSuffix(tmpl, "\n") {
		t.Error("Template() should end with a newline")
	}
}
