package cli

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func TestCachePath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	root := New(io.Discard, LogInfo).RootCommand()
	var out strings.Builder
	root.SetOut(&out)
	root.SetArgs([]string{"cache", "path"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cache path error: %v", err)
	}

	if got, want := strings.TrimSpace(out.String()), filepath.Join(xdg, appName); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}

func TestCacheClear(t *testing.T) {
	path := writeFixture(t, "tree.toml", scenarioTOML)
	xdg := t.TempDir()

	// Populate the default cache, then clear it.
	root := New(io.Discard, LogInfo).RootCommand()
	t.Setenv("XDG_CACHE_HOME", xdg)
	root.SetOut(&strings.Builder{})
	root.SetArgs([]string{"analyze", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("analyze error: %v", err)
	}
	entries, _ := filepath.Glob(filepath.Join(xdg, appName, "*", "*.json"))
	if len(entries) != 1 {
		t.Fatalf("cache holds %d entries after analyze, want 1", len(entries))
	}

	root = New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	entries, _ = filepath.Glob(filepath.Join(xdg, appName, "*", "*.json"))
	if len(entries) != 0 {
		t.Errorf("cache holds %d entries after clear, want 0", len(entries))
	}
}
