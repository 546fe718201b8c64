package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// waitForPort drains reload notifications until one carries the wanted
// port. Filesystem notifications can arrive more than once per save.
func waitForPort(t *testing.T, reloads <-chan *Settings, want string) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case s := <-reloads:
			if s.Port == want {
				return
			}
		case <-deadline:
			t.Fatalf("settings never reloaded to port %s", want)
		}
	}
}

func TestWatchMissingFile(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope.yml"), nil)
	if err == nil {
		t.Error("expected error for a missing settings file")
	}
}

func TestWatchReloadsOnChange(t *testing.T) {
	clearSettingsEnv(t)
	dir := t.TempDir()
	t.Setenv("WEBBASE_CONFIG_PATH", dir)

	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("port: \"1111\"\n"), 0644); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}

	resetSettings()
	defer resetSettings()

	reloads := make(chan *Settings, 16)
	stop, err := Watch(path, func(s *Settings) { reloads <- s })
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer stop()

	// Plain in-place write
	if err := os.WriteFile(path, []byte("port: \"2222\"\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite settings file: %v", err)
	}
	waitForPort(t, reloads, "2222")

	// Editor-style save: write a new file and rename it over the old one
	tmp := filepath.Join(dir, ConfigFileName+".tmp")
	if err := os.WriteFile(tmp, []byte("port: \"3333\"\n"), 0644); err != nil {
		t.Fatalf("failed to write replacement file: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("failed to rename replacement file: %v", err)
	}
	waitForPort(t, reloads, "3333")

	// The watcher must survive the replacement and see later writes
	if err := os.WriteFile(path, []byte("port: \"4444\"\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite settings file: %v", err)
	}
	waitForPort(t, reloads, "4444")
}
