package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestWatcherReportsTargetWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfigFile(t, path, "window:\n  width: 800\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	// A sibling file in the watched directory must not produce events.
	writeConfigFile(t, filepath.Join(dir, "other.yaml"), "ignored\n")
	writeConfigFile(t, path, "window:\n  width: 640\n")

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "config.yaml" {
			t.Errorf("event for %q, expected the watched file", name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event for a write to the watched file")
	}
}

func TestWatcherCloseDuringEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfigFile(t, path, "window:\n  width: 800\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	// Keep the event pipeline busy while shutting down.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			_ = os.WriteFile(path, []byte("window:\n  width: 801\n"), 0o644)
		}
	}()

	if err := w.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	<-done

	// The watch goroutine closes both channels once it stops, so
	// draining terminates instead of blocking.
	for range w.Events {
	}
	for range w.Errors {
	}

	if err := w.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
