package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchTriggersCallback(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "case.yaml")
	other := filepath.Join(dir, "other.yaml")
	if err := os.WriteFile(file, []byte("name: a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fw, err := NewFileWatcher(20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher: %v", err)
	}
	defer fw.Close()

	changed := make(chan string, 10)
	if err := fw.Watch([]string{file}, func(path string) { changed <- path }); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- fw.Run(ctx) }()

	// Unwatched files in the same directory are ignored
	if err := os.WriteFile(other, []byte("name: b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(file, []byte("name: c\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	want, _ := filepath.Abs(file)
	select {
	case got := <-changed:
		if got != want {
			t.Errorf("expected callback for %s, got %s", want, got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change callback")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	fw, err := NewFileWatcher(time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher: %v", err)
	}
	defer fw.Close()

	missing := filepath.Join(t.TempDir(), "nope", "case.yaml")
	if err := fw.Watch([]string{missing}, func(string) {}); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
