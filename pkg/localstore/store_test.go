package localstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}

	if _, ok := s.Get("missing"); ok {
		t.Fatalf("expected missing key to be absent")
	}

	if err := s.Set("device_id", "abc123"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Reopen and read back
	s2, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile (reopen): %v", err)
	}
	got, ok := s2.Get("device_id")
	if !ok || got != "abc123" {
		t.Fatalf("expected device_id=abc123 after reopen, got %q (ok=%v)", got, ok)
	}
}

func TestFileStore_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}

	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := s.Get("k"); ok {
		t.Fatalf("key should be gone after Delete")
	}
}

func TestFileStore_CorruptedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile on corrupt file should not fail, got %v", err)
	}
	if _, ok := s.Get("anything"); ok {
		t.Fatalf("corrupt store must start empty")
	}
}
