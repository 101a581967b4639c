package scanner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Pryowin/clndir/pkg/errcode"
)

func TestScanReadsEntries(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("test content"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	old := time.Now().AddDate(0, 0, -200)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("Failed to set mtime: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}

	entries, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Scan() returned %d entries, want 2", len(entries))
	}

	byName := map[string]Entry{}
	for _, e := range entries {
		byName[e.Name] = e
	}

	file, ok := byName["a.txt"]
	if !ok {
		t.Fatal("Scan() did not return a.txt")
	}
	if file.IsDir {
		t.Error("a.txt reported as directory")
	}
	if file.Path != path {
		t.Errorf("a.txt path = %q, want %q", file.Path, path)
	}
	if diff := file.ModTime.Sub(old); diff > time.Second || diff < -time.Second {
		t.Errorf("a.txt mtime = %v, want ~%v", file.ModTime, old)
	}

	sub, ok := byName["sub"]
	if !ok {
		t.Fatal("Scan() did not return subdirectory")
	}
	if !sub.IsDir {
		t.Error("sub not reported as directory")
	}
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("Scan() of missing directory succeeded, want error")
	}
	if !errcode.Has(err, errcode.ReasonDirAccess) {
		t.Errorf("Scan() error reason = %s, want %s", errcode.Of(err), errcode.ReasonDirAccess)
	}
}

func TestScanNotADirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err := Scan(path)
	if err == nil {
		t.Fatal("Scan() of a regular file succeeded, want error")
	}
	if !errcode.Has(err, errcode.ReasonDirAccess) {
		t.Errorf("Scan() error reason = %s, want %s", errcode.Of(err), errcode.ReasonDirAccess)
	}
}

func TestEntryAgeDays(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e := Entry{ModTime: now.AddDate(0, 0, -200)}
	if got := e.AgeDays(now); got != 200 {
		t.Errorf("AgeDays() = %d, want 200", got)
	}
}
