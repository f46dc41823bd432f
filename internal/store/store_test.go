package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rcliao/threadlink/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "thread_index.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	reg, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("expected empty registry, got %d threads", reg.Len())
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := newTestStore(t)

	reg := model.NewRegistry()
	reg.Put("proj1", &model.Thread{Summary: "fix bug", LinkedFiles: []string{"/tmp/bug.py"}})
	if err := s.Save(reg); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	th, ok := got.Get("proj1")
	if !ok {
		t.Fatal("proj1 missing after reload")
	}
	if th.Summary != "fix bug" || len(th.LinkedFiles) != 1 {
		t.Errorf("unexpected record: %+v", th)
	}
}

func TestSaveLoadRoundTripStable(t *testing.T) {
	s := newTestStore(t)

	reg := model.NewRegistry()
	reg.Put("b", &model.Thread{Summary: "second", LinkedFiles: []string{}})
	reg.Put("a", &model.Thread{Summary: "first", LinkedFiles: []string{}})
	if err := s.Save(reg); err != nil {
		t.Fatalf("save: %v", err)
	}
	before, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	// save(load()) with no mutation must leave the decoded content unchanged.
	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := s.Save(loaded); err != nil {
		t.Fatalf("resave: %v", err)
	}
	after, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("reread: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Errorf("registry changed across save(load()):\n%s\nvs\n%s", before, after)
	}
}

func TestCorruptFileBackedUp(t *testing.T) {
	s := newTestStore(t)
	corrupt := []byte(`{"proj1": not valid json`)
	if err := os.WriteFile(s.Path(), corrupt, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	reg, err := s.Load()
	if err != nil {
		t.Fatalf("load should recover, got: %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("expected empty registry after recovery, got %d", reg.Len())
	}

	backups, err := filepath.Glob(s.Path() + ".backup-*")
	if err != nil || len(backups) != 1 {
		t.Fatalf("expected exactly one backup, got %v (%v)", backups, err)
	}
	saved, err := os.ReadFile(backups[0])
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if !bytes.Equal(saved, corrupt) {
		t.Errorf("backup does not hold original bytes: %s", saved)
	}

	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Error("corrupt file should have been renamed away")
	}
}

func TestNonObjectFileBackedUp(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.Path(), []byte(`[1, 2, 3]`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	reg, err := s.Load()
	if err != nil {
		t.Fatalf("load should recover, got: %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("expected empty registry, got %d", reg.Len())
	}
	backups, _ := filepath.Glob(s.Path() + ".backup-*")
	if len(backups) != 1 {
		t.Errorf("expected backup for non-object file, got %v", backups)
	}
}

func TestSaveRestrictsPermissions(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save(model.NewRegistry()); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(s.Path())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected 0600 permissions, got %o", perm)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save(model.NewRegistry()); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the registry file, got %d entries", len(entries))
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "thread_index.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Save(model.NewRegistry()); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatalf("stat dir: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o700 {
		t.Errorf("expected 0700 directory, got %o", perm)
	}
}
