// Package store persists the thread registry as a single JSON file and
// implements the operations layered on top of it.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rcliao/threadlink/internal/model"
)

// Store owns the registry file. Every operation is a single
// load-mutate-save cycle; the only atomicity guarantee is that Save never
// leaves a half-written file behind. Concurrent invocations race and the
// last writer wins.
type Store struct {
	path    string
	entropy *rand.Rand
}

// DefaultPath returns the per-user registry location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, ".threadlink", "thread_index.json")
}

// Open prepares the registry directory (owner-only) and returns a store
// handle. The registry file itself is created lazily on first save.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create registry dir: %w", err)
	}
	return &Store{
		path:    path,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Path returns the registry file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// Load reads the full registry. A missing file yields an empty registry.
// A file that fails to parse as a JSON object is renamed aside as a
// timestamped backup and an empty registry is returned; that is recovery,
// not an error.
func (s *Store) Load() (*model.Registry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return model.NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}

	reg := model.NewRegistry()
	if err := json.Unmarshal(data, reg); err != nil {
		backup := fmt.Sprintf("%s.backup-%s", s.path, time.Now().Format("20060102-150405"))
		if rerr := os.Rename(s.path, backup); rerr != nil {
			return nil, fmt.Errorf("back up corrupt registry: %w", rerr)
		}
		return model.NewRegistry(), nil
	}
	return reg, nil
}

// Save writes the registry atomically: temp file in the same directory,
// fsync, rename over the target, then owner-only permissions. A reader
// never observes a partially written file.
func (s *Store) Save(reg *model.Registry) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".thread_index-*.json")
	if err != nil {
		return fmt.Errorf("create temp registry: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write registry: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync registry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp registry: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace registry: %w", err)
	}
	if err := os.Chmod(s.path, 0o600); err != nil {
		return fmt.Errorf("restrict registry permissions: %w", err)
	}
	return nil
}
