package store

import (
	"fmt"
	"strings"

	"github.com/rcliao/threadlink/internal/model"
	"github.com/rcliao/threadlink/internal/validate"
)

// Entry pairs a thread with its registry ID.
type Entry struct {
	ID string `json:"thread_id"`
	*model.Thread
}

// Search returns threads whose ID or summary contains the query,
// case-insensitively, in registry order. The result may be empty.
func (s *Store) Search(query string) ([]Entry, error) {
	reg, err := s.Load()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var results []Entry
	for _, id := range reg.IDs() {
		t, _ := reg.Get(id)
		if strings.Contains(strings.ToLower(id), q) ||
			strings.Contains(strings.ToLower(t.Summary), q) {
			results = append(results, Entry{ID: id, Thread: t})
		}
	}
	return results, nil
}

// ReverseResult identifies the first thread referencing a file. Warning
// carries the path resolution warning and stays out of the JSON record.
type ReverseResult struct {
	ThreadID string `json:"thread_id"`
	Summary  string `json:"summary"`
	ChatURL  string `json:"chat_url"`
	FilePath string `json:"file_path"`
	Warning  string `json:"-"`
}

// ReverseLookup resolves the path and scans threads in registry order,
// returning the first one whose linked files contain it.
func (s *Store) ReverseLookup(file string) (*ReverseResult, error) {
	path, warning, err := validate.FilePath(file)
	if err != nil {
		return nil, err
	}

	reg, err := s.Load()
	if err != nil {
		return nil, err
	}
	for _, id := range reg.IDs() {
		t, _ := reg.Get(id)
		if t.HasFile(path) {
			return &ReverseResult{
				ThreadID: id,
				Summary:  t.Summary,
				ChatURL:  t.ChatURL,
				FilePath: path,
				Warning:  warning,
			}, nil
		}
	}
	return nil, fmt.Errorf("file %q: %w", path, ErrNoThreadForFile)
}

// List returns threads in registry order, capped at limit when positive.
func (s *Store) List(limit int) ([]Entry, error) {
	reg, err := s.Load()
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, id := range reg.IDs() {
		if limit > 0 && len(entries) >= limit {
			break
		}
		t, _ := reg.Get(id)
		entries = append(entries, Entry{ID: id, Thread: t})
	}
	return entries, nil
}
