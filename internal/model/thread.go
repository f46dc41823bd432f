// Package model defines the core thread data types.
package model

import "time"

// Thread is a single registry entry: a tagged unit of work with its
// conversation metadata and linked files.
type Thread struct {
	Summary       string    `json:"summary"`
	LinkedFiles   []string  `json:"linked_files"`
	ChatURL       string    `json:"chat_url"`
	DateCreated   time.Time `json:"date_created"`
	AutoGenerated bool      `json:"auto_generated"`
}

// Normalize repairs a record loaded from disk: linked_files is never nil
// and never holds duplicates.
func (t *Thread) Normalize() {
	if t.LinkedFiles == nil {
		t.LinkedFiles = []string{}
		return
	}
	seen := make(map[string]bool, len(t.LinkedFiles))
	files := t.LinkedFiles[:0]
	for _, f := range t.LinkedFiles {
		if seen[f] {
			continue
		}
		seen[f] = true
		files = append(files, f)
	}
	t.LinkedFiles = files
}

// LinkFile appends path to linked_files. Returns false if already linked.
func (t *Thread) LinkFile(path string) bool {
	if t.HasFile(path) {
		return false
	}
	t.LinkedFiles = append(t.LinkedFiles, path)
	return true
}

// UnlinkFile removes the exact-match path. Returns false if not linked.
func (t *Thread) UnlinkFile(path string) bool {
	for i, f := range t.LinkedFiles {
		if f == path {
			t.LinkedFiles = append(t.LinkedFiles[:i], t.LinkedFiles[i+1:]...)
			return true
		}
	}
	return false
}

// HasFile reports whether path is linked (exact string match).
func (t *Thread) HasFile(path string) bool {
	for _, f := range t.LinkedFiles {
		if f == path {
			return true
		}
	}
	return false
}
