package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Registry is the full collection of threads, keyed by ID. Insertion order
// is preserved so dumps stay human-readable and first-match scans are
// deterministic; that requires custom JSON (de)serialization, since Go maps
// have no order.
type Registry struct {
	ids     []string
	threads map[string]*Thread
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{threads: make(map[string]*Thread)}
}

// Get returns the thread stored under id.
func (r *Registry) Get(id string) (*Thread, bool) {
	t, ok := r.threads[id]
	return t, ok
}

// Has reports whether id is present.
func (r *Registry) Has(id string) bool {
	_, ok := r.threads[id]
	return ok
}

// Put stores t under id, appending to the insertion order on first insert.
func (r *Registry) Put(id string, t *Thread) {
	if _, ok := r.threads[id]; !ok {
		r.ids = append(r.ids, id)
	}
	r.threads[id] = t
}

// Len returns the number of threads.
func (r *Registry) Len() int {
	return len(r.ids)
}

// IDs returns thread IDs in insertion order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// MarshalJSON emits the registry as a JSON object with keys in insertion
// order.
func (r *Registry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range r.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.threads[id])
		if err != nil {
			return nil, fmt.Errorf("encode thread %q: %w", id, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving key order and normalizing
// each record. Anything other than a top-level object is an error.
func (r *Registry) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("registry must be a JSON object, got %v", tok)
	}

	r.ids = nil
	r.threads = make(map[string]*Thread)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := tok.(string)
		if !ok {
			return fmt.Errorf("registry key must be a string, got %v", tok)
		}
		var t Thread
		if err := dec.Decode(&t); err != nil {
			return fmt.Errorf("decode thread %q: %w", id, err)
		}
		t.Normalize()
		r.Put(id, &t)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
