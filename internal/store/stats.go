package store

import "os"

// Stats holds registry statistics.
type Stats struct {
	RegistryPath      string `json:"registry_path"`
	RegistrySizeBytes int64  `json:"registry_size_bytes"`
	Threads           int    `json:"threads"`
	AutoGenerated     int    `json:"auto_generated"`
	LinkedFiles       int    `json:"linked_files"`
}

// Stats returns registry statistics.
func (s *Store) Stats() (*Stats, error) {
	reg, err := s.Load()
	if err != nil {
		return nil, err
	}

	st := &Stats{RegistryPath: s.path, Threads: reg.Len()}
	if info, err := os.Stat(s.path); err == nil {
		st.RegistrySizeBytes = info.Size()
	}
	for _, id := range reg.IDs() {
		t, _ := reg.Get(id)
		if t.AutoGenerated {
			st.AutoGenerated++
		}
		st.LinkedFiles += len(t.LinkedFiles)
	}
	return st, nil
}
