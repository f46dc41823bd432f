package store

import "github.com/rcliao/threadlink/internal/model"

// ExportAll returns the full registry for dumping.
func (s *Store) ExportAll() (*model.Registry, error) {
	return s.Load()
}
