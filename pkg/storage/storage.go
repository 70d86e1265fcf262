// Package storage persists raw TLV capture buffers in a local pebble
// database, keyed by ksuid. The decode service uses it to archive
// submitted buffers so they can be re-decoded later, possibly under a
// different variant or schema.
package storage

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// CaptureStore is a blob store for capture buffers.
type CaptureStore struct {
	db *pebble.DB
}

// Open opens (creating if needed) a capture store at path.
func Open(path string) (*CaptureStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open capture store at %s: %w", path, err)
	}
	return &CaptureStore{db: db}, nil
}

// Create stores a new capture and returns its generated id.
func (s *CaptureStore) Create(data []byte) (ksuid.KSUID, error) {
	id := ksuid.New()
	if err := s.db.Set(id.Bytes(), data, pebble.Sync); err != nil {
		return ksuid.Nil, fmt.Errorf("failed to store capture %s: %w", id, err)
	}
	return id, nil
}

// Read returns a copy of the capture with the given id. The copy is
// required: pebble's value slice is only valid until the closer runs.
func (s *CaptureStore) Read(id ksuid.KSUID) ([]byte, error) {
	value, closer, err := s.db.Get(id.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to read capture %s: %w", id, err)
	}
	defer closer.Close()

	data := make([]byte, len(value))
	copy(data, value)
	return data, nil
}

// Update replaces the capture with the given id.
func (s *CaptureStore) Update(id ksuid.KSUID, data []byte) error {
	if err := s.db.Set(id.Bytes(), data, pebble.Sync); err != nil {
		return fmt.Errorf("failed to update capture %s: %w", id, err)
	}
	return nil
}

// Delete removes the capture with the given id.
func (s *CaptureStore) Delete(id ksuid.KSUID) error {
	if err := s.db.Delete(id.Bytes(), pebble.Sync); err != nil {
		return fmt.Errorf("failed to delete capture %s: %w", id, err)
	}
	return nil
}

// IsNotFound reports whether err means the capture does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, pebble.ErrNotFound)
}

// Close closes the underlying database.
func (s *CaptureStore) Close() error {
	return s.db.Close()
}
