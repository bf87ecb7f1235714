// Package store implements a single-file JSON document store.
//
// All documents live in one pretty-printed JSON object keyed by generated
// id. Every operation reads or rewrites the whole file; rewrites go through
// a temp file and rename so readers never observe a partial document.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/kjk/common/atomicfile"
)

// Store persists JSON documents in a single file.
// The file is created lazily on the first write.
type Store struct {
	path string
}

// New returns a store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Insert adds doc under a freshly generated id and rewrites the file.
// It returns the new id.
func (s *Store) Insert(doc any) (string, error) {
	docs, err := s.readAll()
	if err != nil {
		return "", err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encoding document: %w", err)
	}

	id := uuid.NewString()
	docs[id] = raw

	if err := s.writeAll(docs); err != nil {
		return "", err
	}
	return id, nil
}

// Get decodes the document with the given id into out.
// Returns a *NotFoundError if the id is absent.
func (s *Store) Get(id string, out any) error {
	docs, err := s.readAll()
	if err != nil {
		return err
	}

	raw, ok := docs[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding document %s: %w", id, err)
	}
	return nil
}

// All returns every document keyed by id. A missing file yields an
// empty map, not an error.
func (s *Store) All() (map[string]json.RawMessage, error) {
	return s.readAll()
}

// Delete removes the document with the given id and rewrites the file.
// Returns a *NotFoundError if the id is absent.
func (s *Store) Delete(id string) error {
	docs, err := s.readAll()
	if err != nil {
		return err
	}

	if _, ok := docs[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(docs, id)

	return s.writeAll(docs)
}

func (s *Store) readAll() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	docs := map[string]json.RawMessage{}
	if len(data) == 0 {
		return docs, nil
	}
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parsing data file: %w", err)
	}
	return docs, nil
}

// writeAll replaces the backing file with the full document set.
// Two-space indent keeps the file readable and matches the format
// written by earlier versions of the tool.
func (s *Store) writeAll(docs map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding data file: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	f, err := atomicfile.New(s.path)
	if err != nil {
		return fmt.Errorf("creating data file: %w", err)
	}
	defer f.RemoveIfNotClosed()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing data file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing data file: %w", err)
	}
	return nil
}
