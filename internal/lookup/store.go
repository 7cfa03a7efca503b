// Package lookup answers "which source file declares this type?" from an
// index produced by the indexer.
//
// A Store is loaded once and is read-only afterwards, so any number of
// goroutines may query it concurrently. Close drops the loaded index;
// later queries fail with ErrDisposed.
package lookup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"
)

// Record is one element of the index JSON array.
type Record struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Store holds a loaded index.
type Store struct {
	records atomic.Pointer[[]Record]
}

// Open loads an index from either JSON text or a path to a JSON file.
// Input whose first non-space byte is '[' is treated as JSON text.
func Open(pathOrText string) (*Store, error) {
	trimmed := bytes.TrimSpace([]byte(pathOrText))
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return Load(trimmed)
	}
	return LoadFrom(pathOrText)
}

// LoadFrom reads and parses the index file at path. A missing file fails
// with ErrFileNotFound before any parsing is attempted.
func LoadFrom(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &notFoundError{path: path}
		}
		return nil, fmt.Errorf("failed to stat index: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}
	return Load(data)
}

// Load parses index JSON text.
func Load(data []byte) (*Store, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse index: %w", err)
	}
	return NewStore(records), nil
}

// NewStore wraps already-decoded records. The slice must not be modified afterwards.
func NewStore(records []Record) *Store {
	if records == nil {
		records = []Record{}
	}
	s := &Store{}
	s.records.Store(&records)
	return s
}

// URLOfName returns the URL of the first record whose name equals name
// exactly. A missing name is reported with ok == false and a nil error.
func (s *Store) URLOfName(name string) (url string, ok bool, err error) {
	records := s.records.Load()
	if records == nil {
		return "", false, ErrDisposed
	}

	for _, r := range *records {
		if r.Name == name {
			return r.URL, true, nil
		}
	}
	return "", false, nil
}

// URLOfType resolves a type descriptor to its qualified name and looks it
// up. A nil descriptor names nothing and is reported as not found.
func (s *Store) URLOfType(t TypeDescriptor) (url string, ok bool, err error) {
	if t == nil {
		if s.records.Load() == nil {
			return "", false, ErrDisposed
		}
		return "", false, nil
	}
	return s.URLOfName(QualifiedName(t))
}

// Len returns the number of loaded records, or zero once disposed.
func (s *Store) Len() int {
	records := s.records.Load()
	if records == nil {
		return 0
	}
	return len(*records)
}

// Close releases the loaded index. It is safe to call more than once.
func (s *Store) Close() error {
	s.records.Store(nil)
	return nil
}
