// Package history keeps a bounded log of evaluated operations with disk
// persistence.
package history

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// DefaultMaxRecords bounds the store when the caller passes a non-positive
// capacity.
const DefaultMaxRecords = 100

// Record is one evaluated operation. Err is non-empty instead of Result when
// the operation failed (division by zero).
type Record struct {
	X      float64   `msgpack:"x" json:"x"`
	Y      float64   `msgpack:"y" json:"y"`
	Op     string    `msgpack:"op" json:"op"`
	Result float64   `msgpack:"result" json:"result"`
	Err    string    `msgpack:"err,omitempty" json:"err,omitempty"`
	At     time.Time `msgpack:"at" json:"at"`
}

// String renders the record in the same shape the demo prints.
func (r Record) String() string {
	if r.Err != "" {
		return fmt.Sprintf("%v %s %v = %s", r.X, r.Op, r.Y, r.Err)
	}
	return fmt.Sprintf("%v %s %v = %v", r.X, r.Op, r.Y, r.Result)
}

// Store is a bounded, newest-last record list safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	max     int
	records []Record
}

// New creates a store holding at most max records.
func New(max int) *Store {
	if max <= 0 {
		max = DefaultMaxRecords
	}
	return &Store{max: max}
}

// Append adds records, dropping the oldest entries once capacity is exceeded.
func (s *Store) Append(recs ...Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, recs...)
	if over := len(s.records) - s.max; over > 0 {
		s.records = append(s.records[:0:0], s.records[over:]...)
	}
}

// Records returns a copy of the stored records, oldest first.
func (s *Store) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Clear removes all records.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}

// Save persists the records to a writer using msgpack.
func (s *Store) Save(w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enc := msgpack.NewEncoder(w)
	return enc.Encode(s.records)
}

// Load restores records from a reader, replacing the current contents.
// Records beyond capacity are trimmed oldest-first.
func (s *Store) Load(r io.Reader) error {
	var records []Record
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return fmt.Errorf("failed to decode history: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if over := len(records) - s.max; over > 0 {
		records = records[over:]
	}
	s.records = records
	return nil
}

// SaveJSON writes the records as indented JSON, for human inspection.
func (s *Store) SaveJSON(w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.records)
}

// OpenFile loads a store from path. A missing file yields an empty store.
func OpenFile(path string, max int) (*Store, error) {
	s := New(max)

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening history file %s: %w", path, err)
	}
	defer f.Close()

	if err := s.Load(f); err != nil {
		return nil, fmt.Errorf("loading history file %s: %w", path, err)
	}
	return s, nil
}

// WriteFile persists the store to path, creating parent directories.
func (s *Store) WriteFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating history file %s: %w", path, err)
	}
	defer f.Close()

	if err := s.Save(f); err != nil {
		return fmt.Errorf("writing history file %s: %w", path, err)
	}
	return nil
}
