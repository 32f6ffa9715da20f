// Package store is the document store underneath the record services and
// streak engines: named collections of JSON values behind a pluggable backend.
//
// Failures never escape this layer. Reads of missing or unreadable collections
// degrade to the caller-supplied default, write failures leave the stored value
// untouched, and both are logged with the failing operation's message. A
// per-collection mutex serializes read-modify-write cycles so concurrent
// mutations of the same collection cannot lose updates.
package store

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/charmbracelet/log"
)

// ErrNotFound is returned by backends for keys that have never been written.
var ErrNotFound = errors.New("store: key not found")

// Backend is the raw persistence contract: collection key to JSON bytes.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Close() error
}

// Collection keys.
const (
	KeyDays      = "day"
	KeyTasks     = "tasks"
	KeyDoneTasks = "donetasks"
	KeyThoughts  = "thought"
	KeyUser      = "user"
	KeyHabits    = "habits"
)

// Store wraps a Backend with JSON codec, degrade-and-log error policy, and
// per-collection locking.
type Store struct {
	backend Backend
	logger  *log.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(backend Backend, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{
		backend: backend,
		logger:  logger,
		locks:   make(map[string]*sync.Mutex),
	}
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// lock returns the mutex guarding a collection key.
func (s *Store) lock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// read unmarshals the collection into out. Missing keys and malformed JSON
// both leave out at its zero value: a missing collection is normal, a
// malformed one is logged and treated as empty.
func (s *Store) read(key, op string, out any) {
	data, err := s.backend.Read(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Error("error getting data", "op", op, "collection", key, "err", err)
		}
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("malformed stored data, using default", "op", op, "collection", key, "err", err)
	}
}

// write marshals and stores the collection, logging on failure. Returns false
// when the value was not persisted.
func (s *Store) write(key, op string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("error saving data", "op", op, "collection", key, "err", err)
		return false
	}
	if err := s.backend.Write(key, data); err != nil {
		s.logger.Error("error saving data", "op", op, "collection", key, "err", err)
		return false
	}
	return true
}

// GetList reads a list collection, degrading to an empty slice.
func GetList[T any](s *Store, key, op string) []T {
	l := s.lock(key)
	l.Lock()
	defer l.Unlock()
	var items []T
	s.read(key, op, &items)
	return items
}

// PutList replaces a list collection.
func PutList[T any](s *Store, key, op string, items []T) bool {
	l := s.lock(key)
	l.Lock()
	defer l.Unlock()
	return s.write(key, op, items)
}

// UpdateList runs fn over the stored list under the collection lock and writes
// the result back when fn reports a change. The returned slice is the state
// after the update, or the original list when nothing changed or the write
// failed.
func UpdateList[T any](s *Store, key, op string, fn func([]T) ([]T, bool)) []T {
	l := s.lock(key)
	l.Lock()
	defer l.Unlock()
	var items []T
	s.read(key, op, &items)
	updated, changed := fn(items)
	if !changed {
		return items
	}
	if !s.write(key, op, updated) {
		return items
	}
	return updated
}

// GetDoc reads a single-document collection, degrading to def.
func GetDoc[T any](s *Store, key, op string, def T) T {
	l := s.lock(key)
	l.Lock()
	defer l.Unlock()
	doc := def
	s.read(key, op, &doc)
	return doc
}

// UpdateDoc runs fn over the stored document under the collection lock,
// starting from def when nothing is stored yet.
func UpdateDoc[T any](s *Store, key, op string, def T, fn func(T) (T, bool)) T {
	l := s.lock(key)
	l.Lock()
	defer l.Unlock()
	doc := def
	s.read(key, op, &doc)
	updated, changed := fn(doc)
	if !changed {
		return doc
	}
	if !s.write(key, op, updated) {
		return doc
	}
	return updated
}
