package portal

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrInFlight reports that a mutation for the same record is still
	// outstanding; the caller's double click is dropped, not queued.
	ErrInFlight = errors.New("mutation already in flight for this record")

	ErrNoSuchRecord = errors.New("record not in collection")
)

// Store owns one dashboard view: the loaded collection, the current
// filter, the derived filtered slice and a single selection. T is the
// record type, F the filter type fed to the recompute function.
type Store[T any, F any] struct {
	mu sync.Mutex

	fetch  func(context.Context) ([]T, error)
	keyOf  func(T) string
	refine func([]T, F) []T

	items    []T
	filtered []T
	filter   F

	selectedKey string
	hasSelected bool

	inflight map[string]bool
}

func NewStore[T any, F any](fetch func(context.Context) ([]T, error), keyOf func(T) string, refine func([]T, F) []T) *Store[T, F] {
	return &Store[T, F]{
		fetch:    fetch,
		keyOf:    keyOf,
		refine:   refine,
		inflight: make(map[string]bool),
	}
}

// Load fetches the collection. On failure the previous state stays
// untouched and the error is returned to the caller.
func (s *Store[T, F]) Load(ctx context.Context) error {
	items, err := s.fetch(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.recompute()
	return nil
}

// SetFilter replaces the filter and synchronously recomputes the
// derived slice.
func (s *Store[T, F]) SetFilter(f F) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
	s.recompute()
}

func (s *Store[T, F]) Filter() F {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Items returns the filtered view. The slice is a copy; mutating it
// does not touch store state.
func (s *Store[T, F]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.filtered))
	copy(out, s.filtered)
	return out
}

// All returns the unfiltered collection as a copy.
func (s *Store[T, F]) All() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T, F]) Select(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, _, ok := s.find(key); !ok {
		return false
	}
	s.selectedKey = key
	s.hasSelected = true
	return true
}

func (s *Store[T, F]) Selected() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	if !s.hasSelected {
		return zero, false
	}
	if _, rec, ok := s.find(s.selectedKey); ok {
		return rec, true
	}
	return zero, false
}

func (s *Store[T, F]) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedKey = ""
	s.hasSelected = false
}

// Mutate applies an optimistic update to one record: local change
// first, then the remote call; on remote failure the snapshot is
// restored. While a mutation is outstanding, further mutations on the
// same key fail fast with ErrInFlight and perform no network call.
func (s *Store[T, F]) Mutate(ctx context.Context, key string, change func(T) T, remote func(context.Context, T) error) error {
	s.mu.Lock()
	if s.inflight[key] {
		s.mu.Unlock()
		return ErrInFlight
	}

	idx, snapshot, ok := s.find(key)
	if !ok {
		s.mu.Unlock()
		return ErrNoSuchRecord
	}

	s.inflight[key] = true
	changed := change(snapshot)
	s.items[idx] = changed
	s.recompute()
	s.mu.Unlock()

	err := remote(ctx, changed)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, key)
	if err != nil {
		if i, _, still := s.find(key); still {
			s.items[i] = snapshot
			s.recompute()
		}
		return err
	}
	return nil
}

// Remove optimistically drops a record; a failed remote call puts it
// back at its original position.
func (s *Store[T, F]) Remove(ctx context.Context, key string, remote func(context.Context, T) error) error {
	s.mu.Lock()
	if s.inflight[key] {
		s.mu.Unlock()
		return ErrInFlight
	}

	idx, snapshot, ok := s.find(key)
	if !ok {
		s.mu.Unlock()
		return ErrNoSuchRecord
	}

	s.inflight[key] = true
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.recompute()
	s.mu.Unlock()

	err := remote(ctx, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, key)
	if err != nil {
		if idx > len(s.items) {
			idx = len(s.items)
		}
		s.items = append(s.items[:idx], append([]T{snapshot}, s.items[idx:]...)...)
		s.recompute()
		return err
	}
	return nil
}

// recompute and find require s.mu held.

func (s *Store[T, F]) recompute() {
	if s.refine == nil {
		s.filtered = s.items
		return
	}
	s.filtered = s.refine(s.items, s.filter)
}

func (s *Store[T, F]) find(key string) (int, T, bool) {
	for i, it := range s.items {
		if s.keyOf(it) == key {
			return i, it, true
		}
	}
	var zero T
	return 0, zero, false
}
