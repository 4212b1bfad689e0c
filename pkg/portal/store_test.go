package portal

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

type record struct {
	ID     string
	Status string
}

type recordFilter struct {
	Status string
}

func newRecordStore(fetch func(context.Context) ([]record, error)) *Store[record, recordFilter] {
	return NewStore(
		fetch,
		func(r record) string { return r.ID },
		func(items []record, f recordFilter) []record {
			if f.Status == "" {
				return items
			}
			var out []record
			for _, r := range items {
				if strings.EqualFold(r.Status, f.Status) {
					out = append(out, r)
				}
			}
			return out
		},
	)
}

func fixedFetch(items ...record) func(context.Context) ([]record, error) {
	return func(context.Context) ([]record, error) { return items, nil }
}

func TestStoreLoad_FailureKeepsPreviousState(t *testing.T) {
	calls := 0
	s := newRecordStore(func(context.Context) ([]record, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("server down")
		}
		return []record{{ID: "a"}, {ID: "b"}}, nil
	})

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if err := s.Load(context.Background()); err == nil {
		t.Fatal("expected second load to fail")
	}
	if got := s.Items(); len(got) != 2 {
		t.Fatalf("failed load must keep previous items, got %d", len(got))
	}
}

func TestStoreSetFilter_RecomputesSynchronously(t *testing.T) {
	s := newRecordStore(fixedFetch(
		record{ID: "a", Status: "Active"},
		record{ID: "b", Status: "Inactive"},
		record{ID: "c", Status: "Active"},
	))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	s.SetFilter(recordFilter{Status: "active"})
	if got := s.Items(); len(got) != 2 {
		t.Fatalf("expected 2 active records, got %d", len(got))
	}
	if got := s.All(); len(got) != 3 {
		t.Fatalf("All must stay unfiltered, got %d", len(got))
	}

	s.SetFilter(recordFilter{})
	if got := s.Items(); len(got) != 3 {
		t.Fatalf("cleared filter must restore full view, got %d", len(got))
	}
}

func TestStoreMutate_OptimisticThenConfirmed(t *testing.T) {
	s := newRecordStore(fixedFetch(record{ID: "a", Status: "Uploaded"}))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	var sent record
	err := s.Mutate(context.Background(), "a",
		func(r record) record { r.Status = "Under Review"; return r },
		func(_ context.Context, r record) error { sent = r; return nil },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent.Status != "Under Review" {
		t.Fatalf("remote must receive the changed record, got %v", sent)
	}
	if got := s.Items(); got[0].Status != "Under Review" {
		t.Fatalf("local state not updated: %v", got)
	}
}

func TestStoreMutate_RemoteFailureReverts(t *testing.T) {
	s := newRecordStore(fixedFetch(record{ID: "a", Status: "Uploaded"}))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	remoteErr := errors.New("server rejected")
	err := s.Mutate(context.Background(), "a",
		func(r record) record { r.Status = "Under Review"; return r },
		func(context.Context, record) error { return remoteErr },
	)
	if !errors.Is(err, remoteErr) {
		t.Fatalf("expected remote error, got %v", err)
	}
	if got := s.Items(); got[0].Status != "Uploaded" {
		t.Fatalf("failed mutation must revert, got %v", got)
	}
}

func TestStoreMutate_DoubleClickMakesOneRemoteCall(t *testing.T) {
	s := newRecordStore(fixedFetch(record{ID: "a", Status: "Uploaded"}))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	var (
		remoteCalls int
		started     = make(chan struct{})
		gate        = make(chan struct{})
		firstDone   sync.WaitGroup
	)
	firstDone.Add(1)
	go func() {
		defer firstDone.Done()
		_ = s.Mutate(context.Background(), "a",
			func(r record) record { r.Status = "Under Review"; return r },
			func(context.Context, record) error {
				remoteCalls++
				close(started)
				<-gate
				return nil
			},
		)
	}()

	// The second click lands while the first remote call is still out.
	<-started
	err := s.Mutate(context.Background(), "a",
		func(r record) record { r.Status = "Rejected"; return r },
		func(context.Context, record) error {
			remoteCalls++
			return nil
		},
	)
	if !errors.Is(err, ErrInFlight) {
		t.Fatalf("expected ErrInFlight, got %v", err)
	}

	close(gate)
	firstDone.Wait()
	if remoteCalls != 1 {
		t.Fatalf("expected a single remote call, got %d", remoteCalls)
	}
	if got := s.Items(); got[0].Status != "Under Review" {
		t.Fatalf("first mutation must win, got %v", got)
	}
}

func TestStoreRemove_FailureReinsertsAtOriginalPosition(t *testing.T) {
	s := newRecordStore(fixedFetch(record{ID: "a"}, record{ID: "b"}, record{ID: "c"}))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	err := s.Remove(context.Background(), "b", func(context.Context, record) error {
		return errors.New("server down")
	})
	if err == nil {
		t.Fatal("expected remove to fail")
	}
	got := s.Items()
	if len(got) != 3 || got[1].ID != "b" {
		t.Fatalf("record must return to its original slot, got %v", got)
	}
}

func TestStoreRemove_Success(t *testing.T) {
	s := newRecordStore(fixedFetch(record{ID: "a"}, record{ID: "b"}))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	var removed record
	if err := s.Remove(context.Background(), "a", func(_ context.Context, r record) error {
		removed = r
		return nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed.ID != "a" {
		t.Fatalf("remote must receive the removed record, got %v", removed)
	}
	if got := s.Items(); len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("unexpected remaining items: %v", got)
	}
}

func TestStoreSelection(t *testing.T) {
	s := newRecordStore(fixedFetch(record{ID: "a"}, record{ID: "b"}))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if s.Select("missing") {
		t.Fatal("selecting an unknown key must fail")
	}
	if !s.Select("b") {
		t.Fatal("selecting a present key must succeed")
	}
	sel, ok := s.Selected()
	if !ok || sel.ID != "b" {
		t.Fatalf("unexpected selection: %v %v", sel, ok)
	}

	if err := s.Remove(context.Background(), "b", func(context.Context, record) error { return nil }); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := s.Selected(); ok {
		t.Fatal("selection must not resolve after the record is gone")
	}

	s.ClearSelection()
	if _, ok := s.Selected(); ok {
		t.Fatal("cleared selection must stay empty")
	}
}

func TestStoreMutate_UnknownKey(t *testing.T) {
	s := newRecordStore(fixedFetch(record{ID: "a"}))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	err := s.Mutate(context.Background(), "zz",
		func(r record) record { return r },
		func(context.Context, record) error { return nil },
	)
	if !errors.Is(err, ErrNoSuchRecord) {
		t.Fatalf("expected ErrNoSuchRecord, got %v", err)
	}
}
