package syncstore

import (
	"context"
	"log"
	"sync"
	"time"
)

// SyncStatus tags a locally created record with its persistence outcome.
type SyncStatus string

const (
	Synced       SyncStatus = "SYNCED"
	PendingWrite SyncStatus = "PENDING_WRITE"
	WriteFailed  SyncStatus = "WRITE_FAILED"
)

// writeTimeout bounds each background persistence attempt. There is exactly
// one attempt per record; no retry, no reconciliation.
const writeTimeout = 10 * time.Second

// Record pairs a domain record with its sync tag.
type Record[T any] struct {
	Data   T          `json:"data"`
	Status SyncStatus `json:"syncStatus"`
}

// Store keeps records created by this process, newest first, each tagged
// with whether the write behind it ever reached the document store. A failed
// write keeps the record; the divergence between local and persisted state
// stays observable instead of being silently hidden.
type Store[T any] struct {
	mu   sync.Mutex
	id   func(T) string
	recs []Record[T]
}

func New[T any](id func(T) string) *Store[T] {
	return &Store[T]{id: id}
}

// Put registers data as PendingWrite, kicks off the persistence attempt in
// the background and returns immediately. Fire and forget: the caller never
// learns whether the write landed.
func (s *Store[T]) Put(data T, persist func(context.Context, T) error) {
	s.mu.Lock()
	s.recs = append([]Record[T]{{Data: data, Status: PendingWrite}}, s.recs...)
	s.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := persist(ctx, data); err != nil {
			log.Println("background persist failed:", err)
			s.setStatus(s.id(data), WriteFailed)
			return
		}
		s.setStatus(s.id(data), Synced)
	}()
}

func (s *Store[T]) setStatus(id string, st SyncStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recs {
		if s.id(s.recs[i].Data) == id {
			s.recs[i].Status = st
			return
		}
	}
}

// Status reports the sync tag for a record created here.
func (s *Store[T]) Status(id string) (SyncStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.recs {
		if s.id(r.Data) == id {
			return r.Status, true
		}
	}
	return "", false
}

// Update mutates a local copy in place, if one exists. Used so status
// advances stay visible on records whose create never reached the store.
func (s *Store[T]) Update(id string, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recs {
		if s.id(s.recs[i].Data) == id {
			fn(&s.recs[i].Data)
			return true
		}
	}
	return false
}

// Overlay merges persisted list results with local records the store never
// saw: every PendingWrite/WriteFailed record absent from persisted is
// prepended, newest first. Synced records are served by the persisted
// result itself.
func (s *Store[T]) Overlay(persisted []T) []T {
	seen := make(map[string]bool, len(persisted))
	for _, p := range persisted {
		seen[s.id(p)] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var head []T
	for i := len(s.recs) - 1; i >= 0; i-- {
		r := s.recs[i]
		if r.Status == Synced || seen[s.id(r.Data)] {
			continue
		}
		head = append([]T{r.Data}, head...)
	}
	return append(head, persisted...)
}

// Reset drops every local record. Test hook.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs = nil
}

// Records returns a copy of all tagged records, newest first. Test hook and
// diagnostics surface.
func (s *Store[T]) Records() []Record[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record[T], len(s.recs))
	copy(out, s.recs)
	return out
}
