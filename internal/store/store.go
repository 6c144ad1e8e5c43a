// Package store holds the current immutable event snapshot. Readers take one
// snapshot per request; writers swap in a new one atomically.
package store

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/crimson-sun/errboard/internal/engine/filter"
	"github.com/crimson-sun/errboard/internal/model"
)

// Snapshot is one loaded event collection. Never mutate Events.
type Snapshot struct {
	Version  string
	LoadedAt time.Time
	Origin   string
	Events   []model.Event
}

// Stats summarizes a snapshot.
type Stats struct {
	Version       string    `json:"version"`
	LoadedAt      time.Time `json:"loaded_at"`
	Origin        string    `json:"origin"`
	Total         int       `json:"total"`
	Errors        int       `json:"errors"`
	NullTimestamp int       `json:"null_timestamp"`
}

// Stats computes counts over the snapshot.
func (s *Snapshot) Stats() Stats {
	st := Stats{Version: s.Version, LoadedAt: s.LoadedAt, Origin: s.Origin, Total: len(s.Events)}
	for _, e := range filter.Errors(s.Events) {
		st.Errors++
		if !e.HasTimestamp() {
			st.NullTimestamp++
		}
	}
	return st
}

// Store is safe for concurrent use.
type Store struct {
	cur atomic.Pointer[Snapshot]
	now func() time.Time
}

// New returns a Store holding an empty snapshot.
func New() *Store {
	s := &Store{now: time.Now}
	s.Replace("", nil)
	return s
}

// Replace installs events as the current snapshot and returns it.
// The slice is copied so later changes by the caller are not observed.
func (s *Store) Replace(origin string, events []model.Event) *Snapshot {
	cp := make([]model.Event, len(events))
	copy(cp, events)
	snap := &Snapshot{
		Version:  uuid.NewString(),
		LoadedAt: s.now().UTC(),
		Origin:   origin,
		Events:   cp,
	}
	s.cur.Store(snap)
	return snap
}

// Current returns the current snapshot. Never nil.
func (s *Store) Current() *Snapshot {
	return s.cur.Load()
}
