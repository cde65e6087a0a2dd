// Package registry implements the in-memory entity store backing the API.
// One store instance exists per record kind; all state lives in a mutex
// guarded map for the life of the process and is lost on restart.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/campusdir/campusdir/engine/core"
	"github.com/google/uuid"
)

// Domain errors surfaced by store operations. Both are terminal for the
// triggering request; a failed operation never mutates the store.
var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("record with this ID already exists")
)

// Record is the contract stored types satisfy on their pointer form. Identity
// and timestamp bookkeeping stay inside the store; Normalize gives a record
// the chance to assign identifiers to embedded values before storage.
type Record interface {
	RecordID() uuid.UUID
	SetRecordID(uuid.UUID)
	CreatedTime() time.Time
	UpdatedTime() time.Time
	StampNew(time.Time)
	Touch(time.Time)
	Normalize()
}

// Store holds the full current representation of every record of one kind,
// keyed by identifier. It is safe for concurrent use; mutations are atomic
// with respect to the map and reads observe consistent snapshots.
type Store[T any, PT interface {
	Record
	*T
}] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]T
	now   func() time.Time
}

// New constructs an empty store.
func New[T any, PT interface {
	Record
	*T
}]() *Store[T, PT] {
	return &Store[T, PT]{items: make(map[uuid.UUID]T), now: core.Now}
}

// Create stores a new record, rejecting a client-supplied identifier that is
// already present with ErrDuplicateID. A zero identifier gets a fresh one:
// after JSON binding an absent id and an explicit zero id are the same value,
// and generation has to win. The zero UUID is therefore never a stored key.
// Both timestamps are stamped to the current UTC time. The returned record is
// a detached copy of what was stored.
func (s *Store[T, PT]) Create(ctx context.Context, rec T) (T, error) {
	return s.insert(ctx, rec, true)
}

// Put stores a record without the duplicate-identifier guard: a resupplied
// identifier silently replaces whatever was stored under it. Person creation
// intentionally behaves this way while the other kinds go through Create.
func (s *Store[T, PT]) Put(ctx context.Context, rec T) (T, error) {
	return s.insert(ctx, rec, false)
}

func (s *Store[T, PT]) insert(ctx context.Context, rec T, guarded bool) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("context canceled: %w", err)
	}
	cp, err := core.DeepCopy(rec)
	if err != nil {
		return zero, fmt.Errorf("deep copy failed: %w", err)
	}
	p := PT(&cp)
	s.mu.Lock()
	defer s.mu.Unlock()
	if id := p.RecordID(); id == uuid.Nil {
		p.SetRecordID(uuid.New())
	} else if guarded {
		if _, exists := s.items[id]; exists {
			return zero, ErrDuplicateID
		}
	}
	p.Normalize()
	p.StampNew(s.now())
	s.items[p.RecordID()] = cp
	return core.DeepCopy(cp)
}

// Get returns a detached copy of the stored record or ErrNotFound.
func (s *Store[T, PT]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("context canceled: %w", err)
	}
	s.mu.RLock()
	rec, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return zero, ErrNotFound
	}
	return core.DeepCopy(rec)
}

// List returns every stored record accepted by match; a nil match imposes no
// constraint. Results are ordered by creation time then identifier so the
// listing is deterministic for a fixed store state.
func (s *Store[T, PT]) List(ctx context.Context, match func(T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context canceled: %w", err)
	}
	s.mu.RLock()
	out := make([]T, 0, len(s.items))
	for _, rec := range s.items {
		if match != nil && !match(rec) {
			continue
		}
		cp, err := core.DeepCopy(rec)
		if err != nil {
			s.mu.RUnlock()
			return nil, fmt.Errorf("deep copy failed: %w", err)
		}
		out = append(out, cp)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		a, b := PT(&out[i]), PT(&out[j])
		if !a.CreatedTime().Equal(b.CreatedTime()) {
			return a.CreatedTime().Before(b.CreatedTime())
		}
		return a.RecordID().String() < b.RecordID().String()
	})
	return out, nil
}

// Update applies the merge closure to a copy of the stored record, refreshes
// updated_at, and swaps the result in atomically. The identifier cannot be
// changed by the closure. Returns ErrNotFound when the identifier is absent.
func (s *Store[T, PT]) Update(ctx context.Context, id uuid.UUID, apply func(PT)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("context canceled: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.items[id]
	if !ok {
		return zero, ErrNotFound
	}
	cp, err := core.DeepCopy(cur)
	if err != nil {
		return zero, fmt.Errorf("deep copy failed: %w", err)
	}
	p := PT(&cp)
	if apply != nil {
		apply(p)
	}
	p.SetRecordID(id)
	p.Normalize()
	now := s.now()
	// Keeps updated_at strictly increasing even within clock resolution.
	if !now.After(p.UpdatedTime()) {
		now = p.UpdatedTime().Add(time.Microsecond)
	}
	p.Touch(now)
	s.items[id] = cp
	return core.DeepCopy(cp)
}

// Len reports how many records the store currently holds.
func (s *Store[T, PT]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
