package repositories

import (
	"fmt"
	"sync"
	"time"
)

// Cloner is implemented by entities holding slices or pointers.
// The store clones on the way in and out so callers never share its memory.
type Cloner[T any] interface {
	Clone() T
}

// Entity is implemented by every record type a RecordStore can hold.
// WithIdentity returns a copy carrying the given id and creation time.
type Entity[T any] interface {
	RecordID() int64
	RecordCreatedAt() time.Time
	WithIdentity(id int64, createdAt time.Time) T
	Validate() error
}

// Operation names the mutation a commit hook is asked to approve.
type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// CommitHook runs after validation and before a mutation becomes visible.
// Returning an error cancels the mutation.
type CommitHook[T any] func(op Operation, record T) error

// StoreOption configures a RecordStore.
type StoreOption[T Entity[T]] func(*RecordStore[T])

// WithClock sets the source of CreatedAt timestamps.
func WithClock[T Entity[T]](clock func() time.Time) StoreOption[T] {
	return func(s *RecordStore[T]) { s.clock = clock }
}

// WithDefaults fills default fields on create, before validation.
func WithDefaults[T Entity[T]](defaults func(T) T) StoreOption[T] {
	return func(s *RecordStore[T]) { s.defaults = defaults }
}

// WithCommitHook attaches a hook that can veto mutations, e.g. to mirror them durably.
// The hook runs under the store's write lock, so a slow hook stalls readers too.
func WithCommitHook[T Entity[T]](hook CommitHook[T]) StoreOption[T] {
	return func(s *RecordStore[T]) { s.hook = hook }
}

// RecordStore is an ordered, keyed, in-memory collection of one entity type.
// Created records go to the front; reads return copies of stored values.
type RecordStore[T Entity[T]] struct {
	name     string
	mu       sync.RWMutex
	seq      int64
	order    []int64
	items    map[int64]T
	clock    func() time.Time
	defaults func(T) T
	hook     CommitHook[T]
}

// NewRecordStore creates an empty store. name is used in error messages.
func NewRecordStore[T Entity[T]](name string, opts ...StoreOption[T]) *RecordStore[T] {
	s := &RecordStore[T]{
		name:  name,
		items: make(map[int64]T),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create assigns a fresh id and CreatedAt, validates and prepends the record.
func (s *RecordStore[T]) Create(input T) (T, error) {
	var zero T
	if s.defaults != nil {
		input = s.defaults(input)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Ids are never reused, even when the create is rejected below.
	s.seq++
	record := input.WithIdentity(s.seq, s.clock())
	if err := record.Validate(); err != nil {
		return zero, err
	}
	if err := s.commit(OpCreate, record); err != nil {
		return zero, err
	}

	s.items[record.RecordID()] = s.copyOf(record)
	s.order = append([]int64{record.RecordID()}, s.order...)
	return s.copyOf(record), nil
}

// Update applies patch to a copy of the record, keeping its id and CreatedAt.
func (s *RecordStore[T]) Update(id int64, patch func(T) T) (T, error) {
	return s.Modify(id, func(record T) (T, error) {
		return patch(record), nil
	})
}

// Modify is Update with a patch that may reject the change. The patch runs
// under the store lock, so checks it makes against the current record hold
// when the result is written.
func (s *RecordStore[T]) Modify(id int64, patch func(T) (T, error)) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.items[id]
	if !ok {
		return zero, s.notFound(id)
	}
	updated, err := patch(s.copyOf(current))
	if err != nil {
		return zero, err
	}
	updated = updated.WithIdentity(current.RecordID(), current.RecordCreatedAt())
	if err := updated.Validate(); err != nil {
		return zero, err
	}
	if err := s.commit(OpUpdate, updated); err != nil {
		return zero, err
	}

	s.items[id] = s.copyOf(updated)
	return s.copyOf(updated), nil
}

// Delete removes a record. Deleting a missing id, including twice, is ErrNotFound.
func (s *RecordStore[T]) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.items[id]
	if !ok {
		return s.notFound(id)
	}
	if err := s.commit(OpDelete, current); err != nil {
		return err
	}

	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the record with the given id.
func (s *RecordStore[T]) Get(id int64) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.items[id]
	if !ok {
		var zero T
		return zero, s.notFound(id)
	}
	return s.copyOf(record), nil
}

// List returns the records in store order, keeping those matching predicate.
// A nil predicate keeps everything. The result is never nil.
func (s *RecordStore[T]) List(predicate func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		record := s.copyOf(s.items[id])
		if predicate == nil || predicate(record) {
			out = append(out, record)
		}
	}
	return out
}

// Len returns the number of stored records.
func (s *RecordStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Seed appends fixture records as given, keeping their ids and timestamps.
// Records without an id get the next sequence value; a zero CreatedAt is stamped from the clock.
// Nothing is stored if any record is invalid or collides with an existing id.
func (s *RecordStore[T]) Seed(records ...T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seq
	for _, r := range records {
		if r.RecordID() > seq {
			seq = r.RecordID()
		}
	}

	seen := make(map[int64]struct{}, len(records))
	prepared := make([]T, 0, len(records))
	for i, r := range records {
		if s.defaults != nil {
			r = s.defaults(r)
		}
		id := r.RecordID()
		if id == 0 {
			seq++
			id = seq
		}
		createdAt := r.RecordCreatedAt()
		if createdAt.IsZero() {
			createdAt = s.clock()
		}
		r = r.WithIdentity(id, createdAt)

		if _, dup := s.items[id]; dup {
			return fmt.Errorf("%w: %s seed #%d reuses id %d", ErrDuplicateKey, s.name, i, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s seed #%d reuses id %d", ErrDuplicateKey, s.name, i, id)
		}
		if err := r.Validate(); err != nil {
			return fmt.Errorf("%s seed #%d: %w", s.name, i, err)
		}
		seen[id] = struct{}{}
		prepared = append(prepared, s.copyOf(r))
	}

	for _, r := range prepared {
		s.items[r.RecordID()] = r
		s.order = append(s.order, r.RecordID())
	}
	s.seq = seq
	return nil
}

func (s *RecordStore[T]) copyOf(record T) T {
	if c, ok := any(record).(Cloner[T]); ok {
		return c.Clone()
	}
	return record
}

func (s *RecordStore[T]) commit(op Operation, record T) error {
	if s.hook == nil {
		return nil
	}
	return s.hook(op, record)
}

func (s *RecordStore[T]) notFound(id int64) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, s.name, id)
}
