package memdb

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/hedisam/ringbuffer/internal/store"
	"github.com/hedisam/ringbuffer/ringbuffer"
)

// BufferStore keeps named ring buffers of raw JSON values.
// Ring buffers are not safe for concurrent use, so every access goes through the store mutex.
type BufferStore struct {
	buffers     map[string]*ringbuffer.RingBuffer[json.RawMessage]
	maxCapacity int
	mu          sync.RWMutex
}

func NewBufferStore(opts ...Option) *BufferStore {
	cfg := &config{memSize: DefaultMemSize, maxCapacity: DefaultMaxCapacity}
	for opt := range slices.Values(opts) {
		opt(cfg)
	}

	return &BufferStore{
		buffers:     make(map[string]*ringbuffer.RingBuffer[json.RawMessage], cfg.memSize),
		maxCapacity: cfg.maxCapacity,
	}
}

// Create adds a new empty buffer with the given capacity.
func (s *BufferStore) Create(_ context.Context, name string, capacity int) error {
	if capacity < 0 || capacity > s.maxCapacity {
		return fmt.Errorf("capacity %d outside [0, %d]: %w", capacity, s.maxCapacity, store.ErrInvalidCapacity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.buffers[name]; ok {
		return store.ErrAlreadyExists
	}
	s.buffers[name] = ringbuffer.New[json.RawMessage](capacity)
	storedBuffers.Set(float64(len(s.buffers)))
	return nil
}

// Delete removes the named buffer along with its items.
func (s *BufferStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.buffers[name]; !ok {
		return store.ErrNotFound
	}
	delete(s.buffers, name)
	storedBuffers.Set(float64(len(s.buffers)))
	return nil
}

// List returns the stats of every buffer ordered by name.
func (s *BufferStore) List(_ context.Context) ([]store.BufferStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := slices.Sorted(maps.Keys(s.buffers))
	stats := make([]store.BufferStats, 0, len(names))
	for name := range slices.Values(names) {
		stats = append(stats, statsOf(name, s.buffers[name]))
	}
	return stats, nil
}

// Stats returns the occupancy of the named buffer.
func (s *BufferStore) Stats(_ context.Context, name string) (store.BufferStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rb, ok := s.buffers[name]
	if !ok {
		return store.BufferStats{}, store.ErrNotFound
	}
	return statsOf(name, rb), nil
}

// Push adds items to the given end of the named buffer. Unlike the ring buffer's own batch pushes
// it is all-or-nothing: nothing is pushed unless every item fits.
// Pushing to the front inserts the items one by one, so they end up in reverse order.
func (s *BufferStore) Push(_ context.Context, name string, end store.End, items []json.RawMessage) error {
	if !end.Valid() {
		return store.ErrInvalidEnd
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rb, ok := s.buffers[name]
	if !ok {
		return store.ErrNotFound
	}

	free := rb.Cap() - rb.Len()
	if len(items) > free {
		rejectedPushes.Inc()
		return fmt.Errorf("push %d items with %d free slots: %w", len(items), free, ringbuffer.ErrFull)
	}

	var err error
	switch end {
	case store.Front:
		err = rb.PushAllFront(items...)
	case store.Back:
		err = rb.PushAllBack(items...)
	}
	if err != nil {
		return fmt.Errorf("push items to %s: %w", end, err)
	}

	return nil
}

// Pop removes k items from the given end of the named buffer. Items popped from the back are
// returned newest first.
func (s *BufferStore) Pop(_ context.Context, name string, end store.End, k int) ([]json.RawMessage, error) {
	if !end.Valid() {
		return nil, store.ErrInvalidEnd
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rb, ok := s.buffers[name]
	if !ok {
		return nil, store.ErrNotFound
	}

	pop := rb.PopFrontK
	if end == store.Back {
		pop = rb.PopBackK
	}
	items, err := pop(k)
	if err != nil {
		return nil, fmt.Errorf("pop %d items from %s: %w", k, end, err)
	}

	return items, nil
}

// Peek returns k items from the given end of the named buffer without removing them.
func (s *BufferStore) Peek(_ context.Context, name string, end store.End, k int) ([]json.RawMessage, error) {
	if !end.Valid() {
		return nil, store.ErrInvalidEnd
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rb, ok := s.buffers[name]
	if !ok {
		return nil, store.ErrNotFound
	}

	peek := rb.PeekFrontK
	if end == store.Back {
		peek = rb.PeekBackK
	}
	items, err := peek(k)
	if err != nil {
		return nil, fmt.Errorf("peek %d items from %s: %w", k, end, err)
	}

	return items, nil
}

// At returns the item at index of the named buffer, counting from the back for negative indices.
// The bool result is false when index is out of range.
func (s *BufferStore) At(_ context.Context, name string, index int) (json.RawMessage, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rb, ok := s.buffers[name]
	if !ok {
		return nil, false, store.ErrNotFound
	}

	item, ok := rb.At(index)
	return item, ok, nil
}

// Items returns every item of the named buffer, front to back or back to front when reversed.
func (s *BufferStore) Items(_ context.Context, name string, reversed bool) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rb, ok := s.buffers[name]
	if !ok {
		return nil, store.ErrNotFound
	}

	items := make([]json.RawMessage, 0, rb.Len())
	values := rb.Values()
	if reversed {
		values = rb.ValuesReversed()
	}
	for item := range values {
		items = append(items, item)
	}
	return items, nil
}

func statsOf(name string, rb *ringbuffer.RingBuffer[json.RawMessage]) store.BufferStats {
	return store.BufferStats{
		Name:     name,
		Len:      rb.Len(),
		Capacity: rb.Cap(),
	}
}
