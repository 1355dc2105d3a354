package ringbuffer

import (
	"errors"
	"fmt"
)

var (
	// ErrFull is returned when an item is pushed onto a buffer that has no free slot left.
	// A zero capacity buffer is always full.
	ErrFull = errors.New("ring buffer is full")
	// ErrEmpty is returned when peeking or popping a single item from an empty buffer.
	ErrEmpty = errors.New("ring buffer is empty")
	// ErrInsufficientItems is returned when k items are peeked or popped but the buffer holds fewer than k.
	ErrInsufficientItems = errors.New("ring buffer has insufficient items")
)

func insufficientItems(requested, available int) error {
	return fmt.Errorf("%w: requested %d, available %d", ErrInsufficientItems, requested, available)
}
