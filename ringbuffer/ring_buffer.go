// Package ringbuffer provides a fixed capacity circular buffer with double-ended queue semantics.
//
// A RingBuffer never grows: pushes onto a full buffer fail with ErrFull instead of overwriting.
// It is not safe for concurrent use; callers sharing a buffer across goroutines must guard it
// themselves. Iterating while the buffer is being mutated gives no ordering guarantee.
package ringbuffer

import (
	"fmt"
	"iter"
	"strings"
)

type RingBuffer[T any] struct {
	buf   []T
	front int
	back  int
	size  int
}

// New creates an empty RingBuffer with the given capacity.
// A zero capacity is allowed and yields a buffer that is both full and empty.
// It panics if capacity is negative.
func New[T any](capacity int) *RingBuffer[T] {
	if capacity < 0 {
		panic("ringbuffer: negative capacity")
	}
	return &RingBuffer[T]{
		buf: make([]T, capacity),
	}
}

// From creates a RingBuffer with the given capacity and pushes items to its back in order.
// It returns ErrFull if there are more items than capacity; the partially filled buffer is
// returned alongside the error.
func From[T any](capacity int, items ...T) (*RingBuffer[T], error) {
	r := New[T](capacity)
	return r, r.PushAll(items...)
}

// FromSeq is like From but takes the initial items from a sequence.
func FromSeq[T any](capacity int, seq iter.Seq[T]) (*RingBuffer[T], error) {
	r := New[T](capacity)
	return r, r.PushSeq(seq)
}

// Len returns the number of elements currently in the buffer.
func (r *RingBuffer[T]) Len() int {
	return r.size
}

// Cap returns the fixed capacity of the buffer.
func (r *RingBuffer[T]) Cap() int {
	return len(r.buf)
}

// IsFull returns true if no more items can be pushed.
func (r *RingBuffer[T]) IsFull() bool {
	return r.size == len(r.buf)
}

// IsEmpty returns true if the buffer holds no items.
func (r *RingBuffer[T]) IsEmpty() bool {
	return r.size == 0
}

// At returns the item at the given logical index. Non-negative indices count from the front,
// negative ones from the back, so -1 is the last item. The second return value is false when
// index is outside [-Len(), Len()).
func (r *RingBuffer[T]) At(index int) (T, bool) {
	var zero T
	if index < -r.size || index >= r.size {
		return zero, false
	}
	if index < 0 {
		return r.buf[r.wrap(r.back+index)], true
	}
	return r.buf[r.wrap(r.front+index)], true
}

// Push adds the item to the back of the buffer. It returns ErrFull if the buffer is full.
func (r *RingBuffer[T]) Push(item T) error {
	if r.size == len(r.buf) {
		return ErrFull
	}

	r.buf[r.back] = item
	r.back = r.wrap(r.back + 1)
	r.size++
	return nil
}

// PushBack is an alias of Push.
func (r *RingBuffer[T]) PushBack(item T) error {
	return r.Push(item)
}

// PushFront adds the item to the front of the buffer. It returns ErrFull if the buffer is full.
func (r *RingBuffer[T]) PushFront(item T) error {
	if r.size == len(r.buf) {
		return ErrFull
	}

	r.front = r.wrap(r.front - 1)
	r.buf[r.front] = item
	r.size++
	return nil
}

// PushAll pushes each item to the back in order. It stops at the first ErrFull, leaving the
// items pushed so far in place. Check free space beforehand if all-or-nothing is needed.
func (r *RingBuffer[T]) PushAll(items ...T) error {
	for _, item := range items {
		if err := r.Push(item); err != nil {
			return err
		}
	}
	return nil
}

// PushAllBack is an alias of PushAll.
func (r *RingBuffer[T]) PushAllBack(items ...T) error {
	return r.PushAll(items...)
}

// PushAllFront pushes each item to the front one at a time, so the items end up in reverse
// order: PushAllFront(a, b, c) on an empty buffer leaves c, b, a. Like PushAll it stops at the
// first ErrFull without undoing earlier pushes.
func (r *RingBuffer[T]) PushAllFront(items ...T) error {
	for _, item := range items {
		if err := r.PushFront(item); err != nil {
			return err
		}
	}
	return nil
}

// PushSeq pushes every item yielded by seq to the back, stopping at the first ErrFull.
func (r *RingBuffer[T]) PushSeq(seq iter.Seq[T]) error {
	for item := range seq {
		if err := r.Push(item); err != nil {
			return err
		}
	}
	return nil
}

// Peek returns the front item without removing it, or ErrEmpty.
func (r *RingBuffer[T]) Peek() (T, error) {
	var zero T
	if r.size == 0 {
		return zero, ErrEmpty
	}
	return r.buf[r.front], nil
}

// PeekFront is an alias of Peek.
func (r *RingBuffer[T]) PeekFront() (T, error) {
	return r.Peek()
}

// PeekBack returns the back item without removing it, or ErrEmpty.
func (r *RingBuffer[T]) PeekBack() (T, error) {
	var zero T
	if r.size == 0 {
		return zero, ErrEmpty
	}
	return r.buf[r.wrap(r.back-1)], nil
}

// PeekK returns the first k items in front-to-back order without removing them.
// It returns ErrInsufficientItems if the buffer holds fewer than k items.
func (r *RingBuffer[T]) PeekK(k int) ([]T, error) {
	if r.size < k {
		return nil, insufficientItems(k, r.size)
	}

	out := make([]T, 0, max(0, k))
	for i := 0; i < k; i++ {
		out = append(out, r.buf[r.wrap(r.front+i)])
	}
	return out, nil
}

// PeekFrontK is an alias of PeekK.
func (r *RingBuffer[T]) PeekFrontK(k int) ([]T, error) {
	return r.PeekK(k)
}

// PeekBackK returns the last k items in back-to-front order, newest first, without removing them.
// It returns ErrInsufficientItems if the buffer holds fewer than k items.
func (r *RingBuffer[T]) PeekBackK(k int) ([]T, error) {
	if r.size < k {
		return nil, insufficientItems(k, r.size)
	}

	out := make([]T, 0, max(0, k))
	for i := 1; i <= k; i++ {
		out = append(out, r.buf[r.wrap(r.back-i)])
	}
	return out, nil
}

// Pop removes and returns the front item, or ErrEmpty.
func (r *RingBuffer[T]) Pop() (T, error) {
	var zero T
	if r.size == 0 {
		return zero, ErrEmpty
	}

	item := r.buf[r.front]
	r.buf[r.front] = zero
	r.front = r.wrap(r.front + 1)
	r.size--
	return item, nil
}

// PopFront is an alias of Pop.
func (r *RingBuffer[T]) PopFront() (T, error) {
	return r.Pop()
}

// PopBack removes and returns the back item, or ErrEmpty.
func (r *RingBuffer[T]) PopBack() (T, error) {
	var zero T
	if r.size == 0 {
		return zero, ErrEmpty
	}

	r.back = r.wrap(r.back - 1)
	item := r.buf[r.back]
	r.buf[r.back] = zero
	r.size--
	return item, nil
}

// DropBack discards the back item (if any) without returning it.
func (r *RingBuffer[T]) DropBack() {
	_, _ = r.PopBack()
}

// PopK removes and returns the first k items in front-to-back order.
// It returns ErrInsufficientItems, leaving the buffer untouched, if it holds fewer than k items.
func (r *RingBuffer[T]) PopK(k int) ([]T, error) {
	if r.size < k {
		return nil, insufficientItems(k, r.size)
	}

	out := make([]T, 0, max(0, k))
	for i := 0; i < k; i++ {
		item, _ := r.Pop()
		out = append(out, item)
	}
	return out, nil
}

// PopFrontK is an alias of PopK.
func (r *RingBuffer[T]) PopFrontK(k int) ([]T, error) {
	return r.PopK(k)
}

// PopBackK removes and returns the last k items in back-to-front order, newest first.
// It returns ErrInsufficientItems, leaving the buffer untouched, if it holds fewer than k items.
func (r *RingBuffer[T]) PopBackK(k int) ([]T, error) {
	if r.size < k {
		return nil, insufficientItems(k, r.size)
	}

	out := make([]T, 0, max(0, k))
	for i := 0; i < k; i++ {
		item, _ := r.PopBack()
		out = append(out, item)
	}
	return out, nil
}

// All returns an iterator over logical index and item pairs, front to back.
// The iterator reads the live buffer on every step and yields at most Len() items as of the
// start of the iteration.
func (r *RingBuffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := r.size
		for i := 0; i < n; i++ {
			if !yield(i, r.buf[r.wrap(r.front+i)]) {
				return
			}
		}
	}
}

// Values returns an iterator over the items, front to back.
func (r *RingBuffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range r.All() {
			if !yield(item) {
				return
			}
		}
	}
}

// Backward returns an iterator over logical index and item pairs, back to front.
func (r *RingBuffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := r.size
		for i := n - 1; i >= 0; i-- {
			if !yield(i, r.buf[r.wrap(r.front+i)]) {
				return
			}
		}
	}
}

// ValuesReversed returns an iterator over the items, back to front.
func (r *RingBuffer[T]) ValuesReversed() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range r.Backward() {
			if !yield(item) {
				return
			}
		}
	}
}

// String renders the items front to back as a bracketed, comma separated list, e.g. [1,2,3].
func (r *RingBuffer[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range r.All() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(fmt.Sprint(item))
	}
	sb.WriteByte(']')
	return sb.String()
}

// wrap maps a position onto the backing slice, wrapping negative positions to the end.
// It must not be called on a zero capacity buffer.
func (r *RingBuffer[T]) wrap(pos int) int {
	n := len(r.buf)
	return ((pos % n) + n) % n
}
