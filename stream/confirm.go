// Package stream holds channel stages that keep a bounded window of recent items in a ring buffer.
package stream

import (
	"context"

	"github.com/hedisam/pipeline/chans"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/ringbuffer/ringbuffer"
)

// Confirm holds back the newest depth items received from in and forwards an item only after depth
// newer items have been accepted behind it.
//
// follows reports whether next continues the sequence ending at prev. When a received item does not
// follow the newest held item, held items are dropped from the back until it does or nothing is
// held anymore, then the item is accepted. Items still held when in is closed are not emitted.
// A depth less than 1 is treated as 1.
func Confirm[T any](ctx context.Context, logger *logrus.Logger, in <-chan T, depth int, follows func(prev, next T) bool) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		rb := ringbuffer.New[T](max(1, depth))
		for item := range chans.ReceiveOrDoneSeq(ctx, in) {
			for !rb.IsEmpty() {
				newest, _ := rb.PeekBack()
				if follows(newest, item) {
					break
				}
				// the newest held item has been superseded; keep unwinding until the new item fits
				logger.WithField("held", rb.Len()).Warn("Received item does not follow the newest held item, dropping it")
				rb.DropBack()
				droppedItems.Inc()
			}

			if rb.IsFull() {
				oldest, _ := rb.Pop()
				if !chans.SendOrDone(ctx, out, oldest) {
					return
				}
				confirmedItems.Inc()
			}

			_ = rb.Push(item)
		}
	}()

	return out
}
