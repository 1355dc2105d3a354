package stream

import (
	"context"

	"github.com/hedisam/pipeline/chans"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/ringbuffer/ringbuffer"
)

// Window slides a window of size items over in. Once the window is full, every received item
// evicts the oldest one and aggregate is called with the window contents, oldest first.
// The aggregate results are sent on the returned channel, which is closed when in is closed or
// ctx is done. A size less than 1 is treated as 1.
//
// The slice passed to aggregate is freshly allocated on every call and may be retained.
func Window[T, R any](ctx context.Context, logger *logrus.Logger, in <-chan T, size int, aggregate func(window []T) R) <-chan R {
	out := make(chan R)

	go func() {
		defer close(out)

		rb := ringbuffer.New[T](max(1, size))
		for item := range chans.ReceiveOrDoneSeq(ctx, in) {
			if rb.IsFull() {
				_, _ = rb.Pop()
				windowEvictions.Inc()
			}
			_ = rb.Push(item)
			if !rb.IsFull() {
				continue
			}

			window, err := rb.PeekK(rb.Len())
			if err != nil {
				logger.WithError(err).Error("Failed to read window contents")
				continue
			}
			if !chans.SendOrDone(ctx, out, aggregate(window)) {
				return
			}
		}
		logger.WithField("size", rb.Cap()).Debug("Window input drained")
	}()

	return out
}
