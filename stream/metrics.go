package stream

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/ringbuffer/internal/custompromauto"
)

var confirmedItems = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
	Name: "ringbuffer_stream_confirmed_total",
	Help: "Number of items emitted by confirmation windows",
})

var droppedItems = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
	Name: "ringbuffer_stream_dropped_total",
	Help: "Number of held items dropped from confirmation windows because a newer item did not follow them",
})

var windowEvictions = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
	Name: "ringbuffer_stream_window_evictions_total",
	Help: "Number of items evicted from sliding windows",
})
