package memdb

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/ringbuffer/internal/custompromauto"
)

var (
	storedBuffers = custompromauto.Auto().NewGauge(prometheus.GaugeOpts{
		Name: "ringbuffer_store_buffers",
		Help: "Number of named buffers currently held in the store",
	})

	rejectedPushes = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "ringbuffer_store_rejected_pushes_total",
		Help: "Total number of push requests rejected because the buffer lacked free slots",
	})
)
