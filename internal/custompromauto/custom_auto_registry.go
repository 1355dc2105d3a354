// Package custompromauto keeps the service metrics on a dedicated registry so that /metrics does
// not expose the default go and process collectors.
package custompromauto

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registry = prometheus.NewRegistry()
	auto     = promauto.With(registry)
)

// Auto returns the factory every package-level collector is registered through.
func Auto() promauto.Factory {
	return auto
}

// Registry returns the registry backing Auto, for serving with promhttp.HandlerFor.
func Registry() *prometheus.Registry {
	return registry
}
