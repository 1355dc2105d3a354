package memdb

const (
	// DefaultMemSize the default map size used for storing buffers.
	DefaultMemSize = 100
	// DefaultMaxCapacity is the largest buffer capacity accepted unless overridden.
	DefaultMaxCapacity = 1 << 16
)

type config struct {
	memSize     int
	maxCapacity int
}

type Option func(*config)

// WithMemSize allows us to specify a custom mem size for store maps
func WithMemSize(memSize int) Option {
	return func(c *config) {
		if memSize >= 0 {
			c.memSize = memSize
		}
	}
}

// WithMaxCapacity caps the capacity a single buffer can be created with.
func WithMaxCapacity(maxCapacity int) Option {
	return func(c *config) {
		if maxCapacity >= 0 {
			c.maxCapacity = maxCapacity
		}
	}
}
