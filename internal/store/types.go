package store

import "errors"

var (
	// ErrNotFound is returned when a named buffer does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when creating a buffer under a name that is taken.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCapacity is returned when a buffer is requested with a negative capacity or one above the store limit.
	ErrInvalidCapacity = errors.New("invalid capacity")
)

// BufferStats describes the occupancy of a named buffer.
type BufferStats struct {
	Name     string `json:"name"`
	Len      int    `json:"len"`
	Capacity int    `json:"capacity"`
}

// End selects which end of a buffer an operation applies to.
type End string

const (
	Front End = "front"
	Back  End = "back"
)

// ErrInvalidEnd is returned for an End other than Front or Back.
var ErrInvalidEnd = errors.New("end must be either 'front' or 'back'")

// Valid reports whether e is Front or Back.
func (e End) Valid() bool {
	return e == Front || e == Back
}
