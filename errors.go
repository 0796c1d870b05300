package polyclip

import (
	"errors"
	"strconv"

	"github.com/gogpu/polyclip/internal/packed"
)

// Sentinel errors for polyclip.
var (
	// ErrNilPaths is returned when a required geometry argument is nil.
	ErrNilPaths = errors.New("polyclip: nil paths")

	// ErrOddCoordinates is returned when a coordinate list has no partner
	// for its last value.
	ErrOddCoordinates = errors.New("polyclip: odd number of coordinates")

	// ErrMalformed is wrapped when a packed buffer cannot be decoded.
	ErrMalformed = packed.ErrMalformed
)

// OpError is returned when the engine reports a nonzero status code.
// No result is decoded when an OpError is returned.
type OpError struct {
	Op     string
	Status int
}

func (e *OpError) Error() string {
	return "polyclip: " + e.Op + " failed with status " + strconv.Itoa(e.Status)
}

// ConfigError represents an option validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "polyclip: invalid option " + e.Field + ": " + e.Reason
}

// IndexError is the panic value for out-of-range access to a Path or Paths.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return "polyclip: index " + strconv.Itoa(e.Index) + " out of range [0:" + strconv.Itoa(e.Len) + "]"
}

func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(&IndexError{Index: i, Len: n})
	}
}
