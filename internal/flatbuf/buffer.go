// Package flatbuf provides the growable float64 storage shared by paths,
// path collections and the packed wire format.
package flatbuf

import (
	"errors"
	"math"
)

// ErrTooLarge is the panic value used when a buffer cannot grow any further.
var ErrTooLarge = errors.New("flatbuf: buffer too large")

// maxCap is the largest capacity a Buffer will double to.
const maxCap = math.MaxInt / 16

// Buffer is a contiguous array of float64 values with a logical length and
// amortized-doubling growth.
//
// Growth always allocates fresh storage and copies the logical region, so a
// view returned by Slice or Ptr before a growth is never written to again.
// There is no shrink operation.
type Buffer struct {
	data []float64 // len(data) is the capacity
	n    int
}

// New creates an empty buffer with the given capacity hint.
// A hint of zero or less is treated as 1.
func New(hint int) *Buffer {
	if hint < 1 {
		hint = 1
	}
	return &Buffer{data: make([]float64, hint)}
}

// Len returns the logical length in float64 slots.
func (b *Buffer) Len() int {
	return b.n
}

// Cap returns the number of allocated slots.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Ensure guarantees room for at least extra slots beyond Len.
// It panics with ErrTooLarge if the required capacity is not representable.
func (b *Buffer) Ensure(extra int) {
	if extra <= 0 {
		return
	}
	if extra > maxCap-b.n {
		panic(ErrTooLarge)
	}
	need := b.n + extra
	if need <= len(b.data) {
		return
	}

	c := len(b.data)
	if c < 1 {
		c = 1
	}
	for c < need {
		c *= 2
	}

	grown := make([]float64, c)
	copy(grown, b.data[:b.n])
	b.data = grown
}

// Append writes values after the logical end, growing as needed.
func (b *Buffer) Append(v ...float64) {
	b.Ensure(len(v))
	b.n += copy(b.data[b.n:], v)
}

// At returns slot i of the logical region.
func (b *Buffer) At(i int) float64 {
	if i < 0 || i >= b.n {
		panic("flatbuf: index out of range")
	}
	return b.data[i]
}

// Set overwrites slot i of the logical region.
func (b *Buffer) Set(i int, v float64) {
	if i < 0 || i >= b.n {
		panic("flatbuf: index out of range")
	}
	b.data[i] = v
}

// Truncate sets the logical length to n, keeping the storage.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > b.n {
		panic("flatbuf: truncate out of range")
	}
	b.n = n
}

// Reset empties the buffer, keeping the storage.
func (b *Buffer) Reset() {
	b.n = 0
}

// Slice returns the logical region. The view is valid until the next call
// that grows the buffer.
func (b *Buffer) Slice() []float64 {
	return b.data[:b.n]
}

// Ptr returns the address of slot 0, or nil when the buffer is empty.
// The pointer must not be retained past the call it is borrowed for.
func (b *Buffer) Ptr() *float64 {
	if b.n == 0 {
		return nil
	}
	return &b.data[0]
}
