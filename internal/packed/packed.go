// Package packed implements the flat double-array format exchanged with the
// native clipping engine:
//
//	[total_len, path_count, (n0, 0, x, y, x, y, ...), (n1, 0, ...), ...]
//
// Every cell is a float64, including counts. total_len counts the header and
// all records in float64 slots. A single path on its own is a bare record
// [n, 0, x, y, ...].
package packed

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/gogpu/polyclip/internal/flatbuf"
)

// Layout constants, in float64 slots.
const (
	HeaderLen       = 2 // total_len, path_count
	RecordHeaderLen = 2 // point_count, reserved
)

// ErrMalformed is wrapped by every decoding error.
var ErrMalformed = errors.New("packed: malformed buffer")

// Reset writes the empty collection header into buf.
func Reset(buf *flatbuf.Buffer) {
	buf.Reset()
	buf.Append(HeaderLen, 0)
}

// AppendRecord appends one path record built from interleaved coordinates
// and updates the collection header. It returns the record's offset.
// len(xy) must be even.
func AppendRecord(buf *flatbuf.Buffer, xy []float64) int {
	off := buf.Len()
	buf.Ensure(RecordHeaderLen + len(xy))
	buf.Append(float64(len(xy)/2), 0)
	buf.Append(xy...)
	buf.Set(0, float64(buf.Len()))
	buf.Set(1, buf.At(1)+1)
	return off
}

// WriteRecord resets buf to a bare single-path record.
func WriteRecord(buf *flatbuf.Buffer, xy []float64) {
	buf.Reset()
	buf.Ensure(RecordHeaderLen + len(xy))
	buf.Append(float64(len(xy)/2), 0)
	buf.Append(xy...)
}

// count converts a count cell to an int, rejecting negative, fractional and
// oversized values.
func count(v float64, limit int) (int, bool) {
	if v < 0 || v != math.Trunc(v) || v > float64(limit) {
		return 0, false
	}
	return int(v), true
}

// View returns the packed region starting at p, sized by its own total_len
// cell. p must point at engine memory laid out in this format.
func View(p *float64) ([]float64, error) {
	if p == nil {
		return nil, nil
	}
	header := unsafe.Slice(p, HeaderLen)
	total, ok := count(header[0], math.MaxInt32)
	if !ok || total < HeaderLen {
		return nil, fmt.Errorf("%w: total length %v", ErrMalformed, header[0])
	}
	return unsafe.Slice(p, total), nil
}

// ViewRecord returns the interleaved coordinates of a bare path record
// starting at p.
func ViewRecord(p *float64) ([]float64, error) {
	if p == nil {
		return nil, nil
	}
	header := unsafe.Slice(p, RecordHeaderLen)
	n, ok := count(header[0], math.MaxInt32)
	if !ok {
		return nil, fmt.Errorf("%w: point count %v", ErrMalformed, header[0])
	}
	return unsafe.Slice(p, RecordHeaderLen+2*n)[RecordHeaderLen:], nil
}

// Reader walks the records of a packed collection in order.
//
//	r, err := packed.NewReader(data)
//	for r.Next() {
//	    xy := r.Coords()
//	}
//	err = r.Err()
type Reader struct {
	data  []float64
	count int

	pos  int
	read int
	cur  []float64
	err  error
}

// NewReader validates the collection header of data.
func NewReader(data []float64) (*Reader, error) {
	if len(data) < HeaderLen {
		return nil, fmt.Errorf("%w: %d slots, need header", ErrMalformed, len(data))
	}
	total, ok := count(data[0], len(data))
	if !ok || total < HeaderLen {
		return nil, fmt.Errorf("%w: total length %v exceeds %d slots", ErrMalformed, data[0], len(data))
	}
	n, ok := count(data[1], (total-HeaderLen)/RecordHeaderLen)
	if !ok {
		return nil, fmt.Errorf("%w: path count %v", ErrMalformed, data[1])
	}
	return &Reader{data: data[:total], count: n, pos: HeaderLen}, nil
}

// Count returns the number of records declared by the header.
func (r *Reader) Count() int {
	return r.count
}

// Len returns the declared total length in float64 slots.
func (r *Reader) Len() int {
	return len(r.data)
}

// Next advances to the next record. It returns false when all declared
// records are consumed or a record is malformed; check Err afterwards.
func (r *Reader) Next() bool {
	if r.err != nil || r.read >= r.count {
		return false
	}
	if r.pos+RecordHeaderLen > len(r.data) {
		r.err = fmt.Errorf("%w: record %d header past end", ErrMalformed, r.read)
		return false
	}
	n, ok := count(r.data[r.pos], (len(r.data)-r.pos-RecordHeaderLen)/2)
	if !ok {
		r.err = fmt.Errorf("%w: record %d point count %v", ErrMalformed, r.read, r.data[r.pos])
		return false
	}
	start := r.pos + RecordHeaderLen
	r.cur = r.data[start : start+2*n]
	r.pos = start + 2*n
	r.read++
	return true
}

// Coords returns the interleaved coordinates of the current record.
// The slice aliases the reader's input.
func (r *Reader) Coords() []float64 {
	return r.cur
}

// Err returns the first decoding error, if any.
func (r *Reader) Err() error {
	return r.err
}
