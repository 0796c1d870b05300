package polyclip

import (
	"github.com/gogpu/polyclip/internal/flatbuf"
	"github.com/gogpu/polyclip/internal/packed"
)

// Paths is an ordered collection of paths, the unit exchanged with the
// engine for multi-contour operations.
//
// The collection is stored directly in the engine's packed format, so it can
// be handed to a native call without re-serialization. An index of record
// offsets gives O(1) access to individual paths. Adding a Path copies its
// current points; later changes to that Path are not reflected.
//
// A Paths is not safe for concurrent mutation.
type Paths struct {
	buf     *flatbuf.Buffer
	offsets []int // record header offsets into buf
}

// NewPaths creates an empty collection sized for about pathsHint paths of
// pointsHint points each.
func NewPaths(pathsHint, pointsHint int) *Paths {
	pathsHint = max(pathsHint, 0)
	pointsHint = max(pointsHint, 0)
	return newPathsSized(pathsHint, packed.HeaderLen+pathsHint*(packed.RecordHeaderLen+2*pointsHint))
}

// newPathsSized creates an empty collection with room for slots packed
// float64 values.
func newPathsSized(paths, slots int) *Paths {
	ps := &Paths{
		buf:     flatbuf.New(slots),
		offsets: make([]int, 0, paths),
	}
	packed.Reset(ps.buf)
	return ps
}

// PathsOf creates a collection holding copies of paths.
func PathsOf(paths ...*Path) *Paths {
	ps := NewPaths(len(paths), 0)
	for _, p := range paths {
		ps.Add(p)
	}
	return ps
}

// Len returns the number of paths.
func (ps *Paths) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.offsets)
}

// Add appends a copy of p's current points. A nil path is added as an empty
// path.
func (ps *Paths) Add(p *Path) {
	var xy []float64
	if p != nil {
		xy = p.coords()
	}
	ps.addCoords(xy)
}

func (ps *Paths) addCoords(xy []float64) {
	ps.offsets = append(ps.offsets, packed.AppendRecord(ps.buf, xy))
}

// At returns a copy of path i. It panics with *IndexError if i is out of
// range.
func (ps *Paths) At(i int) *Path {
	xy := ps.record(i)
	p := NewPath(len(xy) / 2)
	p.buf.Append(xy...)
	return p
}

// PathLen returns the number of points in path i.
func (ps *Paths) PathLen(i int) int {
	return len(ps.record(i)) / 2
}

// Point returns point j of path i without copying the path.
func (ps *Paths) Point(i, j int) Point {
	xy := ps.record(i)
	checkIndex(j, len(xy)/2)
	return Point{X: xy[2*j], Y: xy[2*j+1]}
}

// All returns copies of every path in order.
func (ps *Paths) All() []*Path {
	out := make([]*Path, ps.Len())
	for i := range out {
		out[i] = ps.At(i)
	}
	return out
}

// TotalPoints returns the number of points across all paths.
func (ps *Paths) TotalPoints() int {
	if ps == nil {
		return 0
	}
	n := ps.buf.Len() - packed.HeaderLen - packed.RecordHeaderLen*len(ps.offsets)
	return n / 2
}

// Bounds returns the bounding box of all points. An empty collection has
// zero bounds.
func (ps *Paths) Bounds() Rect {
	if ps.TotalPoints() == 0 {
		return Rect{}
	}
	r := emptyBounds()
	for i := range ps.offsets {
		r = boundsOf(ps.record(i), r)
	}
	return r
}

// Clear removes all paths, keeping the allocated storage.
func (ps *Paths) Clear() {
	ps.offsets = ps.offsets[:0]
	packed.Reset(ps.buf)
}

// Packed returns a copy of the collection in the engine wire format.
// A nil collection encodes as an empty one.
func (ps *Paths) Packed() []float64 {
	if ps == nil {
		return []float64{packed.HeaderLen, 0}
	}
	src := ps.buf.Slice()
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// record returns the coordinates of path i as a view into the buffer.
func (ps *Paths) record(i int) []float64 {
	checkIndex(i, ps.Len())
	off := ps.offsets[i]
	n := int(ps.buf.At(off))
	start := off + packed.RecordHeaderLen
	return ps.buf.Slice()[start : start+2*n]
}

// ptr borrows the packed buffer for a single native call.
// A nil collection maps to the engine's null pointer.
func (ps *Paths) ptr() *float64 {
	if ps == nil {
		return nil
	}
	return ps.buf.Ptr()
}
