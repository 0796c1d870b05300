package polyclip

import "github.com/gogpu/polyclip/internal/flatbuf"

// Path is an ordered sequence of points describing one contour of a polygon
// or polyline. Coordinates are stored interleaved (x, y) in a growable
// buffer, so Len is always half the buffer length.
//
// A Path owns only Go memory. It is not safe for concurrent mutation.
type Path struct {
	buf *flatbuf.Buffer
}

// NewPath creates an empty path with room for capacity points.
func NewPath(capacity int) *Path {
	return &Path{buf: flatbuf.New(2 * capacity)}
}

// PathOf creates a path from points.
func PathOf(points ...Point) *Path {
	p := NewPath(len(points))
	for _, pt := range points {
		p.Add(pt)
	}
	return p
}

// PathFromCoords creates a path from an alternating x, y coordinate list.
func PathFromCoords(coords []float64) (*Path, error) {
	if len(coords)%2 != 0 {
		return nil, ErrOddCoordinates
	}
	p := NewPath(len(coords) / 2)
	p.buf.Append(coords...)
	return p, nil
}

// MustPath is like PathFromCoords but panics on an odd coordinate count.
//
//	star := polyclip.MustPath(100, 50, 10, 79, 65, 2, 65, 98, 10, 21)
func MustPath(coords ...float64) *Path {
	p, err := PathFromCoords(coords)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of points.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return p.buf.Len() / 2
}

// Cap returns the number of points the path can hold without growing.
func (p *Path) Cap() int {
	if p == nil {
		return 0
	}
	return p.buf.Cap() / 2
}

// Add appends a point.
func (p *Path) Add(pt Point) {
	p.buf.Ensure(2)
	p.buf.Append(pt.X, pt.Y)
}

// AddXY appends the point (x, y).
func (p *Path) AddXY(x, y float64) {
	p.Add(Point{X: x, Y: y})
}

// Set replaces point i. It panics with *IndexError if i is out of range.
func (p *Path) Set(i int, pt Point) {
	checkIndex(i, p.Len())
	p.buf.Set(2*i, pt.X)
	p.buf.Set(2*i+1, pt.Y)
}

// At returns point i. It panics with *IndexError if i is out of range.
func (p *Path) At(i int) Point {
	checkIndex(i, p.Len())
	return Point{X: p.buf.At(2 * i), Y: p.buf.At(2*i + 1)}
}

// Clear removes all points, keeping the allocated storage.
func (p *Path) Clear() {
	p.buf.Reset()
}

// Points returns a copy of the path's points.
func (p *Path) Points() []Point {
	pts := make([]Point, p.Len())
	for i := range pts {
		pts[i] = p.At(i)
	}
	return pts
}

// Bounds returns the bounding box of the path. An empty path has zero bounds.
func (p *Path) Bounds() Rect {
	if p.Len() == 0 {
		return Rect{}
	}
	return boundsOf(p.coords(), emptyBounds())
}

// coords returns the interleaved coordinates. The view is invalidated by the
// next Add.
func (p *Path) coords() []float64 {
	return p.buf.Slice()
}

func boundsOf(xy []float64, r Rect) Rect {
	for i := 0; i+1 < len(xy); i += 2 {
		r = r.unionPoint(xy[i], xy[i+1])
	}
	return r
}
