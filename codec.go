package polyclip

import (
	"github.com/gogpu/polyclip/backend"
	"github.com/gogpu/polyclip/internal/packed"
)

// DecodePaths builds a collection from data in the engine wire format.
// Slots past the header's total length are ignored.
//
// Paths.Packed and DecodePaths are inverses:
//
//	same, err := polyclip.DecodePaths(ps.Packed())
func DecodePaths(data []float64) (*Paths, error) {
	r, err := packed.NewReader(data)
	if err != nil {
		return nil, err
	}
	ps := newPathsSized(r.Count(), r.Len())
	for r.Next() {
		ps.addCoords(r.Coords())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return ps, nil
}

// decodeNative copies an engine-allocated packed buffer into a new
// collection and releases it through lib.
//
// A nil pointer is a valid empty result and is never passed to
// DisposeArray. Any other pointer is released exactly once, whether or not
// decoding succeeds.
func decodeNative(lib backend.Library, p *float64) (ps *Paths, err error) {
	if p == nil {
		return NewPaths(0, 0), nil
	}
	defer lib.DisposeArray(p)

	data, err := packed.View(p)
	if err != nil {
		return nil, err
	}
	return DecodePaths(data)
}

// releaseNative disposes an engine pointer that will not be decoded.
func releaseNative(lib backend.Library, p *float64) {
	if p != nil {
		lib.DisposeArray(p)
	}
}
