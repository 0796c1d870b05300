// Package polyclip provides polygon clipping and offsetting for Go by
// driving a native geometry engine.
//
// # Overview
//
// polyclip converts Go paths into the packed double-array format the engine
// expects, calls the engine, and converts engine-allocated results back into
// Go values, releasing the native memory exactly once. The clipping
// algorithms themselves live in the native library; this package owns the
// data model and the ownership rules at the call boundary.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/polyclip"
//	    _ "github.com/gogpu/polyclip/backend/clipper2"
//	)
//
//	eng, err := polyclip.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	subject := polyclip.PathsOf(polyclip.MustPath(100, 50, 10, 79, 65, 2, 65, 98, 10, 21))
//	clip := polyclip.PathsOf(polyclip.MustPath(98, 63, 4, 68, 77, 8, 52, 100, 19, 12))
//
//	closed, _, err := eng.Intersect(subject, clip, polyclip.WithFillRule(polyclip.NonZero))
//
// # Data Model
//
//   - Point, Rect: small immutable values
//   - Path: one contour, stored as interleaved x, y values
//   - Paths: a collection stored directly in the engine's packed format
//     [total_len, path_count, (n, 0, x, y, ...), ...], so it crosses the
//     boundary without re-serialization
//
// Indices are 0-based. Out-of-range access panics with *IndexError.
//
// # Operations
//
//   - BooleanOp, Intersect, Union, Difference, Xor
//   - InflatePath, InflatePaths
//   - RectClip, RectClipLines
//
// Defaults for every operation are listed in DefaultOptions and can be
// overridden with functional options.
//
// # Memory Ownership
//
// Input collections are lent to the engine for one call only. Each pointer
// the engine returns is decoded into a new Paths and then released through
// the backend; a nil pointer is an empty result and is not released. When a
// boolean operation reports a failure status, nothing is decoded.
//
// # Concurrency
//
// Engine calls are synchronous and cannot be cancelled. Path and Paths are
// not safe for concurrent mutation; callers serialize access.
package polyclip

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
