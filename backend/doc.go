// Package backend provides a pluggable abstraction over native clipping
// engines.
//
// A Library mirrors the C export surface of the engine call for call: packed
// double arrays go in as raw pointers, results come back as engine-owned
// pointers that must be released with DisposeArray. The polyclip package
// owns all encoding, decoding and release logic; a Library only moves
// pointers across the boundary.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The Clipper2 binding registers itself on import:
//
//	import _ "github.com/gogpu/polyclip/backend/clipper2"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	// Get the default (best available) backend
//	lib := backend.Default()
//
//	// Or request a specific backend
//	lib := backend.Get(backend.BackendClipper2)
//
// Most callers never touch a Library directly and use polyclip.Default()
// instead, which initializes the default backend once per process.
//
// # Available Backends
//
// - "clipper2": the Clipper2 export library loaded at runtime (purego)
package backend
