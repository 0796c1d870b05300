// Package clipper2 binds the Clipper2 C export library as a polyclip
// backend.
//
// The shared library is loaded at runtime with purego, so no C toolchain is
// needed to build. It exports the double-precision entry points declared in
// Clipper2's clipper.export.h: Version, DisposeArrayD, BooleanOpD,
// InflatePathsD, InflatePathD, RectClipD and RectClipLinesD.
//
// # Registration
//
// The backend registers itself on import:
//
//	import _ "github.com/gogpu/polyclip/backend/clipper2"
//
// # Locating the Library
//
// The first successful Init loads the library once for the whole process.
// The search order is:
//
//  1. the path given to SetLibraryPath
//  2. the CLIPPER2_LIBRARY environment variable
//  3. the platform default names (libClipper2.so, libClipper2.dylib)
//     resolved by the system loader
//
// # Threading
//
// Each export call allocates its own engine state, so concurrent calls are
// safe as long as the paths passed in are not mutated during the call.
//
// # Testing
//
// The end-to-end tests in this package call the real library and skip when
// it cannot be loaded, so a plain go test on a machine without Clipper2
// checks only the search path logic. To exercise the native boundary, build
// Clipper2 as a shared library that exports the clipper.export.h entry
// points and point the tests at it:
//
//	CLIPPER2_LIBRARY=/path/to/libClipper2.so go test -v ./backend/clipper2/
//
// A run where every test in clipper2_test.go reports SKIP has not verified
// the native engine.
package clipper2
