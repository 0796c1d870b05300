package backend

import "errors"

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend name constants.
const (
	// BackendClipper2 is the name of the Clipper2 native library backend.
	BackendClipper2 = "clipper2"
)

// Rect is the engine's CRectD layout. It is passed by reference.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Library is the native engine call surface.
//
// Packed arguments point at the first slot of a buffer in the packed wire
// format, or are nil for an absent optional argument. The pointers are only
// valid for the duration of the call and must not be retained.
//
// Every non-nil pointer returned by a Library, directly or through an
// output slot, is owned by the engine until it is passed to DisposeArray.
// DisposeArray must be called at most once per pointer and never with nil.
type Library interface {
	// Name returns the backend identifier (e.g., "clipper2").
	Name() string

	// Init binds the native entry points. It must succeed before any other
	// call except Name.
	Init() error

	// Close releases backend resources. The process-wide native library
	// handle itself stays loaded until exit.
	Close()

	// Version returns the engine's version identifier.
	Version() string

	// DisposeArray releases an engine-allocated packed array.
	DisposeArray(p *float64)

	// BooleanOp runs a boolean operation. A zero status means success;
	// on failure neither output slot may be decoded.
	BooleanOp(clipType, fillRule uint8, subjects, subjectsOpen, clips *float64,
		solution, solutionOpen **float64,
		precision int, preserveCollinear, reverseSolution bool) int

	// InflatePaths offsets a packed collection. A nil result is an empty
	// result, not an error.
	InflatePaths(paths *float64, delta float64, joinType, endType uint8,
		precision int, miterLimit, arcTolerance float64, reverseSolution bool) *float64

	// InflatePath offsets a single packed path record.
	InflatePath(path *float64, delta float64, joinType, endType uint8,
		precision int, miterLimit, arcTolerance float64, reverseSolution bool) *float64

	// RectClip clips closed paths to rect.
	RectClip(rect *Rect, paths *float64, precision int) *float64

	// RectClipLines clips open paths to rect.
	RectClipLines(rect *Rect, paths *float64, precision int) *float64
}
