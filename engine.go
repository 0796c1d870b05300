package polyclip

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/polyclip/backend"
	"github.com/gogpu/polyclip/internal/flatbuf"
	"github.com/gogpu/polyclip/internal/packed"
)

// Engine runs clipping and offsetting operations on a native backend.
//
// Every operation makes exactly one native call. Input collections are lent
// to the engine only for that call; every pointer the engine returns is
// decoded into a new Paths and released before the operation returns.
//
// Calls are synchronous and cannot be cancelled. An Engine adds no locking
// of its own: Paths passed to it must not be mutated concurrently.
type Engine struct {
	lib backend.Library
}

// process-wide engine built by Default.
var (
	defaultEngine atomic.Pointer[Engine]
	defaultMu     sync.Mutex
)

// NewEngine initializes lib and returns an engine using it.
func NewEngine(lib backend.Library) (*Engine, error) {
	if lib == nil {
		return nil, backend.ErrBackendNotAvailable
	}
	propagateLogger(lib, Logger())
	if err := lib.Init(); err != nil {
		return nil, fmt.Errorf("polyclip: init %s backend: %w", lib.Name(), err)
	}
	return &Engine{lib: lib}, nil
}

// Default returns the process-wide engine, initializing the best registered
// backend on first use. Later calls return the same engine. If
// initialization fails, the next call tries again.
//
// Register a backend by importing it:
//
//	import _ "github.com/gogpu/polyclip/backend/clipper2"
func Default() (*Engine, error) {
	if e := defaultEngine.Load(); e != nil {
		return e, nil
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if e := defaultEngine.Load(); e != nil {
		return e, nil
	}

	e, err := NewEngine(backend.Default())
	if err != nil {
		return nil, err
	}
	defaultEngine.Store(e)
	return e, nil
}

// Name returns the backend name.
func (e *Engine) Name() string {
	return e.lib.Name()
}

// Version returns the native engine's version identifier.
func (e *Engine) Version() string {
	return e.lib.Version()
}

// Close releases backend resources. Closing the engine returned by Default
// also drops it, so the next Default call builds a fresh engine.
func (e *Engine) Close() {
	defaultMu.Lock()
	defaultEngine.CompareAndSwap(e, nil)
	defaultMu.Unlock()
	e.lib.Close()
}

// BooleanOp applies ct to subjects under fill rule fr.
// Clip paths and open subjects are supplied with WithClips and
// WithOpenSubjects. It returns the closed and open solutions.
//
// A nonzero engine status is returned as *OpError and no solution is
// decoded.
func (e *Engine) BooleanOp(ct ClipType, fr FillRule, subjects *Paths, opts ...Option) (closed, open *Paths, err error) {
	o := buildOptions(opts)
	o.FillRule = fr
	return e.booleanOp(ct, subjects, o)
}

// Intersect returns the regions covered by both subjects and clips.
// The fill rule defaults to EvenOdd.
func (e *Engine) Intersect(subjects, clips *Paths, opts ...Option) (closed, open *Paths, err error) {
	return e.clip(ClipIntersection, subjects, clips, opts)
}

// Union returns the regions covered by subjects or clips.
func (e *Engine) Union(subjects, clips *Paths, opts ...Option) (closed, open *Paths, err error) {
	return e.clip(ClipUnion, subjects, clips, opts)
}

// Difference returns the regions of subjects not covered by clips.
func (e *Engine) Difference(subjects, clips *Paths, opts ...Option) (closed, open *Paths, err error) {
	return e.clip(ClipDifference, subjects, clips, opts)
}

// Xor returns the regions covered by exactly one of subjects and clips.
func (e *Engine) Xor(subjects, clips *Paths, opts ...Option) (closed, open *Paths, err error) {
	return e.clip(ClipXor, subjects, clips, opts)
}

func (e *Engine) clip(ct ClipType, subjects, clips *Paths, opts []Option) (closed, open *Paths, err error) {
	o := buildOptions(opts)
	if clips != nil {
		o.Clips = clips
	}
	return e.booleanOp(ct, subjects, o)
}

func (e *Engine) booleanOp(ct ClipType, subjects *Paths, o Options) (closed, open *Paths, err error) {
	if subjects == nil {
		return nil, nil, ErrNilPaths
	}
	if err := o.validate(); err != nil {
		return nil, nil, err
	}

	var solution, solutionOpen *float64
	status := e.lib.BooleanOp(uint8(ct), uint8(o.FillRule),
		subjects.ptr(), o.OpenSubjects.ptr(), o.Clips.ptr(),
		&solution, &solutionOpen,
		o.Precision, o.PreserveCollinear, o.ReverseSolution)

	log := Logger()
	if status != 0 {
		log.Warn("polyclip: boolean operation failed",
			"op", ct.String(), "status", status)
		if solution != nil || solutionOpen != nil {
			log.Warn("polyclip: releasing undecoded outputs", "op", ct.String())
		}
		releaseNative(e.lib, solution)
		releaseNative(e.lib, solutionOpen)
		return nil, nil, &OpError{Op: ct.String(), Status: status}
	}

	// Each output is decoded and released on its own.
	closed, errClosed := decodeNative(e.lib, solution)
	open, errOpen := decodeNative(e.lib, solutionOpen)
	if err := errors.Join(errClosed, errOpen); err != nil {
		return nil, nil, fmt.Errorf("polyclip: %s result: %w", ct, err)
	}

	log.Debug("polyclip: boolean operation",
		"op", ct.String(),
		"fill", o.FillRule.String(),
		"subjects", subjects.Len(),
		"clips", o.Clips.Len(),
		"closed", closed.Len(),
		"open", open.Len())
	return closed, open, nil
}

// InflatePaths offsets every path by delta. Positive delta grows polygons,
// negative delta shrinks them. Join and end styles default to JoinMiter
// and EndPolygon.
func (e *Engine) InflatePaths(paths *Paths, delta float64, opts ...Option) (*Paths, error) {
	if paths == nil {
		return nil, ErrNilPaths
	}
	o := buildOptions(opts)
	if err := o.validate(); err != nil {
		return nil, err
	}

	p := e.lib.InflatePaths(paths.ptr(), delta, uint8(o.JoinType), uint8(o.EndType),
		o.Precision, o.MiterLimit, o.ArcTolerance, o.ReverseSolution)
	return e.result("inflate", paths.Len(), p)
}

// InflatePath offsets a single path by delta. See InflatePaths.
func (e *Engine) InflatePath(path *Path, delta float64, opts ...Option) (*Paths, error) {
	if path == nil {
		return nil, ErrNilPaths
	}
	o := buildOptions(opts)
	if err := o.validate(); err != nil {
		return nil, err
	}

	buf := flatbuf.DefaultPool.Get(packed.RecordHeaderLen + 2*path.Len())
	defer flatbuf.DefaultPool.Put(buf)
	packed.WriteRecord(buf, path.coords())

	p := e.lib.InflatePath(buf.Ptr(), delta, uint8(o.JoinType), uint8(o.EndType),
		o.Precision, o.MiterLimit, o.ArcTolerance, o.ReverseSolution)
	return e.result("inflate", 1, p)
}

// RectClip clips closed paths to rect.
func (e *Engine) RectClip(rect Rect, paths *Paths, opts ...Option) (*Paths, error) {
	return e.rectClip("rect-clip", rect, paths, opts, e.lib.RectClip)
}

// RectClipLines clips open paths to rect. Paths are treated as polylines.
func (e *Engine) RectClipLines(rect Rect, paths *Paths, opts ...Option) (*Paths, error) {
	return e.rectClip("rect-clip-lines", rect, paths, opts, e.lib.RectClipLines)
}

func (e *Engine) rectClip(op string, rect Rect, paths *Paths, opts []Option,
	call func(*backend.Rect, *float64, int) *float64) (*Paths, error) {
	if paths == nil {
		return nil, ErrNilPaths
	}
	o := buildOptions(opts)
	if err := o.validate(); err != nil {
		return nil, err
	}

	r := rect.wire()
	p := call(&r, paths.ptr(), o.Precision)
	return e.result(op, paths.Len(), p)
}

// result decodes a single-pointer result. A nil pointer is an empty result.
func (e *Engine) result(op string, in int, p *float64) (*Paths, error) {
	ps, err := decodeNative(e.lib, p)
	if err != nil {
		return nil, fmt.Errorf("polyclip: %s result: %w", op, err)
	}
	Logger().Debug("polyclip: "+op,
		"paths", in,
		"null", p == nil,
		"results", ps.Len())
	return ps, nil
}
