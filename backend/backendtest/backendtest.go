// Package backendtest provides an in-process backend.Library for tests.
//
// The fake engine does not clip anything: every operation echoes its input
// geometry back in freshly allocated packed buffers. What it does check is
// the boundary contract. Each returned pointer is tracked until it is passed
// to DisposeArray, so tests can assert that nothing leaks and nothing is
// released twice, and every call is recorded with its decoded arguments.
package backendtest

import (
	"fmt"
	"sync"

	"github.com/gogpu/polyclip/backend"
	"github.com/gogpu/polyclip/internal/flatbuf"
	"github.com/gogpu/polyclip/internal/packed"
)

// Name is the backend name reported by Library.
const Name = "backendtest"

// Call records one engine invocation. Geometry fields hold the interleaved
// coordinates of each input path; a nil slice means a nil pointer was
// passed.
type Call struct {
	Op string

	ClipType, FillRule           uint8
	Subjects, SubjectsOpen       [][]float64
	Clips                        [][]float64
	Precision                    int
	PreserveCollinear, Reverse   bool
	Delta                        float64
	JoinType, EndType            uint8
	MiterLimit, ArcTolerance     float64
	Rect                         backend.Rect
	SolutionSet, SolutionOpenSet bool
}

// Library is a fake engine. The exported fields configure its behavior and
// may be changed between calls.
type Library struct {
	// Status is returned by BooleanOp.
	Status int
	// FillOnFailure populates both output slots even when Status is nonzero.
	FillOnFailure bool
	// NullEmpty returns nil instead of an empty packed buffer for results
	// without paths.
	NullEmpty bool
	// Corrupt makes every result declare one more path than it holds.
	Corrupt bool
	// InitErr is returned by Init.
	InitErr error

	mu          sync.Mutex
	live        map[*float64][]float64
	calls       []Call
	disposed    int
	badDisposes int
	closed      bool
}

// New creates a fake engine.
func New() *Library {
	return &Library{live: make(map[*float64][]float64)}
}

// Name returns the backend identifier.
func (l *Library) Name() string { return Name }

// Init returns InitErr.
func (l *Library) Init() error { return l.InitErr }

// Close marks the library closed.
func (l *Library) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
}

// Version returns a fixed identifier.
func (l *Library) Version() string { return "backendtest-1.0" }

// DisposeArray releases a pointer returned by this library.
func (l *Library) DisposeArray(p *float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.live[p]; !ok {
		l.badDisposes++
		return
	}
	delete(l.live, p)
	l.disposed++
}

// BooleanOp echoes subjects as the closed solution and open subjects as the
// open solution.
func (l *Library) BooleanOp(clipType, fillRule uint8, subjects, subjectsOpen, clips *float64,
	solution, solutionOpen **float64,
	precision int, preserveCollinear, reverseSolution bool) int {
	c := Call{
		Op:                "BooleanOp",
		ClipType:          clipType,
		FillRule:          fillRule,
		Subjects:          mustRead(subjects),
		SubjectsOpen:      mustRead(subjectsOpen),
		Clips:             mustRead(clips),
		Precision:         precision,
		PreserveCollinear: preserveCollinear,
		Reverse:           reverseSolution,
	}

	if l.Status == 0 || l.FillOnFailure {
		*solution = l.alloc(c.Subjects)
		*solutionOpen = l.alloc(c.SubjectsOpen)
		c.SolutionSet = *solution != nil
		c.SolutionOpenSet = *solutionOpen != nil
	}
	l.record(c)
	return l.Status
}

// InflatePaths echoes paths.
func (l *Library) InflatePaths(paths *float64, delta float64, joinType, endType uint8,
	precision int, miterLimit, arcTolerance float64, reverseSolution bool) *float64 {
	c := Call{
		Op:           "InflatePaths",
		Subjects:     mustRead(paths),
		Delta:        delta,
		JoinType:     joinType,
		EndType:      endType,
		Precision:    precision,
		MiterLimit:   miterLimit,
		ArcTolerance: arcTolerance,
		Reverse:      reverseSolution,
	}
	l.record(c)
	return l.alloc(c.Subjects)
}

// InflatePath echoes the single path as a one-path collection.
func (l *Library) InflatePath(path *float64, delta float64, joinType, endType uint8,
	precision int, miterLimit, arcTolerance float64, reverseSolution bool) *float64 {
	xy, err := packed.ViewRecord(path)
	if err != nil {
		panic(fmt.Sprintf("backendtest: InflatePath input: %v", err))
	}
	var subjects [][]float64
	if path != nil {
		subjects = [][]float64{append([]float64(nil), xy...)}
	}
	c := Call{
		Op:           "InflatePath",
		Subjects:     subjects,
		Delta:        delta,
		JoinType:     joinType,
		EndType:      endType,
		Precision:    precision,
		MiterLimit:   miterLimit,
		ArcTolerance: arcTolerance,
		Reverse:      reverseSolution,
	}
	l.record(c)
	return l.alloc(c.Subjects)
}

// RectClip echoes paths.
func (l *Library) RectClip(rect *backend.Rect, paths *float64, precision int) *float64 {
	return l.rectClip("RectClip", rect, paths, precision)
}

// RectClipLines echoes paths.
func (l *Library) RectClipLines(rect *backend.Rect, paths *float64, precision int) *float64 {
	return l.rectClip("RectClipLines", rect, paths, precision)
}

func (l *Library) rectClip(op string, rect *backend.Rect, paths *float64, precision int) *float64 {
	c := Call{
		Op:        op,
		Rect:      *rect,
		Subjects:  mustRead(paths),
		Precision: precision,
	}
	l.record(c)
	return l.alloc(c.Subjects)
}

// Calls returns the recorded calls in order.
func (l *Library) Calls() []Call {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Call(nil), l.calls...)
}

// LastCall returns the most recent call. It panics if there is none.
func (l *Library) LastCall() Call {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.calls) == 0 {
		panic("backendtest: no calls recorded")
	}
	return l.calls[len(l.calls)-1]
}

// Live returns the number of returned pointers not yet disposed.
func (l *Library) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.live)
}

// Disposed returns the number of successful DisposeArray calls.
func (l *Library) Disposed() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.disposed
}

// BadDisposes returns the number of DisposeArray calls with a pointer that
// was not live: nil, foreign or already released.
func (l *Library) BadDisposes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.badDisposes
}

// Closed reports whether Close was called.
func (l *Library) Closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

func (l *Library) record(c Call) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, c)
}

// alloc builds a tracked packed buffer holding records.
func (l *Library) alloc(records [][]float64) *float64 {
	if len(records) == 0 && l.NullEmpty {
		return nil
	}

	buf := flatbuf.New(0)
	packed.Reset(buf)
	for _, xy := range records {
		packed.AppendRecord(buf, xy)
	}
	if l.Corrupt {
		buf.Set(1, buf.At(1)+1)
	}

	data := make([]float64, buf.Len())
	copy(data, buf.Slice())
	p := &data[0]

	l.mu.Lock()
	defer l.mu.Unlock()
	l.live[p] = data
	return p
}

// mustRead decodes a packed input argument.
func mustRead(p *float64) [][]float64 {
	if p == nil {
		return nil
	}
	data, err := packed.View(p)
	if err != nil {
		panic(fmt.Sprintf("backendtest: input: %v", err))
	}
	r, err := packed.NewReader(data)
	if err != nil {
		panic(fmt.Sprintf("backendtest: input: %v", err))
	}
	out := make([][]float64, 0, r.Count())
	for r.Next() {
		out = append(out, append([]float64{}, r.Coords()...))
	}
	if err := r.Err(); err != nil {
		panic(fmt.Sprintf("backendtest: input: %v", err))
	}
	return out
}

var _ backend.Library = (*Library)(nil)
