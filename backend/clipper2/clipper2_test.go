//go:build darwin || freebsd || linux

package clipper2_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/gogpu/polyclip"
	"github.com/gogpu/polyclip/backend"
	"github.com/gogpu/polyclip/backend/clipper2"
)

// newEngine returns an engine on the native library, skipping the test when
// the library cannot be found. Set CLIPPER2_LIBRARY to run these tests; see
// the package documentation.
func newEngine(t *testing.T) *polyclip.Engine {
	t.Helper()
	eng, err := polyclip.NewEngine(clipper2.New())
	if err != nil {
		if errors.Is(err, clipper2.ErrLibraryNotFound) {
			t.Skipf("Clipper2 library not available: %v", err)
		}
		t.Fatalf("NewEngine() error = %v", err)
	}
	return eng
}

func starSubject() *polyclip.Paths {
	return polyclip.PathsOf(polyclip.MustPath(100, 50, 10, 79, 65, 2, 65, 98, 10, 21))
}

func starClip() *polyclip.Paths {
	return polyclip.PathsOf(polyclip.MustPath(98, 63, 4, 68, 77, 8, 52, 100, 19, 12))
}

func TestRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.BackendClipper2) {
		t.Fatal("clipper2 backend should be registered")
	}
	b := backend.Get(backend.BackendClipper2)
	if b == nil {
		t.Fatal("backend.Get(clipper2) returned nil")
	}
	if b.Name() != backend.BackendClipper2 {
		t.Errorf("Name() = %q, want %q", b.Name(), backend.BackendClipper2)
	}
}

func TestNotInitialized(t *testing.T) {
	b := clipper2.New()
	if b.IsInitialized() {
		t.Error("backend should not be initialized initially")
	}

	defer func() {
		if r := recover(); r != backend.ErrNotInitialized {
			t.Errorf("recover() = %v, want ErrNotInitialized", r)
		}
	}()
	_ = b.Version()
}

func TestVersion(t *testing.T) {
	eng := newEngine(t)
	if eng.Version() == "" {
		t.Error("Version() returned empty string")
	}
}

func TestIntersectStars(t *testing.T) {
	eng := newEngine(t)
	subject, clip := starSubject(), starClip()

	closed, open, err := eng.Intersect(subject, clip, polyclip.WithFillRule(polyclip.NonZero))
	if err != nil {
		t.Fatalf("Intersect() error = %v", err)
	}
	if closed.Len() == 0 {
		t.Fatal("Intersect() returned no closed paths")
	}
	if open.Len() != 0 {
		t.Errorf("open.Len() = %d, want 0", open.Len())
	}

	// Every vertex lies inside both inputs' bounds.
	sb, cb := subject.Bounds(), clip.Bounds()
	for i := 0; i < closed.Len(); i++ {
		for j := 0; j < closed.PathLen(i); j++ {
			p := closed.Point(i, j)
			if !sb.Contains(p) || !cb.Contains(p) {
				t.Errorf("result point %v outside input bounds", p)
			}
		}
	}

	again, err := polyclip.DecodePaths(closed.Packed())
	if err != nil {
		t.Fatalf("DecodePaths() error = %v", err)
	}
	if !slices.Equal(again.Packed(), closed.Packed()) {
		t.Error("result does not round-trip through the packed format")
	}
}

func TestBooleanEmptyInputs(t *testing.T) {
	eng := newEngine(t)

	for _, ct := range []polyclip.ClipType{
		polyclip.ClipIntersection, polyclip.ClipUnion, polyclip.ClipDifference, polyclip.ClipXor,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			closed, open, err := eng.BooleanOp(ct, polyclip.NonZero, polyclip.NewPaths(0, 0),
				polyclip.WithClips(polyclip.NewPaths(0, 0)))
			if err != nil {
				t.Fatalf("BooleanOp() error = %v", err)
			}
			if closed.Len() != 0 || open.Len() != 0 {
				t.Errorf("got %d closed, %d open paths, want 0, 0", closed.Len(), open.Len())
			}
		})
	}
}

func TestBooleanInvalidFillRule(t *testing.T) {
	eng := newEngine(t)

	closed, open, err := eng.BooleanOp(polyclip.ClipUnion, polyclip.FillRule(42), starSubject())
	var opErr *polyclip.OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("BooleanOp() error = %v, want *OpError", err)
	}
	if opErr.Status == 0 {
		t.Error("OpError.Status = 0")
	}
	if closed != nil || open != nil {
		t.Error("failed BooleanOp() should not return results")
	}
}

func TestInflateZeroDelta(t *testing.T) {
	eng := newEngine(t)
	tri := polyclip.MustPath(0, 0, 100, 0, 50, 80)

	got, err := eng.InflatePath(tri, 0)
	if err != nil {
		t.Fatalf("InflatePath() error = %v", err)
	}
	if got.Len() != 1 || got.PathLen(0) != tri.Len() {
		t.Fatalf("InflatePath() = %d paths, want one path of %d points", got.Len(), tri.Len())
	}
	for _, want := range tri.Points() {
		found := false
		for j := 0; j < got.PathLen(0); j++ {
			if got.Point(0, j).Distance(want) < 0.01 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("vertex %v missing from result %v", want, got.At(0).Points())
		}
	}
}

func TestInflateGrowsAndShrinks(t *testing.T) {
	eng := newEngine(t)
	square := polyclip.PathsOf(polyclip.MustPath(0, 0, 100, 0, 100, 100, 0, 100))

	grown, err := eng.InflatePaths(square, 10)
	if err != nil {
		t.Fatalf("InflatePaths(10) error = %v", err)
	}
	if b := grown.Bounds(); math.Abs(b.Width()-120) > 0.01 {
		t.Errorf("grown width = %v, want 120", b.Width())
	}

	shrunk, err := eng.InflatePaths(square, -10)
	if err != nil {
		t.Fatalf("InflatePaths(-10) error = %v", err)
	}
	if b := shrunk.Bounds(); math.Abs(b.Width()-80) > 0.01 {
		t.Errorf("shrunk width = %v, want 80", b.Width())
	}
}

func TestRectClip(t *testing.T) {
	eng := newEngine(t)
	square := polyclip.PathsOf(polyclip.MustPath(0, 0, 100, 0, 100, 100, 0, 100))
	rect := polyclip.NewRect(25, 25, 75, 75)

	got, err := eng.RectClip(rect, square)
	if err != nil {
		t.Fatalf("RectClip() error = %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("RectClip() returned %d paths, want 1", got.Len())
	}
	if b := got.Bounds(); b != rect {
		t.Errorf("RectClip() bounds = %v, want %v", b, rect)
	}
}

func TestRectClipLines(t *testing.T) {
	eng := newEngine(t)
	line := polyclip.PathsOf(polyclip.MustPath(0, 50, 100, 50))

	got, err := eng.RectClipLines(polyclip.NewRect(25, 25, 75, 75), line)
	if err != nil {
		t.Fatalf("RectClipLines() error = %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("RectClipLines() returned %d paths, want 1", got.Len())
	}
	if b := got.Bounds(); b.Left != 25 || b.Right != 75 {
		t.Errorf("RectClipLines() bounds = %v, want x in [25, 75]", b)
	}
}
