package polyclip

import (
	"slices"
	"testing"
)

func TestPathsAddLayout(t *testing.T) {
	ps := NewPaths(0, 0)
	ps.Add(MustPath(1, 2, 3, 4))
	ps.Add(NewPath(0))
	ps.Add(MustPath(5, 6))

	want := []float64{
		14, 3,
		2, 0, 1, 2, 3, 4,
		0, 0,
		1, 0, 5, 6,
	}
	if got := ps.Packed(); !slices.Equal(got, want) {
		t.Errorf("Packed() = %v, want %v", got, want)
	}
	if ps.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ps.Len())
	}
	if ps.TotalPoints() != 3 {
		t.Errorf("TotalPoints() = %d, want 3", ps.TotalPoints())
	}
}

func TestPathsHeaderInvariant(t *testing.T) {
	ps := NewPaths(1, 1)
	for i := 0; i < 50; i++ {
		ps.Add(MustPath(float64(i), float64(i), 0, 0))
		packed := ps.Packed()
		if int(packed[0]) != len(packed) {
			t.Fatalf("slot 0 = %v, want %d", packed[0], len(packed))
		}
		if int(packed[1]) != ps.Len() {
			t.Fatalf("slot 1 = %v, want %d", packed[1], ps.Len())
		}
	}
}

func TestPathsAddSnapshots(t *testing.T) {
	p := MustPath(1, 1, 2, 2)
	ps := PathsOf(p)

	p.Set(0, Pt(100, 100))
	p.AddXY(3, 3)

	got := ps.At(0)
	if got.Len() != 2 || got.At(0) != Pt(1, 1) {
		t.Errorf("At(0) = %v, want the points at Add time", got.Points())
	}
}

func TestPathsAtReturnsCopy(t *testing.T) {
	ps := PathsOf(MustPath(1, 1, 2, 2))
	got := ps.At(0)
	got.Set(0, Pt(9, 9))

	if ps.Point(0, 0) != Pt(1, 1) {
		t.Errorf("mutating At() result changed the collection: %v", ps.Point(0, 0))
	}
}

func TestPathsAccessors(t *testing.T) {
	ps := PathsOf(
		MustPath(0, 0, 10, 0, 10, 10),
		MustPath(-5, -5),
	)

	if ps.PathLen(0) != 3 || ps.PathLen(1) != 1 {
		t.Errorf("PathLen() = %d, %d, want 3, 1", ps.PathLen(0), ps.PathLen(1))
	}
	if ps.Point(0, 2) != Pt(10, 10) {
		t.Errorf("Point(0, 2) = %v", ps.Point(0, 2))
	}
	all := ps.All()
	if len(all) != 2 || all[1].At(0) != Pt(-5, -5) {
		t.Errorf("All() = %v", all)
	}
	if b := ps.Bounds(); b != NewRect(-5, -5, 10, 10) {
		t.Errorf("Bounds() = %v", b)
	}
}

func TestPathsClear(t *testing.T) {
	ps := PathsOf(MustPath(1, 2, 3, 4), MustPath(5, 6))
	ps.Clear()

	if ps.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", ps.Len())
	}
	if got := ps.Packed(); !slices.Equal(got, []float64{2, 0}) {
		t.Errorf("Packed() = %v after Clear, want [2 0]", got)
	}

	// Refilling matches a fresh collection.
	ps.Add(MustPath(7, 8))
	fresh := PathsOf(MustPath(7, 8))
	if !slices.Equal(ps.Packed(), fresh.Packed()) {
		t.Errorf("refilled Packed() = %v, want %v", ps.Packed(), fresh.Packed())
	}
}

func TestPathsIndexOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		fn   func(ps *Paths)
	}{
		{"At", func(ps *Paths) { ps.At(1) }},
		{"PathLen", func(ps *Paths) { ps.PathLen(-1) }},
		{"Point path", func(ps *Paths) { ps.Point(1, 0) }},
		{"Point point", func(ps *Paths) { ps.Point(0, 2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := PathsOf(MustPath(1, 2, 3, 4))
			defer func() {
				if _, ok := recover().(*IndexError); !ok {
					t.Error("expected *IndexError panic")
				}
			}()
			tt.fn(ps)
		})
	}
}

func TestPathsNil(t *testing.T) {
	var ps *Paths
	if ps.Len() != 0 || ps.TotalPoints() != 0 {
		t.Error("nil Paths should be empty")
	}
	if ps.ptr() != nil {
		t.Error("nil Paths should borrow as a nil pointer")
	}
	if b := ps.Bounds(); b != (Rect{}) {
		t.Errorf("nil Bounds() = %v", b)
	}
	if got := ps.Packed(); !slices.Equal(got, []float64{2, 0}) {
		t.Errorf("nil Packed() = %v, want [2 0]", got)
	}
	if got := ps.All(); len(got) != 0 {
		t.Errorf("nil All() = %v", got)
	}

	empty := NewPaths(0, 0)
	if empty.ptr() == nil {
		t.Error("empty Paths should borrow its header")
	}
	if b := empty.Bounds(); b != (Rect{}) {
		t.Errorf("empty Bounds() = %v", b)
	}
}

func TestPathsAddNil(t *testing.T) {
	ps := NewPaths(1, 0)
	ps.Add(nil)
	if ps.Len() != 1 || ps.PathLen(0) != 0 {
		t.Errorf("Add(nil): Len() = %d", ps.Len())
	}
}
