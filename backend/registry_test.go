package backend

import (
	"slices"
	"testing"
)

// stubLibrary satisfies Library without doing any work.
type stubLibrary struct {
	name string
}

func (s *stubLibrary) Name() string          { return s.name }
func (s *stubLibrary) Init() error           { return nil }
func (s *stubLibrary) Close()                {}
func (s *stubLibrary) Version() string       { return "stub" }
func (s *stubLibrary) DisposeArray(*float64) {}

func (s *stubLibrary) BooleanOp(_, _ uint8, _, _, _ *float64, _, _ **float64, _ int, _, _ bool) int {
	return 0
}

func (s *stubLibrary) InflatePaths(*float64, float64, uint8, uint8, int, float64, float64, bool) *float64 {
	return nil
}

func (s *stubLibrary) InflatePath(*float64, float64, uint8, uint8, int, float64, float64, bool) *float64 {
	return nil
}

func (s *stubLibrary) RectClip(*Rect, *float64, int) *float64      { return nil }
func (s *stubLibrary) RectClipLines(*Rect, *float64, int) *float64 { return nil }

func register(t *testing.T, name string, f Factory) {
	t.Helper()
	Register(name, f)
	t.Cleanup(func() { Unregister(name) })
}

func stubFactory(name string) Factory {
	return func() Library { return &stubLibrary{name: name} }
}

func TestRegistryRegisterAndGet(t *testing.T) {
	register(t, "stub-a", stubFactory("stub-a"))

	if !IsRegistered("stub-a") {
		t.Error("stub-a should be registered")
	}
	b := Get("stub-a")
	if b == nil {
		t.Fatal("Get(stub-a) returned nil")
	}
	if b.Name() != "stub-a" {
		t.Errorf("Get(stub-a).Name() = %q, want %q", b.Name(), "stub-a")
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	if b := Get("nonexistent"); b != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestRegistryAvailableSorted(t *testing.T) {
	register(t, "stub-c", stubFactory("stub-c"))
	register(t, "stub-b", stubFactory("stub-b"))

	got := Available()
	if !slices.IsSorted(got) {
		t.Errorf("Available() = %v, want sorted", got)
	}
	if !slices.Contains(got, "stub-b") || !slices.Contains(got, "stub-c") {
		t.Errorf("Available() = %v, want stub-b and stub-c", got)
	}
}

func TestRegistryDefaultPriority(t *testing.T) {
	register(t, "aaa", stubFactory("aaa"))
	register(t, BackendClipper2, stubFactory(BackendClipper2))

	b := Default()
	if b == nil || b.Name() != BackendClipper2 {
		t.Errorf("Default() = %v, want %s", b, BackendClipper2)
	}
}

func TestRegistryDefaultSkipsNilFactory(t *testing.T) {
	// A stub on an unsupported platform registers a factory returning nil.
	register(t, BackendClipper2, func() Library { return nil })
	register(t, "stub-z", stubFactory("stub-z"))

	b := Default()
	if b == nil || b.Name() != "stub-z" {
		t.Errorf("Default() = %v, want stub-z", b)
	}
}

func TestRegistryEmpty(t *testing.T) {
	for _, name := range Available() {
		f := backends[name]
		Unregister(name)
		t.Cleanup(func() { Register(name, f) })
	}

	if b := Default(); b != nil {
		t.Errorf("Default() = %v, want nil", b)
	}
}

func TestRegistryUnregister(t *testing.T) {
	Register("test-backend", stubFactory("test-backend"))
	if !IsRegistered("test-backend") {
		t.Fatal("test-backend should be registered")
	}

	Unregister("test-backend")
	if IsRegistered("test-backend") {
		t.Error("test-backend should not be registered after Unregister")
	}
	if b := Get("test-backend"); b != nil {
		t.Error("Get(test-backend) should return nil after Unregister")
	}
}

func TestRegisterReplaces(t *testing.T) {
	register(t, "dup", stubFactory("first"))
	Register("dup", stubFactory("second"))

	if b := Get("dup"); b == nil || b.Name() != "second" {
		t.Errorf("Get(dup) = %v, want the replacement", b)
	}
}

var _ Library = (*stubLibrary)(nil)
