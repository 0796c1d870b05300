//go:build darwin || freebsd || linux

package clipper2

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/gogpu/polyclip/backend"
)

// init registers the clipper2 backend on package import.
func init() {
	backend.Register(backend.BackendClipper2, func() backend.Library {
		return New()
	})
}

// exports holds the bound entry points of clipper.export.h.
type exports struct {
	version        func() string
	disposeArrayD  func(p *unsafe.Pointer)
	booleanOpD     func(clipType, fillRule uint8, subjects, subjectsOpen, clips unsafe.Pointer, solution, solutionOpen *unsafe.Pointer, precision int32, preserveCollinear, reverseSolution bool) int32
	inflatePathsD  func(paths unsafe.Pointer, delta float64, joinType, endType uint8, precision int32, miterLimit, arcTolerance float64, reverseSolution bool) unsafe.Pointer
	inflatePathD   func(path unsafe.Pointer, delta float64, joinType, endType uint8, precision int32, miterLimit, arcTolerance float64, reverseSolution bool) unsafe.Pointer
	rectClipD      func(rect unsafe.Pointer, paths unsafe.Pointer, precision int32) unsafe.Pointer
	rectClipLinesD func(rect unsafe.Pointer, paths unsafe.Pointer, precision int32) unsafe.Pointer
}

// The library is loaded once per process and never unloaded.
var (
	loadMu sync.Mutex
	loaded *exports
)

// load opens the first loadable candidate and binds its exports.
func load(log *slog.Logger) (*exports, error) {
	loadMu.Lock()
	defer loadMu.Unlock()
	if loaded != nil {
		return loaded, nil
	}

	var errs []error
	for _, name := range candidates() {
		handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ex, err := bind(handle)
		if err != nil {
			_ = purego.Dlclose(handle)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		loaded = ex
		log.Info("clipper2: library loaded", "path", name, "version", ex.version())
		return ex, nil
	}
	return nil, fmt.Errorf("%w: %w", ErrLibraryNotFound, errors.Join(errs...))
}

// bind resolves every export, failing on the first missing symbol.
func bind(handle uintptr) (*exports, error) {
	ex := &exports{}
	syms := []struct {
		name string
		fptr any
	}{
		{"Version", &ex.version},
		{"DisposeArrayD", &ex.disposeArrayD},
		{"BooleanOpD", &ex.booleanOpD},
		{"InflatePathsD", &ex.inflatePathsD},
		{"InflatePathD", &ex.inflatePathD},
		{"RectClipD", &ex.rectClipD},
		{"RectClipLinesD", &ex.rectClipLinesD},
	}
	for _, s := range syms {
		addr, err := purego.Dlsym(handle, s.name)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrMissingSymbol, s.name, err)
		}
		purego.RegisterFunc(s.fptr, addr)
	}
	return ex, nil
}

// Backend is the Clipper2 native backend.
// It implements the backend.Library interface.
type Backend struct {
	mu     sync.RWMutex
	ex     *exports
	logger *slog.Logger
}

// New creates an uninitialized backend. Call Init before use.
func New() *Backend {
	return &Backend{logger: slog.New(slog.DiscardHandler)}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendClipper2
}

// SetLogger sets the logger used for library lifecycle events.
func (b *Backend) SetLogger(l *slog.Logger) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logger = l
}

// Init loads the shared library on first use in the process and binds its
// exports.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ex != nil {
		return nil
	}
	ex, err := load(b.logger)
	if err != nil {
		return err
	}
	b.ex = ex
	return nil
}

// IsInitialized returns true if Init succeeded.
func (b *Backend) IsInitialized() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.ex != nil
}

// Close detaches the backend. The shared library stays loaded for other
// backends in the process.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ex = nil
}

func (b *Backend) bound() *exports {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.ex == nil {
		panic(backend.ErrNotInitialized)
	}
	return b.ex
}

// Version returns the library's version string.
func (b *Backend) Version() string {
	return b.bound().version()
}

// DisposeArray releases an array returned by the library.
func (b *Backend) DisposeArray(p *float64) {
	q := unsafe.Pointer(p)
	b.bound().disposeArrayD(&q)
}

// BooleanOp calls BooleanOpD.
func (b *Backend) BooleanOp(clipType, fillRule uint8, subjects, subjectsOpen, clips *float64,
	solution, solutionOpen **float64,
	precision int, preserveCollinear, reverseSolution bool) int {
	var sol, solOpen unsafe.Pointer
	status := b.bound().booleanOpD(clipType, fillRule,
		unsafe.Pointer(subjects), unsafe.Pointer(subjectsOpen), unsafe.Pointer(clips),
		&sol, &solOpen,
		int32(precision), preserveCollinear, reverseSolution)
	runtime.KeepAlive(subjects)
	runtime.KeepAlive(subjectsOpen)
	runtime.KeepAlive(clips)

	*solution = (*float64)(sol)
	*solutionOpen = (*float64)(solOpen)
	return int(status)
}

// InflatePaths calls InflatePathsD.
func (b *Backend) InflatePaths(paths *float64, delta float64, joinType, endType uint8,
	precision int, miterLimit, arcTolerance float64, reverseSolution bool) *float64 {
	r := b.bound().inflatePathsD(unsafe.Pointer(paths), delta, joinType, endType,
		int32(precision), miterLimit, arcTolerance, reverseSolution)
	runtime.KeepAlive(paths)
	return (*float64)(r)
}

// InflatePath calls InflatePathD.
func (b *Backend) InflatePath(path *float64, delta float64, joinType, endType uint8,
	precision int, miterLimit, arcTolerance float64, reverseSolution bool) *float64 {
	r := b.bound().inflatePathD(unsafe.Pointer(path), delta, joinType, endType,
		int32(precision), miterLimit, arcTolerance, reverseSolution)
	runtime.KeepAlive(path)
	return (*float64)(r)
}

// RectClip calls RectClipD.
func (b *Backend) RectClip(rect *backend.Rect, paths *float64, precision int) *float64 {
	r := b.bound().rectClipD(unsafe.Pointer(rect), unsafe.Pointer(paths), int32(precision))
	runtime.KeepAlive(rect)
	runtime.KeepAlive(paths)
	return (*float64)(r)
}

// RectClipLines calls RectClipLinesD.
func (b *Backend) RectClipLines(rect *backend.Rect, paths *float64, precision int) *float64 {
	r := b.bound().rectClipLinesD(unsafe.Pointer(rect), unsafe.Pointer(paths), int32(precision))
	runtime.KeepAlive(rect)
	runtime.KeepAlive(paths)
	return (*float64)(r)
}

var _ backend.Library = (*Backend)(nil)
