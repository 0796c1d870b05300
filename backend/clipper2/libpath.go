package clipper2

import (
	"os"
	"runtime"
	"sync"
)

// EnvLibrary names the environment variable holding the library path.
const EnvLibrary = "CLIPPER2_LIBRARY"

var (
	pathMu      sync.Mutex
	libraryPath string
)

// SetLibraryPath sets the shared library to load. It only has an effect
// before the library is first loaded.
func SetLibraryPath(path string) {
	pathMu.Lock()
	defer pathMu.Unlock()
	libraryPath = path
}

// candidates returns the library names to try, in order.
func candidates() []string {
	pathMu.Lock()
	p := libraryPath
	pathMu.Unlock()

	if p != "" {
		return []string{p}
	}
	if p := os.Getenv(EnvLibrary); p != "" {
		return []string{p}
	}
	return defaultNames(runtime.GOOS)
}

func defaultNames(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"libClipper2.dylib", "libClipper2.1.dylib"}
	case "windows":
		return []string{"Clipper2.dll", "Clipper2_64.dll"}
	default:
		return []string{"libClipper2.so", "libClipper2.so.1"}
	}
}
