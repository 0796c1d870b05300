//go:build !(darwin || freebsd || linux)

package clipper2

import "github.com/gogpu/polyclip/backend"

// init registers a nil-returning factory on platforms without runtime
// loading support. backend.Get(backend.BackendClipper2) then returns nil
// gracefully and polyclip.Default reports backend.ErrBackendNotAvailable.
func init() {
	backend.Register(backend.BackendClipper2, func() backend.Library {
		return nil
	})
}
