// Package osenv reads the environment of the running process.
package osenv

import (
	"os"

	"github.com/anton-fomin/inject-env/pkg/domain"
)

// Source implements ports.EnvironmentSource using os.Environ.
type Source struct{}

// New creates a Source for the current process.
func New() Source {
	return Source{}
}

// Snapshot returns the process environment as it is at call time.
func (Source) Snapshot() []domain.Variable {
	return domain.ParseEnviron(os.Environ())
}
