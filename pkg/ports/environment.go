package ports

import "github.com/anton-fomin/inject-env/pkg/domain"

// EnvironmentSource supplies the environment the collector works on.
// Implementations return the variables in the order the backend exposes them.
type EnvironmentSource interface {
	// Snapshot returns the current set of variables. It must not fail:
	// an unavailable environment is reported as an empty snapshot.
	Snapshot() []domain.Variable
}
