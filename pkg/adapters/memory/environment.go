package memory

import (
	"sort"

	"github.com/anton-fomin/inject-env/pkg/domain"
)

// Environment implements ports.EnvironmentSource using a fixed snapshot.
type Environment struct {
	vars []domain.Variable
}

// NewEnvironment creates an Environment from a name to value map.
// Variables are ordered by name so snapshots are reproducible.
func NewEnvironment(data map[string]string) *Environment {
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	vars := make([]domain.Variable, 0, len(names))
	for _, name := range names {
		vars = append(vars, domain.Variable{Name: name, Value: data[name]})
	}
	return &Environment{vars: vars}
}

// NewFromEnviron creates an Environment from KEY=VALUE entries, keeping their order.
// This mirrors what the process sees, duplicates included.
func NewFromEnviron(environ ...string) *Environment {
	return &Environment{vars: domain.ParseEnviron(environ)}
}

// Snapshot returns a copy of the stored variables.
func (e *Environment) Snapshot() []domain.Variable {
	out := make([]domain.Variable, len(e.vars))
	copy(out, e.vars)
	return out
}
