package domain

import "strings"

// Variable is a single environment entry.
type Variable struct {
	Name  string
	Value string
}

// Mapping is the filtered set of variables, keyed by (possibly renamed) name.
type Mapping map[string]string

// ParseEnviron converts KEY=VALUE entries, as returned by os.Environ, into Variables.
// The split happens on the first '=' so values may contain '='.
// Entries without a name (e.g. the "=C:=C:\" pseudo variables on Windows) are skipped.
func ParseEnviron(environ []string) []Variable {
	vars := make([]Variable, 0, len(environ))
	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			continue
		}
		vars = append(vars, Variable{Name: name, Value: value})
	}
	return vars
}
