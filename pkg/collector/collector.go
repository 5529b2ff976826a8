// Package collector turns an environment snapshot into the mapping that gets encoded.
package collector

import (
	"strings"

	"github.com/anton-fomin/inject-env/pkg/domain"
)

// Options controls which variables are kept and how they are named.
type Options struct {
	// Prefix restricts the result to names starting with it. Nil keeps everything.
	Prefix *string

	// StripPrefix removes Prefix from the kept names. Ignored when Prefix is nil.
	StripPrefix bool
}

// Collect filters vars by prefix and builds the mapping.
// Names colliding after the prefix is stripped resolve to the last one seen.
// It never fails: no matches yield an empty mapping.
func Collect(vars []domain.Variable, opts Options) domain.Mapping {
	result := make(domain.Mapping, len(vars))
	for _, v := range vars {
		key, ok := selectKey(v.Name, opts)
		if !ok {
			continue
		}
		result[key] = v.Value
	}
	return result
}

func selectKey(name string, opts Options) (string, bool) {
	if opts.Prefix == nil {
		return name, true
	}
	prefix := *opts.Prefix
	if !strings.HasPrefix(name, prefix) {
		return "", false
	}
	if !opts.StripPrefix {
		return name, true
	}
	// CutPrefix leaves name untouched if it somehow lost the prefix.
	stripped, _ := strings.CutPrefix(name, prefix)
	return stripped, true
}
