// Package redact masks the values of sensitive variables before they are encoded.
package redact

import (
	"fmt"
	"regexp"

	"github.com/anton-fomin/inject-env/pkg/domain"
)

// Masker replaces values of keys matching any of its patterns with domain.MaskedValue.
type Masker struct {
	patterns []*regexp.Regexp
}

// New compiles the patterns. An empty list yields a Masker that changes nothing.
func New(patterns []string) (*Masker, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid mask pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return &Masker{patterns: compiled}, nil
}

// Apply returns a copy of m with matching values masked. m itself is never modified.
func (mk *Masker) Apply(m domain.Mapping) domain.Mapping {
	if mk == nil || len(mk.patterns) == 0 {
		return m
	}
	out := make(domain.Mapping, len(m))
	for k, v := range m {
		if mk.matches(k) {
			v = domain.MaskedValue
		}
		out[k] = v
	}
	return out
}

func (mk *Masker) matches(key string) bool {
	for _, p := range mk.patterns {
		if p.MatchString(key) {
			return true
		}
	}
	return false
}
