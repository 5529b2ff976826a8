// Package encoder renders a mapping as JSON and places it into a format template.
package encoder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/anton-fomin/inject-env/pkg/domain"
)

// Encode serializes m as a JSON object, optionally re-encodes that text as a
// JSON string literal, and substitutes the result for the first placeholder in format.
// A format without a placeholder is returned unchanged.
func Encode(m domain.Mapping, escapeAsString bool, format string) (string, error) {
	if m == nil {
		m = domain.Mapping{}
	}
	if err := validate(m); err != nil {
		return "", err
	}
	payload, err := marshal(map[string]string(m))
	if err != nil {
		return "", err
	}
	if escapeAsString {
		payload, err = marshal(payload)
		if err != nil {
			return "", err
		}
	}
	return Substitute(format, payload), nil
}

// Substitute replaces the first placeholder in format with payload.
func Substitute(format, payload string) string {
	return strings.Replace(format, domain.Placeholder, payload, 1)
}

// validate rejects names and values that encoding/json would silently rewrite
// (invalid UTF-8 becomes U+FFFD), so the output always decodes back to m.
func validate(m domain.Mapping) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !utf8.ValidString(k) || !utf8.ValidString(m[k]) {
			return fmt.Errorf("%w: variable %q is not valid UTF-8", domain.ErrEncoding, k)
		}
	}
	return nil
}

// marshal encodes v without HTML escaping so '<', '>' and '&' stay readable
// when the output is dropped into a script tag or config file.
func marshal(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
