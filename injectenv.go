package injectenv

import (
	"github.com/anton-fomin/inject-env/pkg/collector"
	"github.com/anton-fomin/inject-env/pkg/domain"
	"github.com/anton-fomin/inject-env/pkg/encoder"
	"github.com/anton-fomin/inject-env/pkg/redact"
)

// Version is the build version, set with -ldflags "-X github.com/anton-fomin/inject-env.Version=...".
var Version = "dev"

type settings struct {
	collect        collector.Options
	escapeAsString bool
	format         string
	mask           []string
}

// Option defines a functional option for Render.
type Option func(*settings)

// WithPrefix keeps only variables whose name starts with prefix.
func WithPrefix(prefix string) Option {
	return func(s *settings) {
		s.collect.Prefix = &prefix
	}
}

// WithStripPrefix controls whether the prefix is removed from output keys. Defaults to true.
func WithStripPrefix(strip bool) Option {
	return func(s *settings) {
		s.collect.StripPrefix = strip
	}
}

// WithEncodedString emits the JSON object as a JSON string literal.
func WithEncodedString(enabled bool) Option {
	return func(s *settings) {
		s.escapeAsString = enabled
	}
}

// WithFormat sets the template; its first "{}" is replaced with the payload.
func WithFormat(format string) Option {
	return func(s *settings) {
		s.format = format
	}
}

// WithMask masks values of variables whose (final) name matches any of the regular expressions.
func WithMask(patterns ...string) Option {
	return func(s *settings) {
		s.mask = append(s.mask, patterns...)
	}
}

// Render runs the collect, mask and encode stages over vars.
func Render(vars []domain.Variable, opts ...Option) (string, error) {
	s := settings{
		collect: collector.Options{StripPrefix: true},
		format:  domain.DefaultFormat,
	}
	for _, opt := range opts {
		opt(&s)
	}

	masker, err := redact.New(s.mask)
	if err != nil {
		return "", err
	}

	mapping := masker.Apply(collector.Collect(vars, s.collect))
	return encoder.Encode(mapping, s.escapeAsString, s.format)
}
