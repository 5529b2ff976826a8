// Package config resolves the options inject-env runs with.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/anton-fomin/inject-env/pkg/domain"
)

// Config holds every option of a single invocation.
// Pointer fields distinguish "not set" from "set to the empty string".
type Config struct {
	Out             *string  `mapstructure:"out" yaml:"out,omitempty"`
	Replace         *string  `mapstructure:"replace" yaml:"replace,omitempty"`
	Prefix          *string  `mapstructure:"prefix" yaml:"prefix,omitempty"`
	StripPrefix     bool     `mapstructure:"strip_prefix" yaml:"strip_prefix"`
	AsEncodedString bool     `mapstructure:"as_encoded_string" yaml:"as_encoded_string"`
	Format          string   `mapstructure:"format" yaml:"format"`
	Mask            []string `mapstructure:"mask" yaml:"mask,omitempty"`
	Debug           bool     `mapstructure:"debug" yaml:"debug"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		StripPrefix: true,
		Format:      domain.DefaultFormat,
	}
}

// Load reads a defaults file (YAML, or JSON when the extension is .json)
// and applies it on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := decode(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      cfg,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
