package config

import (
	"fmt"

	"github.com/knadh/koanf/v2"
)

// EncodeConfig holds the resolved options of the encode command. Keys match
// the command's flag names.
type EncodeConfig struct {
	String      string   `koanf:"string"`
	InputFiles  []string `koanf:"input-files"`
	Encoders    []string `koanf:"encoders"`
	AllEncoders bool     `koanf:"all-encoders"`
	Lookup      string   `koanf:"lookup"`
	CommonOnly  bool     `koanf:"common-encodings-only"`
}

// LoadEncodeConfig unmarshals the encode options from k.
func LoadEncodeConfig(k *koanf.Koanf) (EncodeConfig, error) {
	var cfg EncodeConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}

// Validate checks that exactly one input and exactly one encoder selection
// are configured.
func (c EncodeConfig) Validate() error {
	hasString := c.String != ""
	hasFiles := len(c.InputFiles) > 0
	switch {
	case hasString && hasFiles:
		return fmt.Errorf("%w: --string and --input-files are mutually exclusive", ErrConfigConflict)
	case !hasString && !hasFiles:
		return fmt.Errorf("%w: one of --string or --input-files is required", ErrConfigConflict)
	}

	selected := 0
	for _, set := range []bool{len(c.Encoders) > 0, c.AllEncoders, c.Lookup != ""} {
		if set {
			selected++
		}
	}
	switch {
	case selected > 1:
		return fmt.Errorf("%w: --encoders, --all-encoders and --lookup are mutually exclusive", ErrConfigConflict)
	case selected == 0:
		return fmt.Errorf("%w: one of --encoders, --all-encoders or --lookup is required", ErrConfigConflict)
	}

	return nil
}

// LookupMode reports whether a lookup target is set.
func (c EncodeConfig) LookupMode() bool {
	return c.Lookup != ""
}

// UseCatalog reports whether the full encoding catalog is swept. Lookup mode
// always sweeps the full catalog.
func (c EncodeConfig) UseCatalog() bool {
	return c.AllEncoders || c.LookupMode()
}
