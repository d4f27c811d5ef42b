package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/redjax/encsweep/internal/utils/path"
)

// EnvPrefix is the prefix of environment variables read into the config.
const EnvPrefix = "ENCSWEEP_"

// ErrConfigConflict is returned when mutually exclusive options are both set,
// or when none of a required group is set.
var ErrConfigConflict = errors.New("configuration conflict")

// listKeys are split on commas when they come from the environment.
var listKeys = map[string]bool{
	"input-files": true,
	"encoders":    true,
}

// LoadConfig merges, in increasing precedence, the config file (if any),
// ENCSWEEP_* environment variables and the command-line flags.
func LoadConfig(flagSet *pflag.FlagSet, configFile string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	// Load from config file if provided
	if configFile != "" {
		expanded, err := path.ExpandPath(configFile)
		if err != nil {
			return nil, err
		}
		parser, err := parserForFile(expanded)
		if err != nil {
			return nil, fmt.Errorf("unsupported config file format: %w", err)
		}
		if err := k.Load(file.Provider(expanded), parser); err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// ENCSWEEP_ALL_ENCODERS becomes all-encoders, matching the flag name
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil); err != nil {
		return nil, fmt.Errorf("error loading environment: %w", err)
	}

	// Load from command-line flags (highest precedence)
	if flagSet != nil {
		if err := k.Load(posflag.Provider(flagSet, ".", k), nil); err != nil {
			return nil, fmt.Errorf("error loading flags: %w", err)
		}
	}

	return k, nil
}

func envKeyValue(key, value string) (string, interface{}) {
	key = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), "_", "-")
	if listKeys[key] {
		var items []string
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return key, items
	}
	return key, value
}

func parserForFile(p string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(p))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		return dotenv.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}
