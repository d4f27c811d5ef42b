package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("encode", pflag.ContinueOnError)
	fs.StringP("string", "s", "", "")
	fs.StringSliceP("input-files", "i", nil, "")
	fs.StringSliceP("encoders", "e", nil, "")
	fs.BoolP("all-encoders", "a", false, "")
	fs.StringP("lookup", "l", "", "")
	fs.BoolP("common-encodings-only", "c", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func load(t *testing.T, fs *pflag.FlagSet, configFile string) EncodeConfig {
	t.Helper()
	k, err := LoadConfig(fs, configFile)
	require.NoError(t, err)
	cfg, err := LoadEncodeConfig(k)
	require.NoError(t, err)
	return cfg
}

func TestLoadConfig_FlagsOnly(t *testing.T) {
	cfg := load(t, encodeFlags(t, "-s", "hi", "-e", "utf_16,ascii"), "")

	assert.Equal(t, "hi", cfg.String)
	assert.Equal(t, []string{"utf_16", "ascii"}, cfg.Encoders)
	assert.False(t, cfg.AllEncoders)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_FileFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "yaml", file: "encsweep.yaml", content: "string: hi\nencoders:\n  - ascii\n  - utf_8\n"},
		{name: "json", file: "encsweep.json", content: `{"string": "hi", "encoders": ["ascii", "utf_8"]}`},
		{name: "toml", file: "encsweep.toml", content: "string = \"hi\"\nencoders = [\"ascii\", \"utf_8\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := load(t, encodeFlags(t), writeConfig(t, tt.file, tt.content))
			assert.Equal(t, "hi", cfg.String)
			assert.Equal(t, []string{"ascii", "utf_8"}, cfg.Encoders)
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	file := writeConfig(t, "encsweep.yml", "string: from-file\nencoders:\n  - ascii\n")

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("ENCSWEEP_ENCODERS", "utf_8, latin_1")
		cfg := load(t, encodeFlags(t), file)
		assert.Equal(t, "from-file", cfg.String)
		assert.Equal(t, []string{"utf_8", "latin_1"}, cfg.Encoders)
	})

	t.Run("flags override env", func(t *testing.T) {
		t.Setenv("ENCSWEEP_STRING", "from-env")
		cfg := load(t, encodeFlags(t, "--string", "from-flag"), file)
		assert.Equal(t, "from-flag", cfg.String)
	})

	t.Run("unset flags keep env values", func(t *testing.T) {
		t.Setenv("ENCSWEEP_STRING", "from-env")
		t.Setenv("ENCSWEEP_ALL_ENCODERS", "true")
		cfg := load(t, encodeFlags(t), file)
		assert.Equal(t, "from-env", cfg.String)
		assert.True(t, cfg.AllEncoders)
	})
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(nil, writeConfig(t, "encsweep.ini", "string=hi\n"))
	assert.ErrorContains(t, err, "unsupported config file format")

	_, err = LoadConfig(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "error loading config file")
}

func TestEnvKeyValue(t *testing.T) {
	key, value := envKeyValue("ENCSWEEP_COMMON_ENCODINGS_ONLY", "true")
	assert.Equal(t, "common-encodings-only", key)
	assert.Equal(t, "true", value)

	key, value = envKeyValue("ENCSWEEP_INPUT_FILES", "a.txt,,b.txt ")
	assert.Equal(t, "input-files", key)
	assert.Equal(t, []string{"a.txt", "b.txt"}, value)
}

func TestEncodeConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     EncodeConfig
		wantErr bool
	}{
		{name: "string with encoders", cfg: EncodeConfig{String: "hi", Encoders: []string{"ascii"}}},
		{name: "files with all encoders", cfg: EncodeConfig{InputFiles: []string{"a.txt"}, AllEncoders: true}},
		{name: "string with lookup", cfg: EncodeConfig{String: "hi", Lookup: "%68%69", CommonOnly: true}},
		{name: "no input", cfg: EncodeConfig{Encoders: []string{"ascii"}}, wantErr: true},
		{name: "both inputs", cfg: EncodeConfig{String: "hi", InputFiles: []string{"a.txt"}, AllEncoders: true}, wantErr: true},
		{name: "no selection", cfg: EncodeConfig{String: "hi"}, wantErr: true},
		{name: "encoders and all", cfg: EncodeConfig{String: "hi", Encoders: []string{"ascii"}, AllEncoders: true}, wantErr: true},
		{name: "all and lookup", cfg: EncodeConfig{String: "hi", AllEncoders: true, Lookup: "%68"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrConfigConflict)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEncodeConfig_Modes(t *testing.T) {
	lookup := EncodeConfig{String: "hi", Lookup: "%68%69"}
	assert.True(t, lookup.LookupMode())
	assert.True(t, lookup.UseCatalog())

	explicit := EncodeConfig{String: "hi", Encoders: []string{"ascii"}}
	assert.False(t, explicit.LookupMode())
	assert.False(t, explicit.UseCatalog())

	all := EncodeConfig{String: "hi", AllEncoders: true}
	assert.True(t, all.UseCatalog())
}
