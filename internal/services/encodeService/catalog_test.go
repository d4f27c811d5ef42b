package encodeservice

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_Exclusions(t *testing.T) {
	registry := NewRegistry()
	catalog := NewCatalog(registry)

	canonical := registry.Canonical()
	require.Contains(t, canonical, "rot_13")
	require.Contains(t, canonical, "base64_codec")
	require.Contains(t, canonical, "base32_codec")

	for _, name := range catalog.Names() {
		assert.NotEqual(t, "rot_13", name)
		assert.False(t, strings.HasPrefix(name, "base"), "%s should be excluded", name)
	}
	assert.Equal(t, len(canonical)-3, catalog.Len())

	for _, name := range []string{"ascii", "utf_8", "utf_16", "latin_1", "cp1252", "shift_jis", "hex_codec", "zlib_codec"} {
		assert.True(t, catalog.Contains(name), "catalog should contain %s", name)
	}
	assert.False(t, catalog.Contains("us_ascii"), "aliases are not catalog entries")
}

func TestNewCatalog_ConsecutiveExclusions(t *testing.T) {
	// Adjacent excluded names must all be dropped.
	registry := newRegistry([]Entry{
		{Name: "ascii", Codec: textCodec{enc: asciiEncoding()}},
		{Name: "base16_codec", Codec: byteCodec{fn: nil}},
		{Name: "base32_codec", Codec: byteCodec{fn: nil}},
		{Name: "base64_codec", Codec: byteCodec{fn: nil}},
		{Name: "rot_13", Codec: rot13Codec{}},
	})

	assert.Equal(t, []string{"ascii"}, NewCatalog(registry).Names())
}

func TestCatalog_NamesIsSortedCopy(t *testing.T) {
	catalog := NewCatalog(NewRegistry())

	names := catalog.Names()
	require.True(t, slices.IsSorted(names))

	names[0] = "mutated"
	assert.NotEqual(t, "mutated", catalog.Names()[0])
}

func TestExcluded(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "rot_13", want: true},
		{name: "base64_codec", want: true},
		{name: "base32_codec", want: true},
		{name: "hex_codec", want: false},
		{name: "utf_8", want: false},
		{name: "rot13", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Excluded(tt.name))
		})
	}
}
