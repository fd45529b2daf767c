package intellisense_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimelords/skinlang/pkg/intellisense"
)

func TestParseColor_Roundtrip(t *testing.T) {
	for _, text := range []string{"#ff0000", "#00ff00ff", "#abc", "#abcd", "#112233"} {
		c, ok := intellisense.ParseColor(text)
		require.True(t, ok, text)

		reparsed, ok := intellisense.ParseColor(c.String())
		require.True(t, ok)
		assert.True(t, c.Equal(reparsed), "round-trip mismatch for %s: %v vs %v", text, c, reparsed)
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, text := range []string{"red", "#ggg", "", "#12"} {
		_, ok := intellisense.ParseColor(text)
		assert.False(t, ok, text)
	}
}

func TestParseColor_ShorthandDoublesDigits(t *testing.T) {
	c, ok := intellisense.ParseColor("#f00")
	require.True(t, ok)
	assert.Equal(t, intellisense.Color{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, c)
}
