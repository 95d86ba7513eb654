// SPDX-License-Identifier: MIT
package scale

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/littlebrand/littlebrand/internal/oklch"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeed(t *testing.T) {
	tests := []struct {
		in   string
		want Seed
	}{
		{"#F76B15", Hex("#F76B15")},
		{"  f76b15 ", Hex("f76b15")},
		{"rgb(247, 107, 21)", RGB{R: 247, G: 107, B: 21}},
		{"rgb(0 0 0)", RGB{}},
		{"oklch(0.7 0.19 45)", OKLCH{L: 0.7, C: 0.19, H: 45}},
		{"OKLCH(70% 0.19 405)", OKLCH{L: 0.7, C: 0.19, H: 45}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeed(tt.in)
			require.NoError(t, err)
			if want, ok := tt.want.(OKLCH); ok {
				o, ok := got.(OKLCH)
				require.True(t, ok, "got %T", got)
				assert.InDelta(t, want.L, o.L, 1e-9)
				assert.InDelta(t, want.C, o.C, 1e-9)
				assert.InDelta(t, want.H, o.H, 1e-9)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSeedInvalid(t *testing.T) {
	for _, in := range []string{"", "red", "#fff", "rgb(300, 0, 0)", "rgb(1,2)", "oklch(a b c)"} {
		_, err := ParseSeed(in)
		var colorErr *oklch.InvalidColorError
		assert.True(t, errors.As(err, &colorErr), "input %q: %v", in, err)
	}
}

func TestSeedKindsAgree(t *testing.T) {
	fromHex, err := Hex("#6366f1").Resolve()
	require.NoError(t, err)
	fromRGB, err := RGB{R: 0x63, G: 0x66, B: 0xf1}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, fromHex, fromRGB)

	fromOKLCH, err := OKLCH{L: fromHex.L, C: fromHex.C, H: fromHex.H - 360}.Resolve()
	require.NoError(t, err)
	assert.InDelta(t, fromHex.H, fromOKLCH.H, 1e-9)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Dark")
	require.NoError(t, err)
	assert.Equal(t, Dark, m)

	m, err = ParseMode("light")
	require.NoError(t, err)
	assert.Equal(t, Light, m)

	m, err = ParseMode("dusk")
	var modeErr *InvalidModeError
	require.True(t, errors.As(err, &modeErr))
	assert.Equal(t, "dusk", modeErr.Mode)
	assert.Equal(t, Light, m)
}

func TestModeOrLightLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	assert.Equal(t, Light, ModeOrLight("sepia", logger))
	assert.True(t, strings.Contains(buf.String(), "falling back to light mode"))

	buf.Reset()
	assert.Equal(t, Dark, ModeOrLight("dark", logger))
	assert.Empty(t, buf.String())
}

func TestParseCurve(t *testing.T) {
	c, err := ParseCurve("")
	require.NoError(t, err)
	assert.Equal(t, Natural, c)

	c, err = ParseCurve("VIVID")
	require.NoError(t, err)
	assert.Equal(t, Vivid, c)

	_, err = ParseCurve("pastel")
	assert.Error(t, err)
}
