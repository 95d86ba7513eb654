// SPDX-License-Identifier: MIT
package scale

import (
	"errors"
	"strings"
	"testing"

	"github.com/littlebrand/littlebrand/internal/oklch"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphaStrictlyIncreasing(t *testing.T) {
	for _, seed := range testSeeds() {
		for _, mode := range []Mode{Light, Dark} {
			a, err := GenerateAlpha(seed, mode)
			require.NoError(t, err)
			require.Len(t, a, Steps)

			for i := 1; i < Steps; i++ {
				assert.Greater(t, a[i].Alpha, a[i-1].Alpha, "%v %s step %d", seed, mode, i+1)
			}
		}
	}
}

func TestAlphaRanges(t *testing.T) {
	light, err := GenerateAlpha(Hex("#0090ff"), Light)
	require.NoError(t, err)
	assert.Equal(t, 0.012, light[0].Alpha)
	assert.Equal(t, 0.910, light[11].Alpha)

	dark, err := GenerateAlpha(Hex("#0090ff"), Dark)
	require.NoError(t, err)
	assert.Equal(t, 0.017, dark[0].Alpha)
	assert.Equal(t, 0.930, dark[11].Alpha)
}

func TestAlphaBaseColour(t *testing.T) {
	seed := OKLCH{L: 0.6, C: 0.2, H: 120}

	light, err := GenerateAlpha(seed, Light)
	require.NoError(t, err)
	dark, err := GenerateAlpha(seed, Dark)
	require.NoError(t, err)

	assert.InDelta(t, 0.55, light[5].Color.L, 1e-9)
	assert.InDelta(t, 0.65, dark[5].Color.L, 1e-9)
	assert.InDelta(t, 0.2, light[5].Color.C, 1e-9)
	assert.InDelta(t, 0.17, light[0].Color.C, 1e-9)
	assert.InDelta(t, 0.17, light[11].Color.C, 1e-9)
	assert.Equal(t, 120.0, dark[7].Color.H)
}

func TestAlphaMapFormat(t *testing.T) {
	a, err := GenerateAlpha(Hex("#22c55e"), Light)
	require.NoError(t, err)

	m := a.Map()
	require.Len(t, m, Steps)
	assert.True(t, strings.HasSuffix(m[1], " / 0.012)"), m[1])
	assert.True(t, strings.HasSuffix(m[12], " / 0.91)"), m[12])
}

func TestAlphaInvalidSeed(t *testing.T) {
	_, err := GenerateAlpha(Hex("nope"), Light)
	var colorErr *oklch.InvalidColorError
	assert.True(t, errors.As(err, &colorErr))

	a := AlphaOrEmpty(Hex("nope"), Dark, zerolog.Nop())
	assert.Empty(t, a)
	assert.Empty(t, a.Map())
}
