// SPDX-License-Identifier: MIT
package scale

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/littlebrand/littlebrand/internal/oklch"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeeds() []Seed {
	seeds := []Seed{
		Hex("#f76b15"), Hex("#6366f1"), Hex("#22c55e"), Hex("#f59e0b"),
		Hex("#ef4444"), Hex("#0090ff"), Hex("#6b7280"), Hex("#FFFFFF"),
		Hex("#000000"), Hex("#ffe600"), Hex("00bfa5"),
		RGB{R: 255, G: 0, B: 128}, RGB{R: 10, G: 20, B: 30},
		OKLCH{L: 0.5, C: 0.2, H: -20}, OKLCH{L: 0.98, C: 0.05, H: 95},
		OKLCH{L: 0.05, C: 0.4, H: 359.9}, OKLCH{L: 1, C: 0, H: 0},
	}
	for h := 0; h < 360; h += 30 {
		seeds = append(seeds, OKLCH{L: 0.62, C: 0.17, H: float64(h)})
	}
	return seeds
}

func TestStepNineIsSeed(t *testing.T) {
	for _, seed := range testSeeds() {
		want, err := seed.Resolve()
		require.NoError(t, err)

		for _, mode := range []Mode{Light, Dark} {
			for _, curve := range []Curve{Natural, Vivid, Muted} {
				s, err := Generate(seed, mode, WithCurve(curve))
				require.NoError(t, err)

				got := s.Step(BaseStep)
				assert.InDelta(t, want.L, got.L, 1e-6, "%v %s", seed, mode)
				assert.InDelta(t, want.C, got.C, 1e-6, "%v %s", seed, mode)
				assert.InDelta(t, want.H, got.H, 1e-6, "%v %s", seed, mode)
			}
		}
	}
}

func TestLightnessMonotonic(t *testing.T) {
	for _, seed := range testSeeds() {
		light, err := Generate(seed, Light)
		require.NoError(t, err)
		dark, err := Generate(seed, Dark)
		require.NoError(t, err)

		for i := 2; i <= 8; i++ {
			assert.LessOrEqual(t, light.Step(i).L, light.Step(i-1).L, "light %v step %d", seed, i)
			assert.GreaterOrEqual(t, dark.Step(i).L, dark.Step(i-1).L, "dark %v step %d", seed, i)
		}
		for i := 10; i <= 12; i++ {
			assert.LessOrEqual(t, light.Step(i).L, light.Step(i-1).L, "light %v step %d", seed, i)
			assert.GreaterOrEqual(t, dark.Step(i).L, dark.Step(i-1).L, "dark %v step %d", seed, i)
		}
	}
}

func TestStepsWithinBounds(t *testing.T) {
	for _, seed := range testSeeds() {
		for _, mode := range []Mode{Light, Dark} {
			s, err := Generate(seed, mode, WithCurve(Vivid))
			require.NoError(t, err)
			for i := 1; i <= Steps; i++ {
				c := s.Step(i)
				assert.True(t, c.L >= 0 && c.L <= 1, "L out of range: %v", c)
				assert.True(t, c.C >= 0 && c.C <= oklch.MaxChroma, "C out of range: %v", c)
				assert.True(t, c.H >= 0 && c.H < 360, "H out of range: %v", c)
			}
		}
	}
}

func TestLightLadderIgnoresSeed(t *testing.T) {
	a, err := Generate(Hex("#f76b15"), Light)
	require.NoError(t, err)
	b, err := Generate(Hex("#0090ff"), Light)
	require.NoError(t, err)

	for i := 1; i <= 8; i++ {
		assert.Equal(t, a.Step(i).L, b.Step(i).L, "step %d", i)
	}
	assert.InDelta(t, 0.993, a.Step(1).L, 1e-9)
}

func TestRadixOrange(t *testing.T) {
	seed := Hex("#f76b15")

	light, err := Generate(seed, Light)
	require.NoError(t, err)
	nine := light.Step(9)
	assert.InDelta(t, 0.70, nine.L, 0.02)
	assert.InDelta(t, 0.19, nine.C, 0.01)
	assert.True(t, nine.H > 40 && nine.H < 46)

	dark, err := Generate(seed, Dark)
	require.NoError(t, err)
	assert.InDelta(t, 0.187, dark.Step(1).L, 1e-9)
	assert.InDelta(t, 0.187+0.338, dark.Step(8).L, 1e-9)
	assert.InDelta(t, 0.935, dark.Step(12).L, 1e-9)
}

func TestHueBuckets(t *testing.T) {
	tests := []struct {
		hue       float64
		darkStep1 float64
		lightLast float64
	}{
		{45, 0.187, 0.33},
		{100, 0.183, 0.30},
		{150, 0.181, 0.32},
		{250, 0.178, 0.31},
		{10, 0.180, 0.33},
		{300, 0.180, 0.33},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("hue %.0f", tt.hue), func(t *testing.T) {
			seed := OKLCH{L: 0.65, C: 0.15, H: tt.hue}
			dark, err := Generate(seed, Dark)
			require.NoError(t, err)
			assert.InDelta(t, tt.darkStep1, dark.Step(1).L, 1e-9)

			light, err := Generate(seed, Light)
			require.NoError(t, err)
			assert.InDelta(t, tt.lightLast, light.Step(12).L, 1e-9)
		})
	}
}

func TestHueDrift(t *testing.T) {
	seed := OKLCH{L: 0.6, C: 0.15, H: 1}

	light, err := Generate(seed, Light)
	require.NoError(t, err)
	assert.InDelta(t, 3, light.Step(1).H, 1e-9)
	assert.InDelta(t, 1, light.Step(5).H, 1e-9)
	assert.InDelta(t, 358, light.Step(12).H, 1e-9)

	dark, err := Generate(seed, Dark)
	require.NoError(t, err)
	assert.InDelta(t, 359, dark.Step(2).H, 1e-9)
	assert.InDelta(t, 4, dark.Step(11).H, 1e-9)
}

func TestCurveScalesChroma(t *testing.T) {
	seed := OKLCH{L: 0.6, C: 0.1, H: 200}

	natural, err := Generate(seed, Light)
	require.NoError(t, err)
	vivid, err := Generate(seed, Light, WithCurve(Vivid))
	require.NoError(t, err)
	muted, err := Generate(seed, Light, WithCurve(Muted))
	require.NoError(t, err)

	assert.InDelta(t, natural.Step(6).C*1.15, vivid.Step(6).C, 1e-9)
	assert.InDelta(t, natural.Step(6).C*0.8, muted.Step(6).C, 1e-9)
	assert.Equal(t, natural.Step(9), vivid.Step(9))
	assert.Equal(t, natural.Step(6).L, muted.Step(6).L)
}

func TestGenerateInvalidSeed(t *testing.T) {
	for _, seed := range []Seed{Hex("not-a-color"), OKLCH{L: 2}, OKLCH{L: 0.5, C: -1}, OKLCH{L: math.NaN()}, nil} {
		_, err := Generate(seed, Light)
		var colorErr *oklch.InvalidColorError
		assert.True(t, errors.As(err, &colorErr), "seed %v", seed)
	}
}

func TestFallbackSafety(t *testing.T) {
	s := GenerateOrFallback(Hex("not-a-color"), Light, zerolog.Nop())

	m := s.Map()
	require.Len(t, m, Steps)
	for i := 1; i <= Steps; i++ {
		assert.Equal(t, 0.0, s.Step(i).C)
		if i > 1 {
			assert.Less(t, s.Step(i).L, s.Step(i-1).L)
		}
	}
	assert.Equal(t, "oklch(0.99 0.000 0.0)", m[1])
	assert.Equal(t, "oklch(0.11 0.000 0.0)", m[12])

	dark := GenerateOrFallback(Hex("#12"), Dark, zerolog.Nop())
	assert.Equal(t, Dark, dark.Mode)
	assert.InDelta(t, 0.11, dark.Step(1).L, 1e-9)
}

func TestOKLCHSeedChromaCapped(t *testing.T) {
	s, err := Generate(OKLCH{L: 0.6, C: 0.9, H: 30}, Light)
	require.NoError(t, err)
	assert.Equal(t, oklch.MaxChroma, s.Step(9).C)
}

func TestScaleMap(t *testing.T) {
	s, err := Generate(Hex("#0090ff"), Light)
	require.NoError(t, err)

	m := s.Map()
	require.Len(t, m, Steps)
	for i := 1; i <= Steps; i++ {
		assert.Equal(t, oklch.Format(s.Step(i)), m[i])
	}
}

func TestNewReport(t *testing.T) {
	s, err := Generate(Hex("#f76b15"), Dark, WithCurve(Muted))
	require.NoError(t, err)

	r := NewReport("#f76b15", s, Muted, nil)
	assert.Equal(t, "dark", r.Mode)
	assert.Equal(t, "muted", r.Curve)
	assert.Equal(t, s.CSS(9), r.Steps[9])
	assert.Nil(t, r.Alpha)

	alpha, err := GenerateAlpha(Hex("#f76b15"), Dark)
	require.NoError(t, err)
	r = NewReport("#f76b15", s, Muted, alpha)
	assert.Len(t, r.Alpha, 12)
}
