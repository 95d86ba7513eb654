// SPDX-License-Identifier: MIT

// Package oklch converts between sRGB, linear RGB, OKLab and OKLCH.
package oklch

import (
	"math"
)

// MaxChroma is the practical chroma ceiling used throughout the scale math.
const MaxChroma = 0.4

// RGB is an 8-bit sRGB colour without alpha.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Lab is a colour in the OKLab space. A and B are unbounded opponent axes.
type Lab struct {
	L float64
	A float64
	B float64
}

// Color is an OKLCH colour. H is kept in [0,360).
type Color struct {
	L float64
	C float64
	H float64
}

// rgbToLinear removes the sRGB transfer curve from one channel.
func rgbToLinear(v uint8) float64 {
	n := float64(v) / 255
	if n <= 0.04045 {
		return n / 12.92
	}
	return math.Pow((n+0.055)/1.055, 2.4)
}

// linearToRGB re-applies the sRGB transfer curve and quantises to a byte.
func linearToRGB(v float64) uint8 {
	v = clamp(v, 0, 1)
	if v <= 0.0031308 {
		v *= 12.92
	} else {
		v = 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return uint8(clamp(math.Round(v*255), 0, 255))
}

// ToLab converts an sRGB colour to OKLab via linear RGB and XYZ (D65).
func ToLab(c RGB) Lab {
	lr := rgbToLinear(c.R)
	lg := rgbToLinear(c.G)
	lb := rgbToLinear(c.B)

	x := 0.4124564*lr + 0.3575761*lg + 0.1804375*lb
	y := 0.2126729*lr + 0.7151522*lg + 0.0721750*lb
	z := 0.0193339*lr + 0.1191920*lg + 0.9503041*lb

	l := math.Cbrt(0.8189330101*x + 0.3618667424*y - 0.1288597137*z)
	m := math.Cbrt(0.0329845436*x + 0.9293118715*y + 0.0361456387*z)
	s := math.Cbrt(0.0482003018*x + 0.2643662691*y + 0.6338517070*z)

	return Lab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// FromLab converts OKLab back to sRGB. Out-of-gamut channels are clipped.
func FromLab(lab Lab) RGB {
	l := cube(lab.L + 0.3963377774*lab.A + 0.2158037573*lab.B)
	m := cube(lab.L - 0.1055613458*lab.A - 0.0638541728*lab.B)
	s := cube(lab.L - 0.0894841775*lab.A - 1.2914855480*lab.B)

	lr := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	lg := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	lb := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return RGB{R: linearToRGB(lr), G: linearToRGB(lg), B: linearToRGB(lb)}
}

// LCH returns the polar form of an OKLab colour.
func (lab Lab) LCH() Color {
	h := math.Atan2(lab.B, lab.A) * 180 / math.Pi
	return Color{
		L: lab.L,
		C: math.Sqrt(lab.A*lab.A + lab.B*lab.B),
		H: NormalizeHue(h),
	}
}

// Lab returns the rectangular form of an OKLCH colour.
func (c Color) Lab() Lab {
	rad := c.H * math.Pi / 180
	return Lab{L: c.L, A: c.C * math.Cos(rad), B: c.C * math.Sin(rad)}
}

// RGBToOKLCH converts an sRGB colour to OKLCH.
func RGBToOKLCH(c RGB) Color {
	return ToLab(c).LCH()
}

// ToRGB converts an OKLCH colour to sRGB, rounding and clamping each channel.
func ToRGB(c Color) RGB {
	return FromLab(c.Lab())
}

// NormalizeHue wraps an angle in degrees into [0,360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// math.Mod(-1e-17, 360)+360 rounds to 360
	if h >= 360 {
		h = 0
	}
	return h
}

// Clamped returns c with L in [0,1], C in [0,MaxChroma] and H normalised.
func (c Color) Clamped() Color {
	return Color{
		L: clamp(c.L, 0, 1),
		C: clamp(c.C, 0, MaxChroma),
		H: NormalizeHue(c.H),
	}
}

func cube(v float64) float64 {
	return v * v * v
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
