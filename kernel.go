package main

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// The background color kernel.
//
// Everything in this file is pure math: one call per pixel, no state
// shared between calls, fully determined by (mode, palette, uv, time).
// The Kage shader in assets/nebula_shader.go mirrors the nebula path,
// this is the reference and the software fallback.

type BackgroundMode int

const (
	// BackgroundModeFlat paints the solid placeholder color.
	BackgroundModeFlat BackgroundMode = iota
	// BackgroundModeNebula is the domain-warped fractal effect.
	BackgroundModeNebula
	// BackgroundModePlasma layers simplex noise instead of the
	// sin/cos channel mix.
	BackgroundModePlasma

	BackgroundModeCount
)

func (m BackgroundMode) String() string {
	switch m {
	case BackgroundModeFlat:
		return "flat"
	case BackgroundModeNebula:
		return "nebula"
	case BackgroundModePlasma:
		return "plasma"
	default:
		return "unknown"
	}
}

var FlatBackgroundColor = [4]float64{0.125, 0.125, 0.125, 1.0}

// colorMixMatrix cross-mixes the three accumulated channels once per
// octave so no channel stays aligned with an input axis.
var colorMixMatrix = Mat3{M: [3][3]float64{
	{0.33338, 0.56034, -0.71817},
	{-0.87887, 0.32651, -0.15323},
	{0.15162, 0.69596, 0.61339},
}}.Scale(1.93)

const (
	nebulaOctaves      = 5
	nebulaLacunarity   = 1.9
	nebulaGain         = 0.55
	nebulaWarpStrength = 0.4
	nebulaFalloff      = 0.08
)

// per octave spin rate in radians per second
var nebulaSpinRates = [nebulaOctaves]float64{0.11, -0.17, 0.23, -0.08, 0.14}

// fixed per octave phase so the octaves don't line up at time 0
var nebulaSpinPhases = [nebulaOctaves]float64{0, 2.4, 4.1, 1.3, 5.2}

// BackgroundColorAt returns the RGBA background color for one pixel.
// uv is in [0,1] x [0,1], t is seconds. Channels come back clamped to
// [0,1] and alpha is always 1.
func BackgroundColorAt(
	mode BackgroundMode,
	pal Palette,
	uv FPoint,
	t float64,
) [4]float64 {
	switch mode {
	case BackgroundModeNebula:
		return nebulaColorAt(pal, uv, t)
	case BackgroundModePlasma:
		return plasmaColorAt(pal, uv, t)
	default:
		return FlatBackgroundColor
	}
}

func nebulaColorAt(pal Palette, uv FPoint, t float64) [4]float64 {
	p := uv.Sub(FPt(0.5, 0.5)).Scale(3)

	var sum [3]float64
	amp := 0.5

	for i := 0; i < nebulaOctaves; i++ {
		p = RotationMat2(t*nebulaSpinRates[i] + nebulaSpinPhases[i]).Apply(p)

		v := colorMixMatrix.Apply([3]float64{
			math.Sin(p.X + t*0.31),
			math.Cos(p.Y - t*0.27),
			math.Sin((p.X+p.Y)*0.7 + t*0.19),
		})

		// samples that warped far from the center contribute less
		falloff := 1 / (1 + p.LengthSquared()*nebulaFalloff)

		sum[0] += v[0] * amp * falloff
		sum[1] += v[1] * amp * falloff
		sum[2] += v[2] * amp * falloff

		// feed the mixed channels back in before the next octave
		p = p.Scale(nebulaLacunarity).
			Add(FPt(v[0], v[1]).Scale(nebulaWarpStrength))

		amp *= nebulaGain
	}

	field := sum[0]*0.45 + sum[1]*0.35 + sum[2]*0.20

	// bright shell where the field crosses over
	shell := LinearStep(-0.35, 0.85, field)

	// squared distance vignette, no sqrt needed
	vignette := 1 - 0.55*LinearStep(0.12, 0.52, uv.Sub(FPt(0.5, 0.5)).LengthSquared())

	base := pal.Ramp(shell)

	return [4]float64{
		Clamp((base[0]+sum[0]*0.20)*vignette, 0, 1),
		Clamp((base[1]+sum[1]*0.20)*vignette, 0, 1),
		Clamp((base[2]+sum[2]*0.20)*vignette, 0, 1),
		1,
	}
}

// =================================
// plasma variant
// =================================

const (
	plasmaOctaves     = 4
	plasmaPersistence = 0.5
	plasmaSeed        = 1789
)

// seeded once, read only afterwards
var plasmaNoise = opensimplex.NewNormalized(plasmaSeed)

// fbm sums plasmaOctaves layers of simplex noise, doubling frequency
// and scaling amplitude by persistence each layer. Result is in [0,1].
func fbm(p FPoint, z float64) float64 {
	var total, maxValue float64
	amplitude := 1.0
	frequency := 1.0

	for i := 0; i < plasmaOctaves; i++ {
		total += plasmaNoise.Eval3(p.X*frequency, p.Y*frequency, z) * amplitude
		maxValue += amplitude
		amplitude *= plasmaPersistence
		frequency *= 2
	}

	return total / maxValue
}

func plasmaColorAt(pal Palette, uv FPoint, t float64) [4]float64 {
	center := FPt(0.5, 0.5)

	p := uv.Sub(center)
	p = RotationMat2(math.Sin(t*0.05) * 0.6).Apply(p)
	p = p.Add(center).Scale(3)

	n := fbm(p, t*0.07)

	// second tap warps the first, same trick as the nebula path
	w := fbm(p.Add(FPt(n*0.9, -n*0.7)), t*0.07+11.3)

	base := pal.Ramp(LinearStep(0.15, 0.85, n*0.65+w*0.35))

	glow := 1 - 0.45*LinearStep(0.10, 0.50, uv.Sub(center).LengthSquared())

	return [4]float64{
		Clamp(base[0]*glow, 0, 1),
		Clamp(base[1]*glow, 0, 1),
		Clamp(base[2]*glow, 0, 1),
		1,
	}
}
