//go:build ignore

//kage:unit pixels

package main

// Uniform variables.
var Time float
var ScreenSize vec2
var UseFlat float
var FlatColor vec4
var Colors [4]vec4

// rotate by [[cos, sin], [-sin, cos]], same as the cpu kernel
func rotate2(v vec2, theta float) vec2 {
	c := cos(theta)
	s := sin(theta)
	return vec2(v.x*c+v.y*s, -v.x*s+v.y*c)
}

func linearStep(edge0, edge1, x float) float {
	return clamp((x-edge0)/(edge1-edge0), 0, 1)
}

func mixChannels(v vec3) vec3 {
	return vec3(
		dot(vec3(0.33338, 0.56034, -0.71817), v),
		dot(vec3(-0.87887, 0.32651, -0.15323), v),
		dot(vec3(0.15162, 0.69596, 0.61339), v),
	) * 1.93
}

func colorRamp(t float) vec4 {
	t = clamp(t, 0, 1)

	if t < 1.0/3.0 {
		return mix(Colors[0], Colors[1], t*3.0)
	} else if t < 2.0/3.0 {
		return mix(Colors[1], Colors[2], (t-1.0/3.0)*3.0)
	}
	return mix(Colors[2], Colors[3], (t-2.0/3.0)*3.0)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	if UseFlat > 0.5 {
		return FlatColor
	}

	uv := (dstPos.xy - imageDstOrigin()) / ScreenSize

	p := (uv - vec2(0.5, 0.5)) * 3.0

	var rates [5]float
	rates[0] = 0.11
	rates[1] = -0.17
	rates[2] = 0.23
	rates[3] = -0.08
	rates[4] = 0.14

	var phases [5]float
	phases[0] = 0.0
	phases[1] = 2.4
	phases[2] = 4.1
	phases[3] = 1.3
	phases[4] = 5.2

	sum := vec3(0.0)
	amp := 0.5

	for i := 0; i < 5; i++ {
		p = rotate2(p, Time*rates[i]+phases[i])

		v := mixChannels(vec3(
			sin(p.x+Time*0.31),
			cos(p.y-Time*0.27),
			sin((p.x+p.y)*0.7+Time*0.19),
		))

		falloff := 1.0 / (1.0 + dot(p, p)*0.08)

		sum += v * amp * falloff

		p = p*1.9 + v.xy*0.4

		amp *= 0.55
	}

	field := sum.x*0.45 + sum.y*0.35 + sum.z*0.20
	shell := linearStep(-0.35, 0.85, field)

	centered := uv - vec2(0.5, 0.5)
	vignette := 1.0 - 0.55*linearStep(0.12, 0.52, dot(centered, centered))

	base := colorRamp(shell)

	rgb := clamp((base.xyz+sum*0.20)*vignette, vec3(0.0), vec3(1.0))

	return vec4(rgb, 1.0)
}
