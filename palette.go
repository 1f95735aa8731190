package main

import (
	"image/color"
)

// Palette is four color stops the kernel ramps across.
type Palette struct {
	Name  string
	Stops [4]color.NRGBA
}

// palette definitions, parsed from css color strings at startup
var paletteDefs = []struct {
	name  string
	stops [4]string
}{
	{
		name:  "deep space",
		stops: [4]string{"#05020f", "#3b1f5e", "rebeccapurple", "#f2b5d4"},
	},
	{
		name:  "ember",
		stops: [4]string{"#0c0303", "#52160b", "#c2571d", "#ffd39a"},
	},
	{
		name:  "abyss",
		stops: [4]string{"#020810", "teal", "#3fc1c9", "#eaf6f6"},
	},
	{
		name:  "aurora",
		stops: [4]string{"#02040a", "#0b3d2e", "springgreen", "#d6f8ff"},
	},
}

var Palettes []Palette

func init() {
	for _, def := range paletteDefs {
		pal := Palette{Name: def.name}

		for i, str := range def.stops {
			clr, err := ParseColorString(str)
			if err != nil {
				// palette strings are compile time constants,
				// failing to parse one is a bug
				panic("palette \"" + def.name + "\": " + err.Error())
			}
			pal.Stops[i] = clr
		}

		Palettes = append(Palettes, pal)
	}
}

// Ramp maps t in [0,1] to a color along the palette stops.
// Out of range t is clamped. Channels come back normalized to [0,1].
func (pl Palette) Ramp(t float64) [4]float64 {
	t = Clamp(t, 0, 1)

	const segment = 1.0 / 3.0

	index := int(t / segment)
	if index > 2 {
		index = 2
	}

	local := Clamp((t-f64(index)*segment)/segment, 0, 1)

	c1 := ColorNormalized(pl.Stops[index], false)
	c2 := ColorNormalized(pl.Stops[index+1], false)

	return [4]float64{
		Clamp(Lerp(c1[0], c2[0], local), 0, 1),
		Clamp(Lerp(c1[1], c2[1], local), 0, 1),
		Clamp(Lerp(c1[2], c2[2], local), 0, 1),
		Clamp(Lerp(c1[3], c2[3], local), 0, 1),
	}
}
