package main

import (
	"image/color"
	"math"
	"testing"
)

func TestParseColorString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		expect  color.NRGBA
		wantErr bool
	}{
		{"hex", "#ff0000", color.NRGBA{255, 0, 0, 255}, false},
		{"hex with alpha", "#00ff0080", color.NRGBA{0, 255, 0, 128}, false},
		{"named", "rebeccapurple", color.NRGBA{102, 51, 153, 255}, false},
		{"rgb()", "rgb(0, 0, 255)", color.NRGBA{0, 0, 255, 255}, false},
		{"garbage", "not a color", color.NRGBA{}, true},
		{"empty", "", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColorString(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseColorString(%q) expected an error", tt.input)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseColorString(%q): %v", tt.input, err)
			}
			if got != tt.expect {
				t.Errorf("ParseColorString(%q) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestColorToString_Roundtrip(t *testing.T) {
	colors := []color.NRGBA{
		{255, 0, 0, 255},
		{0, 128, 64, 255},
		{10, 20, 30, 40},
	}

	for _, clr := range colors {
		str := ColorToString(clr)

		parsed, err := ParseColorString(str)
		if err != nil {
			t.Fatalf("ParseColorString(%q): %v", str, err)
		}

		if parsed != clr {
			t.Errorf("roundtrip of %v through %q gave %v", clr, str, parsed)
		}
	}
}

func TestColorNormalized(t *testing.T) {
	clr := color.NRGBA{255, 0, 128, 128}

	plain := ColorNormalized(clr, false)
	if plain[0] != 1 || plain[1] != 0 {
		t.Errorf("normalized = %v", plain)
	}

	premul := ColorNormalized(clr, true)
	if premul[0] >= plain[0] {
		t.Errorf("premultiplied red %v not reduced from %v", premul[0], plain[0])
	}
	if premul[3] != plain[3] {
		t.Errorf("premultiply changed alpha: %v vs %v", premul[3], plain[3])
	}
}

func TestLerpColorRGBA(t *testing.T) {
	c1 := color.NRGBA{0, 0, 0, 255}
	c2 := color.NRGBA{255, 255, 255, 255}

	if got := LerpColorRGBA(c1, c2, 0); got != c1 {
		t.Errorf("t=0 gave %v, want %v", got, c1)
	}
	if got := LerpColorRGBA(c1, c2, 1); got != c2 {
		t.Errorf("t=1 gave %v, want %v", got, c2)
	}

	mid := LerpColorRGBA(c1, c2, 0.5)
	if mid.R < 126 || mid.R > 129 {
		t.Errorf("midpoint red = %v, want about 127", mid.R)
	}
}

func TestColorFromHSV(t *testing.T) {
	red := ColorFromHSV(0, 1, 1)
	if red.R != 255 || red.G != 0 || red.B != 0 {
		t.Errorf("hue 0 = %v, want pure red", red)
	}

	gray := ColorFromHSV(1.2, 0, 0.5)
	if gray.R != gray.G || gray.G != gray.B {
		t.Errorf("zero saturation should be gray, got %v", gray)
	}

	// hue wraps
	a := ColorFromHSV(0.3, 0.8, 0.9)
	b := ColorFromHSV(0.3+2*3.141592653589793, 0.8, 0.9)
	if a != b {
		t.Errorf("hue wrap: %v != %v", a, b)
	}
}

func TestColorFade(t *testing.T) {
	clr := color.NRGBA{100, 150, 200, 255}

	faded := ColorFade(clr, 0.5)

	if faded.R != 100 || faded.G != 150 || faded.B != 200 {
		t.Errorf("fade changed rgb: %v", faded)
	}
	if faded.A < 126 || faded.A > 128 {
		t.Errorf("fade alpha = %v, want about 127", faded.A)
	}
}

func TestPalettes(t *testing.T) {
	if len(Palettes) == 0 {
		t.Fatal("no palettes registered")
	}

	for _, pal := range Palettes {
		t.Run(pal.Name, func(t *testing.T) {
			for i, stop := range pal.Stops {
				if stop.A != 255 {
					t.Errorf("stop %d has alpha %d, palettes must be opaque", i, stop.A)
				}
			}
		})
	}
}

func TestPalette_Ramp(t *testing.T) {
	pal := Palettes[0]

	approxEq := func(a, b [4]float64) bool {
		for i := range a {
			if math.Abs(a[i]-b[i]) > 1e-9 {
				return false
			}
		}
		return true
	}

	start := pal.Ramp(0)
	wantStart := ColorNormalized(pal.Stops[0], false)
	if !approxEq(start, wantStart) {
		t.Errorf("Ramp(0) = %v, want first stop %v", start, wantStart)
	}

	end := pal.Ramp(1)
	wantEnd := ColorNormalized(pal.Stops[3], false)
	if !approxEq(end, wantEnd) {
		t.Errorf("Ramp(1) = %v, want last stop %v", end, wantEnd)
	}

	// out of range t clamps instead of wrapping
	if !approxEq(pal.Ramp(-5), start) || !approxEq(pal.Ramp(7), end) {
		t.Error("out of range t should clamp to the end stops")
	}

	for tv := 0.0; tv <= 1.0; tv += 0.05 {
		c := pal.Ramp(tv)
		for ch, v := range c {
			if v < 0 || v > 1 {
				t.Fatalf("Ramp(%v) channel %d = %v, out of [0,1]", tv, ch, v)
			}
		}
	}
}
