package main

import (
	"math"
	"testing"
)

func testPalette() Palette {
	return Palettes[0]
}

func TestBackgroundColorAt_FlatBaseline(t *testing.T) {
	got := BackgroundColorAt(BackgroundModeFlat, testPalette(), FPt(0.5, 0.5), 0)

	want := [4]float64{0.125, 0.125, 0.125, 1.0}
	if got != want {
		t.Errorf("flat baseline = %v, want %v", got, want)
	}
}

func TestBackgroundColorAt_FlatIgnoresInputs(t *testing.T) {
	tests := []struct {
		name string
		uv   FPoint
		time float64
	}{
		{"origin", FPt(0, 0), 0},
		{"corner", FPt(1, 1), 0},
		{"late", FPt(0.3, 0.7), 12345.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BackgroundColorAt(BackgroundModeFlat, testPalette(), tt.uv, tt.time)
			if got != FlatBackgroundColor {
				t.Errorf("flat color at %v, t=%v = %v, want %v",
					tt.uv, tt.time, got, FlatBackgroundColor)
			}
		})
	}
}

func TestBackgroundColorAt_Deterministic(t *testing.T) {
	modes := []BackgroundMode{
		BackgroundModeFlat,
		BackgroundModeNebula,
		BackgroundModePlasma,
	}

	samples := []struct {
		uv   FPoint
		time float64
	}{
		{FPt(0, 0), 0},
		{FPt(0.5, 0.5), 0},
		{FPt(0.25, 0.75), 1.5},
		{FPt(0.9, 0.1), 33.3},
		{FPt(1, 1), 1000},
	}

	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			for _, s := range samples {
				first := BackgroundColorAt(mode, testPalette(), s.uv, s.time)
				second := BackgroundColorAt(mode, testPalette(), s.uv, s.time)

				// bit identical, not approximately equal
				if first != second {
					t.Errorf("repeated call at %v, t=%v: %v then %v",
						s.uv, s.time, first, second)
				}
			}
		})
	}
}

func TestBackgroundColorAt_OutputBounds(t *testing.T) {
	modes := []BackgroundMode{
		BackgroundModeFlat,
		BackgroundModeNebula,
		BackgroundModePlasma,
	}

	times := []float64{0, 0.5, 1.7, 12.3, 100, 9999}

	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			for _, pal := range Palettes {
				for _, tm := range times {
					for y := 0.0; y <= 1.0; y += 0.125 {
						for x := 0.0; x <= 1.0; x += 0.125 {
							c := BackgroundColorAt(mode, pal, FPt(x, y), tm)

							for ch := 0; ch < 3; ch++ {
								if c[ch] < 0 || c[ch] > 1 {
									t.Fatalf("channel %d at (%v,%v) t=%v pal=%q out of bounds: %v",
										ch, x, y, tm, pal.Name, c[ch])
								}
							}

							if c[3] != 1 {
								t.Fatalf("alpha at (%v,%v) t=%v = %v, want 1",
									x, y, tm, c[3])
							}
						}
					}
				}
			}
		})
	}
}

func TestRotationMat2_Identity(t *testing.T) {
	points := []FPoint{
		FPt(0, 0),
		FPt(1, 0),
		FPt(0, 1),
		FPt(-3.5, 7.25),
		FPt(1e6, -1e-6),
	}

	rot := RotationMat2(0)

	for _, p := range points {
		got := rot.Apply(p)
		if math.Abs(got.X-p.X) > 1e-12 || math.Abs(got.Y-p.Y) > 1e-12 {
			t.Errorf("RotationMat2(0).Apply(%v) = %v, want unchanged", p, got)
		}
	}
}

func TestRotationMat2_Inverse(t *testing.T) {
	angles := []float64{0, 0.1, math.Pi / 3, math.Pi, 2 * math.Pi, -1.7, 123.456}

	p := FPt(2.5, -4.75)

	for _, a := range angles {
		got := RotationMat2(-a).Apply(RotationMat2(a).Apply(p))

		if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
			t.Errorf("R(-%v)(R(%v)(%v)) = %v, want original", a, a, p, got)
		}
	}
}

func TestRotationMat2_InverseComposition(t *testing.T) {
	angles := []float64{0.1, 1, -2.5, 10}

	for _, a := range angles {
		m := RotationMat2(a).Mul(RotationMat2(-a))

		if math.Abs(m.M00-1) > 1e-12 || math.Abs(m.M11-1) > 1e-12 ||
			math.Abs(m.M01) > 1e-12 || math.Abs(m.M10) > 1e-12 {
			t.Errorf("R(%v)*R(-%v) = %+v, want identity", a, a, m)
		}
	}
}

func TestLengthSquared(t *testing.T) {
	tests := []struct {
		name   string
		p      FPoint
		expect float64
	}{
		{"zero", FPt(0, 0), 0},
		{"unit x", FPt(1, 0), 1},
		{"unit y", FPt(0, 1), 1},
		{"3-4", FPt(3, 4), 25},
		{"negative", FPt(-3, -4), 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.LengthSquared()
			if got != tt.expect {
				t.Errorf("%v.LengthSquared() = %v, want %v", tt.p, got, tt.expect)
			}
			if got < 0 {
				t.Errorf("%v.LengthSquared() is negative", tt.p)
			}
		})
	}
}

func TestLinearStep(t *testing.T) {
	tests := []struct {
		name         string
		edge0, edge1 float64
		x            float64
		expect       float64
	}{
		{"below", 2, 4, 1, 0},
		{"at low edge", 2, 4, 2, 0},
		{"quarter", 2, 4, 2.5, 0.25},
		{"middle", 2, 4, 3, 0.5},
		{"at high edge", 2, 4, 4, 1},
		{"above", 2, 4, 100, 1},
		{"negative edges", -1, 1, 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearStep(tt.edge0, tt.edge1, tt.x)
			if math.Abs(got-tt.expect) > 1e-12 {
				t.Errorf("LinearStep(%v, %v, %v) = %v, want %v",
					tt.edge0, tt.edge1, tt.x, got, tt.expect)
			}
			if got < 0 || got > 1 {
				t.Errorf("LinearStep out of [0,1]: %v", got)
			}
		})
	}
}

func TestLinearStep_Linearity(t *testing.T) {
	// between the edges the ramp is a straight line:
	// value at the midpoint of two xs is the mean of their values
	x1, x2 := 2.2, 3.8
	v1 := LinearStep(2, 4, x1)
	v2 := LinearStep(2, 4, x2)
	vm := LinearStep(2, 4, (x1+x2)/2)

	if math.Abs(vm-(v1+v2)/2) > 1e-12 {
		t.Errorf("midpoint value %v, want %v", vm, (v1+v2)/2)
	}
}

func TestColorMixMatrix(t *testing.T) {
	// spot check one row against the raw constants times the 1.93 scale
	v := colorMixMatrix.Apply([3]float64{1, 0, 0})

	want := [3]float64{0.33338 * 1.93, -0.87887 * 1.93, 0.15162 * 1.93}

	for i := range v {
		if math.Abs(v[i]-want[i]) > 1e-12 {
			t.Errorf("column 0 channel %d = %v, want %v", i, v[i], want[i])
		}
	}
}

func TestFbm_Range(t *testing.T) {
	for _, z := range []float64{0, 0.7, 15.5} {
		for y := -2.0; y <= 2.0; y += 0.5 {
			for x := -2.0; x <= 2.0; x += 0.5 {
				n := fbm(FPt(x, y), z)
				if n < 0 || n > 1 {
					t.Fatalf("fbm(%v, %v, %v) = %v, want [0,1]", x, y, z, n)
				}
			}
		}
	}
}

func TestNebulaContinuity(t *testing.T) {
	// tiny steps in uv and time must produce tiny color steps
	const eps = 1e-5
	const maxJump = 0.02

	base := FPt(0.37, 0.61)
	baseT := 4.2

	c0 := BackgroundColorAt(BackgroundModeNebula, testPalette(), base, baseT)

	neighbors := []struct {
		name string
		uv   FPoint
		time float64
	}{
		{"uv x", base.Add(FPt(eps, 0)), baseT},
		{"uv y", base.Add(FPt(0, eps)), baseT},
		{"time", base, baseT + eps},
	}

	for _, nb := range neighbors {
		c1 := BackgroundColorAt(BackgroundModeNebula, testPalette(), nb.uv, nb.time)

		for ch := range c0 {
			if math.Abs(c0[ch]-c1[ch]) > maxJump {
				t.Errorf("%s: channel %d jumped from %v to %v over a %v step",
					nb.name, ch, c0[ch], c1[ch], eps)
			}
		}
	}
}
