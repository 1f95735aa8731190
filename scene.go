package main

import (
	"math"
	"math/rand"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// Scene is the 2d content drawn over the background, a star field and
// a few orbiting rings. It exists so the backdrop has something to be
// behind.

type Star struct {
	Pos FPoint // in uv space, scaled to the screen when drawn

	Radius float64

	TwinkleRate  float64
	TwinklePhase float64

	Hue float64
}

type Scene struct {
	Stars []Star
}

const sceneStarCount = 70

func NewScene() *Scene {
	s := new(Scene)

	// fixed seed, the scene looks the same on every run
	rng := rand.New(rand.NewSource(42))

	for range sceneStarCount {
		s.Stars = append(s.Stars, Star{
			Pos:          FPt(rng.Float64(), rng.Float64()),
			Radius:       0.8 + rng.Float64()*1.8,
			TwinkleRate:  0.6 + rng.Float64()*2.2,
			TwinklePhase: rng.Float64() * math.Pi * 2,
			Hue:          rng.Float64() * math.Pi * 2,
		})
	}

	return s
}

func (s *Scene) Update() error {
	return nil
}

func (s *Scene) Draw(dst *eb.Image) {
	t := GlobalTimerSeconds()

	screen := FPt(ScreenWidth, ScreenHeight)

	for _, star := range s.Stars {
		pos := star.Pos.Mul(screen)

		twinkle := 0.5 + 0.5*math.Sin(t*star.TwinkleRate+star.TwinklePhase)

		clr := ColorFade(
			ColorFromHSV(star.Hue, 0.25, 1),
			0.35+0.6*twinkle,
		)

		DrawFilledCircle(
			dst,
			pos.X, pos.Y,
			star.Radius*(0.8+0.4*twinkle),
			clr,
			IsAntiAliasOn(),
		)
	}

	s.drawRings(dst, t)
}

func (s *Scene) drawRings(dst *eb.Image, t float64) {
	center := FPt(ScreenWidth, ScreenHeight).Scale(0.5)

	minSide := min(ScreenWidth, ScreenHeight)

	for i := 0; i < 3; i++ {
		orbit := minSide * (0.12 + 0.09*f64(i))
		angle := t*(0.25-0.09*f64(i)) + f64(i)*math.Pi*2/3

		pos := center.Add(FPt(orbit, 0).Rotate(angle))

		// slow pulse between two tints
		pulse := 0.5 + 0.5*math.Sin(t*0.7+f64(i))
		clr := LerpColorRGBA(
			ColorFromHSV(f64(i)*2.1, 0.4, 1),
			ColorFromHSV(f64(i)*2.1+0.8, 0.7, 0.9),
			pulse,
		)

		StrokeCircle(dst, pos.X, pos.Y, minSide*0.03, 2, ColorFade(clr, 0.8), IsAntiAliasOn())
	}
}
