package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

// Background paints the animated procedural backdrop behind the scene.
// The shader path and the software path evaluate the same effect, the
// cpu kernel in kernel.go is the reference.
type Background struct {
	Mode         BackgroundMode
	PaletteIndex int

	// Software forces the cpu path even when the shader compiled.
	Software bool

	softwareBuf []byte
	softwareImg *eb.Image
}

// software rendering runs the kernel at a reduced resolution and
// lets the linear filter stretch it back up
const softwareDownscale = 2

func NewBackground() *Background {
	return &Background{
		Mode: BackgroundModeNebula,
	}
}

func (bg *Background) Palette() Palette {
	return Palettes[bg.PaletteIndex]
}

func (bg *Background) CycleMode() {
	bg.Mode = (bg.Mode + 1) % BackgroundModeCount
}

func (bg *Background) CyclePalette() {
	bg.PaletteIndex = (bg.PaletteIndex + 1) % len(Palettes)
}

// ColorAt evaluates the kernel for one screen position in uv space.
func (bg *Background) ColorAt(uv FPoint, t float64) [4]float64 {
	return BackgroundColorAt(bg.Mode, bg.Palette(), uv, t)
}

func (bg *Background) Draw(dst *eb.Image) {
	// the plasma variant only exists on the cpu
	useSoftware := bg.Software ||
		NebulaShader == nil ||
		bg.Mode == BackgroundModePlasma

	if useSoftware {
		bg.drawSoftware(dst)
	} else {
		bg.drawShader(dst)
	}
}

func (bg *Background) drawShader(dst *eb.Image) {
	bounds := dst.Bounds()

	pal := bg.Palette()

	var colors [16]float64
	for i, stop := range pal.Stops {
		c := ColorNormalized(stop, true)
		copy(colors[i*4:(i+1)*4], c[:])
	}

	op := &DrawRectShaderOptions{}

	op.Uniforms = make(map[string]any)
	op.Uniforms["Time"] = GlobalTimerSeconds()
	op.Uniforms["ScreenSize"] = [2]float64{f64(bounds.Dx()), f64(bounds.Dy())}
	op.Uniforms["Colors"] = colors
	op.Uniforms["FlatColor"] = FlatBackgroundColor

	if bg.Mode == BackgroundModeFlat {
		op.Uniforms["UseFlat"] = 1.0
	} else {
		op.Uniforms["UseFlat"] = 0.0
	}

	op.GeoM.Translate(f64(bounds.Min.X), f64(bounds.Min.Y))

	BeginBlend(eb.BlendCopy)
	DrawRectShader(dst, bounds.Dx(), bounds.Dy(), NebulaShader, op)
	EndBlend()
}

func (bg *Background) drawSoftware(dst *eb.Image) {
	bounds := dst.Bounds()

	width := max(bounds.Dx()/softwareDownscale, 1)
	height := max(bounds.Dy()/softwareDownscale, 1)

	recreate := bg.softwareImg == nil
	recreate = recreate || bg.softwareImg.Bounds().Dx() != width
	recreate = recreate || bg.softwareImg.Bounds().Dy() != height

	if recreate {
		if bg.softwareImg != nil {
			bg.softwareImg.Deallocate()
		}
		bg.softwareImg = eb.NewImageWithOptions(
			RectWH(width, height),
			&eb.NewImageOptions{Unmanaged: true},
		)
	}

	bg.softwareBuf = RenderBackgroundPixels(
		bg.softwareBuf,
		bg.Mode, bg.Palette(),
		width, height,
		GlobalTimerSeconds(),
	)

	bg.softwareImg.WritePixels(bg.softwareBuf)

	op := &DrawImageOptions{}
	op.GeoM.Scale(f64(bounds.Dx())/f64(width), f64(bounds.Dy())/f64(height))
	op.GeoM.Translate(f64(bounds.Min.X), f64(bounds.Min.Y))

	// the backdrop covers everything underneath, no blending needed,
	// and the upscale has to stay smooth
	BeginBlend(eb.BlendCopy)
	BeginFilter(eb.FilterLinear)
	DrawImage(dst, bg.softwareImg, op)
	EndFilter()
	EndBlend()
}
