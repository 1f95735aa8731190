package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ReloadAssetsKey eb.Key = eb.KeyF5

	ShowDebugConsoleKey = eb.KeyF1

	CycleBackgroundModeKey eb.Key = eb.KeyE
	CyclePaletteKey        eb.Key = eb.KeyQ

	PauseTimeKey eb.Key = eb.KeySpace

	ToggleAntiAliasKey eb.Key = eb.KeyA

	CopyPixelColorKey eb.Key = eb.KeyC

	ScreenshotKey eb.Key = eb.KeyP
)
