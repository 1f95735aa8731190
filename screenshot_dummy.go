//go:build !screenshot

package main

import (
	"errors"

	eb "github.com/hajimehoshi/ebiten/v2"
)

func TakeScreenshot(img *eb.Image) (string, error) {
	return "", errors.New("screenshots are disabled in this build")
}
