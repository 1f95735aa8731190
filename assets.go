package main

import (
	_ "embed"
	"os"

	eb "github.com/hajimehoshi/ebiten/v2"
)

//go:embed assets/nebula_shader.go
var nebulaShaderSrc []byte

var NebulaShader *eb.Shader

var shaderLoadFailed bool

func LoadAssets() {
	src := nebulaShaderSrc

	if FlagHotReload {
		// read from disk so F5 picks up shader edits without a rebuild
		onDisk, err := os.ReadFile("assets/nebula_shader.go")
		if err == nil {
			src = onDisk
		} else {
			ErrorLogger.Printf("failed to read shader from disk : %v", err)
		}
	}

	timer := NewProfTimer("shader compile")
	shader, err := eb.NewShader(src)
	timer.Report()

	if err != nil {
		// keep whatever shader we had, the software path covers
		// the case where we never had one
		ErrorLogger.Printf("failed to compile background shader : %v", err)
		shaderLoadFailed = true
		DebugPutsPersist("shader error", err.Error())
		return
	}

	if shaderLoadFailed {
		shaderLoadFailed = false
		DebugPutsPersist("shader error", "recovered")
	}

	if NebulaShader != nil {
		NebulaShader.Deallocate()
	}
	NebulaShader = shader

	InfoLogger.Print("background shader compiled")
}
