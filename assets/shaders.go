package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// FlashShader tints actors that were just hit
	FlashShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	flashSrc, err := shaderFS.ReadFile("shaders/flash.kage")
	if err != nil {
		return err
	}
	FlashShader, err = ebiten.NewShader(flashSrc)
	if err != nil {
		return err
	}

	return nil
}
