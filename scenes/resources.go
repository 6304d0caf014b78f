package scenes

import (
	"image"
	"image/color"
	"path/filepath"

	"github.com/bloeys/gglm/gglm"
	"github.com/lgl-dev/lgl/logging"
	"github.com/lgl-dev/lgl/shaders"
	"github.com/lgl-dev/lgl/textures"
)

// Per draw GL state of the textured scenes, swapped in tests
var (
	bindTexture  = func(tex *textures.Texture, slot int32) { tex.Bind(uint32(slot)) }
	setUnifInt32 = func(sp *shaders.ShaderProgram, name string, val int32) { sp.SetUnifInt32(name, val) }
	setUnifMat4  = func(sp *shaders.ShaderProgram, name string, mat *gglm.Mat4) { sp.SetUnifMat4(name, mat) }
)

// loadShader loads a shader from the shader dir. On failure the error is logged and the
// returned program has no id but keeps its path, so a hot reload can still fix it.
func loadShader(shaderDir, fileName string) shaders.ShaderProgram {

	path := filepath.Join(shaderDir, fileName)

	sp, err := shaders.LoadAndCompileCombinedShader(path)
	if err != nil {
		logging.ErrLog.Printf("Failed to load shader '%s'. Err: %v\n", path, err)
	}

	sp.Path = path
	return sp
}

// loadTexture loads a texture from the texture dir, falling back to a checkerboard if that fails
func loadTexture(textureDir, fileName string) textures.Texture {

	path := filepath.Join(textureDir, fileName)

	tex, err := textures.LoadTexture(path, &textures.TextureLoadOptions{})
	if err != nil {
		logging.ErrLog.Printf("Failed to load texture '%s', using a checkerboard instead. Err: %v\n", path, err)
		return textures.NewTextureFromNRGBA(checkerboard(8, 8), nil)
	}

	return tex
}

func checkerboard(tiles, tileSize int) *image.NRGBA {

	size := tiles * tileSize
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	dark := color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	light := color.NRGBA{R: 255, G: 0, B: 255, A: 255}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {

			if (x/tileSize+y/tileSize)%2 == 0 {
				img.SetNRGBA(x, y, dark)
			} else {
				img.SetNRGBA(x, y, light)
			}
		}
	}

	return img
}
