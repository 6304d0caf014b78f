package textures

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"runtime"

	// Decoders registered with the image package
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/h2non/filetype"
	"github.com/lgl-dev/lgl/glerr"
	"github.com/lgl-dev/lgl/logging"
	"github.com/mandykoh/prism"
)

// BytesPerPixel of uploaded textures, which are always RGBA8
const BytesPerPixel = 4

type TextureLoadOptions struct {
	// NoFlipV keeps the image rows as stored in the file (top row first).
	// By default rows are flipped since OpenGL expects the bottom row first.
	NoFlipV    bool
	GenMipMaps bool
	// Srgba uploads the texture in the sRGB color space so sampling returns linear values
	Srgba bool
}

type Texture struct {
	Id     uint32
	Path   string
	Width  int32
	Height int32
	BPP    int32
}

// Bind binds the texture to the passed texture unit (e.g. slot 0 is GL_TEXTURE0)
func (t *Texture) Bind(slot uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + slot)
	gl.BindTexture(gl.TEXTURE_2D, t.Id)
}

func (t *Texture) UnBind() {
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.Id)
	t.Id = 0
}

// DecodeImage decodes PNG, JPEG, BMP, TIFF or WebP data into non-premultiplied RGBA pixels
func DecodeImage(data []byte, flipV bool) (*image.NRGBA, error) {

	if !filetype.IsImage(data) {
		return nil, errors.New("data is not a supported image")
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	nrgbaImg := prism.ConvertImageToNRGBA(img, runtime.NumCPU())
	logging.InfoLog.Debugf("Decoded %s image of size %dx%d\n", format, nrgbaImg.Rect.Dx(), nrgbaImg.Rect.Dy())

	if flipV {
		FlipVertically(nrgbaImg)
	}

	return nrgbaImg, nil
}

// FlipVertically swaps the rows of the image in place
func FlipVertically(img *image.NRGBA) {

	height := img.Rect.Dy()
	rowLen := img.Rect.Dx() * BytesPerPixel
	tmp := make([]byte, rowLen)

	for y := 0; y < height/2; y++ {

		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bottomStart := (height - 1 - y) * img.Stride
		bottom := img.Pix[bottomStart : bottomStart+rowLen]

		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

func LoadTexture(path string, loadOptions *TextureLoadOptions) (Texture, error) {

	if loadOptions == nil {
		loadOptions = &TextureLoadOptions{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Texture{}, err
	}

	img, err := DecodeImage(data, !loadOptions.NoFlipV)
	if err != nil {
		return Texture{}, fmt.Errorf("failed to load texture '%s': %w", path, err)
	}

	tex := NewTextureFromNRGBA(img, loadOptions)
	tex.Path = path
	return tex, nil
}

// NewTextureFromNRGBA uploads already decoded pixels. The image rows are used as is.
func NewTextureFromNRGBA(img *image.NRGBA, loadOptions *TextureLoadOptions) Texture {

	if loadOptions == nil {
		loadOptions = &TextureLoadOptions{}
	}

	tex := Texture{
		Width:  int32(img.Rect.Dx()),
		Height: int32(img.Rect.Dy()),
		BPP:    BytesPerPixel,
	}

	gl.GenTextures(1, &tex.Id)
	if tex.Id == 0 {
		logging.ErrLog.Println("Failed to create OpenGL texture")
		return tex
	}

	gl.BindTexture(gl.TEXTURE_2D, tex.Id)

	minFilter := int32(gl.LINEAR)
	if loadOptions.GenMipMaps {
		minFilter = gl.LINEAR_MIPMAP_LINEAR
	}

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	glerr.Check("glTexParameteri")

	internalFormat := int32(gl.RGBA8)
	if loadOptions.Srgba {
		internalFormat = gl.SRGB8_ALPHA8
	}

	// Only needed until the upload is done, the GPU keeps its own copy
	pixels := packedPixels(img)

	var pixelsPtr = gl.Ptr(nil)
	if len(pixels) > 0 {
		pixelsPtr = gl.Ptr(&pixels[0])
	}

	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, tex.Width, tex.Height, 0, gl.RGBA, gl.UNSIGNED_BYTE, pixelsPtr)
	glerr.Check("glTexImage2D")

	if loadOptions.GenMipMaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// packedPixels returns the pixels without any row padding, which is what TexImage2D expects
func packedPixels(img *image.NRGBA) []byte {

	rowLen := img.Rect.Dx() * BytesPerPixel
	if img.Stride == rowLen {
		return img.Pix[:rowLen*img.Rect.Dy()]
	}

	out := make([]byte, 0, rowLen*img.Rect.Dy())
	for y := 0; y < img.Rect.Dy(); y++ {
		out = append(out, img.Pix[y*img.Stride:y*img.Stride+rowLen]...)
	}

	return out
}
