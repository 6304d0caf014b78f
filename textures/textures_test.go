package textures

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

// rowImage returns a 2 wide image where every pixel of row y has red=y*10
func rowImage(height int) *image.NRGBA {

	img := image.NewNRGBA(image.Rect(0, 0, 2, height))
	for y := 0; y < height; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(y * 10), G: uint8(x), B: 7, A: 255})
		}
	}

	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestDecodeImagePNG(t *testing.T) {

	data := encodePNG(t, rowImage(3))

	img, err := DecodeImage(data, false)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Rect.Dx())
	assert.Equal(t, 3, img.Rect.Dy())
	assert.Equal(t, uint8(0), img.NRGBAAt(0, 0).R)
	assert.Equal(t, uint8(20), img.NRGBAAt(1, 2).R)
	assert.Equal(t, uint8(1), img.NRGBAAt(1, 2).G)
}

func TestDecodeImageFlipped(t *testing.T) {

	img, err := DecodeImage(encodePNG(t, rowImage(3)), true)
	require.NoError(t, err)

	assert.Equal(t, uint8(20), img.NRGBAAt(0, 0).R)
	assert.Equal(t, uint8(10), img.NRGBAAt(0, 1).R)
	assert.Equal(t, uint8(0), img.NRGBAAt(0, 2).R)
}

func TestDecodeImageBMP(t *testing.T) {

	buf := &bytes.Buffer{}
	require.NoError(t, bmp.Encode(buf, rowImage(4)))

	img, err := DecodeImage(buf.Bytes(), true)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Rect.Dy())
	assert.Equal(t, uint8(30), img.NRGBAAt(0, 0).R)
	assert.Equal(t, uint8(7), img.NRGBAAt(0, 0).B)
}

func TestDecodeImageRejectsNonImages(t *testing.T) {

	_, err := DecodeImage([]byte("#shader vertex\nvoid main() {}\n"), true)
	assert.Error(t, err)

	_, err = DecodeImage(nil, true)
	assert.Error(t, err)
}

func TestDecodeImageRejectsTruncatedData(t *testing.T) {

	data := encodePNG(t, rowImage(8))
	_, err := DecodeImage(data[:len(data)/2], false)
	assert.Error(t, err)
}

func TestFlipVertically(t *testing.T) {

	for _, h := range []int{1, 2, 5} {

		img := rowImage(h)
		FlipVertically(img)

		for y := 0; y < h; y++ {
			assert.Equal(t, uint8((h-1-y)*10), img.NRGBAAt(1, y).R, "height=%d y=%d", h, y)
		}
	}
}

func TestPackedPixels(t *testing.T) {

	full := rowImage(4)
	assert.Len(t, packedPixels(full), 2*4*BytesPerPixel)

	// A sub image keeps the parent's stride, so rows must be repacked
	wide := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	wide.SetNRGBA(2, 1, color.NRGBA{R: 9, A: 255})
	sub := wide.SubImage(image.Rect(2, 0, 3, 2)).(*image.NRGBA)

	px := packedPixels(sub)
	require.Len(t, px, 1*2*BytesPerPixel)
	assert.Equal(t, uint8(9), px[4])
}

func TestTextureKeepsNoPixelCopy(t *testing.T) {

	// Pixels are only needed for the upload, the GPU owns them afterwards
	typ := reflect.TypeOf(Texture{})
	for i := 0; i < typ.NumField(); i++ {
		assert.NotEqual(t, reflect.Slice, typ.Field(i).Type.Kind(), "field %s", typ.Field(i).Name)
	}
}
