package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}
	return img
}

func TestFit(t *testing.T) {
	out := Fit(solid(1024, 512), MaxSide)
	assert.Equal(t, 512, out.Bounds().Dx())
	assert.Equal(t, 256, out.Bounds().Dy())

	out = Fit(solid(300, 900), MaxSide)
	assert.Equal(t, 170, out.Bounds().Dx())
	assert.Equal(t, 512, out.Bounds().Dy())

	small := solid(100, 80)
	assert.Same(t, small, Fit(small, MaxSide))
}

func TestToWebP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(800, 600)))

	out, err := ToWebP(&buf)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 384, cfg.Height)
}

func TestToWebP_RejectsGarbage(t *testing.T) {
	_, err := ToWebP(strings.NewReader("not an image"))
	assert.ErrorIs(t, err, ErrUnsupported)
}
