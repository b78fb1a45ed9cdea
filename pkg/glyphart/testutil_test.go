package glyphart_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nebbyJammin/glyphart/pkg/glyphart"
)

// uniformGray returns a w x h image filled with intensity v.
func uniformGray(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// glyphDir writes one uniform 4x4 glyph image per code into a temp directory.
func glyphDir(t *testing.T, glyphs map[string]uint8) string {
	t.Helper()
	dir := t.TempDir()
	for name, v := range glyphs {
		writePNG(t, filepath.Join(dir, name+".png"), uniformGray(4, 4, v))
	}
	return dir
}

func mustLum(t *testing.T, w, h int, pix []uint8) glyphart.Luminosity {
	t.Helper()
	lum, err := glyphart.NewLuminosity(w, h, pix)
	require.NoError(t, err)
	return lum
}

func rgba(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			img.Set(x, y, c)
		}
	}
	return img
}
