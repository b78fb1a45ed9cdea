package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebbyJammin/glyphart/pkg/glyphart"
)

func writeGray(t *testing.T, path string, w, h int, v uint8) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// fixture writes a space/hash glyph set and a 6x2 white image.
func fixture(t *testing.T) (glyphs, imagePath string) {
	t.Helper()
	glyphs = t.TempDir()
	writeGray(t, filepath.Join(glyphs, "32.png"), 4, 4, 255)
	writeGray(t, filepath.Join(glyphs, "35.png"), 4, 4, 0)

	imagePath = filepath.Join(t.TempDir(), "white.png")
	writeGray(t, imagePath, 6, 2, 255)
	return glyphs, imagePath
}

func TestRun(t *testing.T) {
	glyphs, img := fixture(t)

	for _, tc := range []struct {
		name     string
		args     []string
		code     int
		stdout   string
		inStderr string
	}{
		{"no arguments", nil, 2, "", "Usage:"},
		{"one argument", []string{glyphs}, 2, "", "Usage:"},
		{"too many arguments", []string{glyphs, img, "1", "2"}, 2, "", "Usage:"},
		{"non numeric resolution", []string{glyphs, img, "abc"}, 2, "", `invalid resolution "abc"`},
		{"zero resolution", []string{glyphs, img, "0"}, 2, "", `invalid resolution "0"`},
		{"explicit block", []string{"-block", "2x1", glyphs, img}, 0, "  \n", ""},
		{"resolution one", []string{glyphs, img, "1"}, 0, "  \n", ""},
		{"default resolution image too small", []string{glyphs, img}, 1, "", "image is smaller than one block"},
		{"strict rejects blank image", []string{"-strict", "-block", "2x1", glyphs, img}, 1, "", "all values are identical"},
		{"bad block flag", []string{"-block", "2by1", glyphs, img}, 2, "", "invalid block size"},
		{"missing glyph directory", []string{filepath.Join(glyphs, "nope"), img}, 1, "", "reading glyph directory"},
		{"missing image", []string{glyphs, filepath.Join(glyphs, "nope.png")}, 1, "", "cannot decode image"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tc.args, &stdout, &stderr)

			assert.Equal(t, tc.code, code, "stderr: %s", stderr.String())
			assert.Equal(t, tc.stdout, stdout.String())
			assert.Contains(t, stderr.String(), tc.inStderr)
		})
	}
}

func TestParseBlockSize(t *testing.T) {
	for _, tc := range []struct {
		in   string
		w, h int
		err  bool
	}{
		{"2x1", 2, 1, false},
		{"8X4", 8, 4, false},
		{"0x1", 0, 0, true},
		{"3", 0, 0, true},
		{"ax2", 0, 0, true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			w, h, err := parseBlockSize(tc.in)
			if tc.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.w, w)
			assert.Equal(t, tc.h, h)
		})
	}
}

func TestParseArgsAppliesOptions(t *testing.T) {
	var stderr bytes.Buffer
	cfg, err := parseArgs([]string{"-workers", "3", "-strict", "glyphs", "img.png", "5"}, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "glyphs", cfg.glyphDir)
	assert.Equal(t, "img.png", cfg.imagePath)

	c := glyphart.New(cfg.opts...)
	assert.Equal(t, 10, c.BlockWidth)
	assert.Equal(t, 5, c.BlockHeight)
	assert.Equal(t, 3, c.Workers)
	assert.True(t, c.StrictNormalization)
}
