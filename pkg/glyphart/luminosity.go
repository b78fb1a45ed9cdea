package glyphart

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/disintegration/gift"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

/*
Luminosity stores the grayscale intensity (0-255) of every pixel of an image in a 1D row-major array, so block averaging never needs to go back to the color model of the source image.

NOTE: Treat a Luminosity as immutable after construction.
*/
type Luminosity struct {
	// LumData stores the raw intensity of each pixel, row by row
	LumData	[]uint8
	width	int
	height	int
}

/*
MapLuminosity converts any image to a Luminosity. Images that are already *image.Gray are copied directly, everything else is passed through gift's grayscale filter first.
*/
func MapLuminosity(img image.Image) Luminosity {
	gray, ok := img.(*image.Gray)
	if !ok {
		g := gift.New(gift.Grayscale())
		gray = image.NewGray(g.Bounds(img.Bounds()))
		g.Draw(gray, img)
	}

	bounds := gray.Bounds()
	dx, dy := bounds.Dx(), bounds.Dy()

	lum := Luminosity{
		LumData: make([]uint8, dx * dy),
		width: dx,
		height: dy,
	}

	for y := range dy {
		row := gray.Pix[y * gray.Stride : y * gray.Stride + dx]
		copy(lum.LumData[y * dx:], row)
	}

	return lum
}

// NewLuminosity wraps raw row-major intensities of a width x height image.
func NewLuminosity(width, height int, pix []uint8) (Luminosity, error) {
	if width < 0 || height < 0 || len(pix) != width * height {
		return Luminosity{}, fmt.Errorf("luminosity data has %d pixels, want %dx%d", len(pix), width, height)
	}

	return Luminosity{LumData: pix, width: width, height: height}, nil
}

/*
LuminosityAt returns the intensity (0-255) at some x, y pixel. It does not check that x and y are valid.
*/
func (l Luminosity) LuminosityAt(x, y int) uint8 {
	return l.LumData[x + l.width * y]
}

func (l Luminosity) Width() int {
	return l.width
}

func (l Luminosity) Height() int {
	return l.height
}

// Mean returns the average intensity of the region [x0, x0+w) x [y0, y0+h).
func (l Luminosity) Mean(x0, y0, w, h int) float64 {
	if w <= 0 || h <= 0 {
		return 0
	}

	var sum uint64
	for y := y0; y < y0 + h; y++ {
		row := l.LumData[y * l.width + x0 : y * l.width + x0 + w]
		for _, p := range row {
			sum += uint64(p)
		}
	}

	return float64(sum) / float64(w * h)
}

/*
decodeLuminosity decodes an image from r and converts it to a Luminosity. Formats supported are jpeg, png, gif, bmp, tiff and webp. To support more formats, register the decoder in your own package:

	import _ "mycustomdecoder/mycustomformat"
*/
func decodeLuminosity(r io.Reader) (Luminosity, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return Luminosity{}, err
	}

	return MapLuminosity(img), nil
}

func decodeLuminosityFile(path string) (Luminosity, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Luminosity{}, err
	}

	return decodeLuminosity(bytes.NewReader(b))
}
