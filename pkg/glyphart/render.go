package glyphart

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"io"
	"strings"
)

/*
Render writes the text art of lum to w. Every block is replaced by the catalog glyph with the closest normalized brightness, one character per block column and one line per block row.

Output is streamed: each row is flushed to w as soon as it is written, so only a single line is ever buffered.
*/
func (c *Converter) Render(w io.Writer, lum Luminosity, catalog *Catalog) error {
	grid, err := c.Blocks(lum)
	if err != nil {
		return err
	}

	return RenderGrid(w, grid, catalog)
}

// RenderGrid writes the glyphs matching an already computed block grid to w, flushing after each row.
func RenderGrid(w io.Writer, grid BlockGrid, catalog *Catalog) error {
	bw := bufio.NewWriterSize(w, grid.Columns * 4 + 1) // utf8 runes are at most 4 bytes, +1 for the new line

	for row := range grid.Rows {
		for col := range grid.Columns {
			bw.WriteRune(catalog.Match(grid.At(row, col)).Code)
		}
		bw.WriteByte('\n')

		if err := bw.Flush(); err != nil {
			return fmt.Errorf("writing row %d: %w", row, err)
		}
	}

	return nil
}

/*
RenderImage converts img to grayscale and renders it. See Render().
*/
func (c *Converter) RenderImage(w io.Writer, img image.Image, catalog *Catalog) error {
	return c.Render(w, MapLuminosity(img), catalog)
}

/*
RenderReader decodes an image from r and renders it. Image formats supported are jpeg, png, gif, bmp, tiff and webp. Decoding failures are reported as ErrImageDecode.
*/
func (c *Converter) RenderReader(w io.Writer, r io.Reader, catalog *Catalog) error {
	lum, err := decodeLuminosity(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrImageDecode, err)
	}

	return c.Render(w, lum, catalog)
}

// RenderBytes renders an encoded image held in b. See RenderReader().
func (c *Converter) RenderBytes(w io.Writer, b []byte, catalog *Catalog) error {
	return c.RenderReader(w, bytes.NewReader(b), catalog)
}

// RenderFile renders the image stored at path. See RenderReader().
func (c *Converter) RenderFile(w io.Writer, path string, catalog *Catalog) error {
	lum, err := decodeLuminosityFile(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrImageDecode, path, err)
	}

	return c.Render(w, lum, catalog)
}

// RenderString renders lum and returns the art as a string.
func (c *Converter) RenderString(lum Luminosity, catalog *Catalog) (string, error) {
	var sb strings.Builder
	if err := c.Render(&sb, lum, catalog); err != nil {
		return "", err
	}

	return sb.String(), nil
}
