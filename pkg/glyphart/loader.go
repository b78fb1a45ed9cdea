package glyphart

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

type glyphFile struct {
	path	string
	code	rune
}

/*
LoadCatalog builds a glyph catalog from the images in dir. Every file with a recognized extension (see Converter.Extensions) is a glyph, named after its decimal character code: a picture of an 'a' is stored as 97.jpg. Subdirectories are not traversed.

Each glyph's raw brightness is the mean grayscale intensity of its image. Raw values are then min-max normalized across the catalog (see NewCatalog()).
*/
func (c *Converter) LoadCatalog(dir string) (*Catalog, error) {
	files, err := c.glyphFiles(dir)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrEmptyGlyphSet)
	}

	// Each goroutine only writes its own index, so scores keep file order
	scores := make([]float64, len(files))

	var g errgroup.Group
	g.SetLimit(c.workers())

	for i, f := range files {
		g.Go(func() error {
			lum, err := decodeLuminosityFile(f.path)
			if err != nil {
				return fmt.Errorf("%w %s: %w", ErrGlyphDecode, f.path, err)
			}

			scores[i] = lum.Mean(0, 0, lum.Width(), lum.Height())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	raw := make(map[rune]float64, len(files))
	for i, f := range files {
		raw[f.code] = scores[i]
	}

	return NewCatalog(raw, c.StrictNormalization)
}

// glyphFiles lists the glyph images in dir sorted by name, and parses their codes.
func (c *Converter) glyphFiles(dir string) ([]glyphFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading glyph directory: %w", err)
	}

	var files []glyphFile
	seen := make(map[rune]string)

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		name := e.Name()
		ext := filepath.Ext(name)
		if !slices.Contains(c.Extensions, strings.ToLower(ext)) {
			continue
		}

		path := filepath.Join(dir, name)
		code, err := parseGlyphCode(strings.TrimSuffix(name, ext))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		if prev, ok := seen[code]; ok {
			return nil, fmt.Errorf("%w %d: %s and %s", ErrDuplicateGlyph, code, prev, path)
		}
		seen[code] = path

		files = append(files, glyphFile{path: path, code: code})
	}

	return files, nil
}

func parseGlyphCode(stem string) (rune, error) {
	n, err := strconv.ParseInt(stem, 10, 32)
	if err != nil || !utf8.ValidRune(rune(n)) {
		return 0, fmt.Errorf("%w: %q", ErrGlyphName, stem)
	}

	return rune(n), nil
}
