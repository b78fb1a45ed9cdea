package glyphart

import (
	"fmt"
	"math"
	"slices"
)

// DefaultRamp is a dark to light character ramp commonly seen in ascii art.
const DefaultRamp = `$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\|()1{}[]?-_+~<>i!lI;:,"^` + "`" + `'. `

// Glyph is a single output character together with its reference brightness.
type Glyph struct {
	// Code is the character written to the output
	Code		rune
	// Raw is the mean intensity (0-255) of the glyph image
	Raw			float64
	// Brightness is Raw rescaled to [0, 1] across the whole catalog
	Brightness	float64
}

/*
Catalog maps glyphs to their normalized brightness. Glyphs are kept sorted by code, which fixes the iteration order used by Match() and therefore makes ties deterministic.

A Catalog is immutable and safe for concurrent use.
*/
type Catalog struct {
	glyphs []Glyph
}

/*
NewCatalog normalizes raw glyph brightness values (0-255) across the set. The darkest glyph maps to 0 and the lightest to 1. If all values are identical, strict selects between failing with ErrDegenerateNormalization and falling back to raw / 255.
*/
func NewCatalog(raw map[rune]float64, strict bool) (*Catalog, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyGlyphSet
	}

	glyphs := make([]Glyph, 0, len(raw))
	for code, r := range raw {
		glyphs = append(glyphs, Glyph{Code: code, Raw: r})
	}
	slices.SortFunc(glyphs, func(a, b Glyph) int { return int(a.Code - b.Code) })

	raws := make([]float64, len(glyphs))
	for i, g := range glyphs {
		raws[i] = g.Raw
	}

	norm, err := normalize(raws, strict)
	if err != nil {
		return nil, fmt.Errorf("glyph catalog: %w", err)
	}

	for i := range glyphs {
		glyphs[i].Brightness = norm[i]
	}

	return &Catalog{glyphs: glyphs}, nil
}

/*
NewNormalizedCatalog builds a catalog from brightness values that are already normalized. Every value must lie in [0, 1]. Raw is set to the equivalent 0-255 intensity.
*/
func NewNormalizedCatalog(brightness map[rune]float64) (*Catalog, error) {
	if len(brightness) == 0 {
		return nil, ErrEmptyGlyphSet
	}

	glyphs := make([]Glyph, 0, len(brightness))
	for code, b := range brightness {
		if b < 0 || b > 1 || math.IsNaN(b) {
			return nil, fmt.Errorf("glyph %q: %w: %v", code, ErrBrightnessRange, b)
		}
		glyphs = append(glyphs, Glyph{Code: code, Raw: b * maxIntensity, Brightness: b})
	}
	slices.SortFunc(glyphs, func(a, b Glyph) int { return int(a.Code - b.Code) })

	return &Catalog{glyphs: glyphs}, nil
}

/*
RampCatalog builds a catalog from a character ramp ordered from darkest to lightest, such as DefaultRamp. Characters are spaced evenly over [0, 1]; a repeated character keeps its first position. A single character ramp maps to brightness 0.
*/
func RampCatalog(ramp string) (*Catalog, error) {
	chars := []rune(ramp)
	if len(chars) == 0 {
		return nil, ErrEmptyGlyphSet
	}

	brightness := make(map[rune]float64, len(chars))
	steps := float64(max(len(chars) - 1, 1))
	for i, c := range chars {
		if _, ok := brightness[c]; ok {
			continue
		}
		brightness[c] = float64(i) / steps
	}

	return NewNormalizedCatalog(brightness)
}

// Len returns the number of glyphs in the catalog.
func (c *Catalog) Len() int {
	return len(c.glyphs)
}

// Glyphs returns a copy of the glyphs, sorted by code.
func (c *Catalog) Glyphs() []Glyph {
	return slices.Clone(c.glyphs)
}

// Brightness returns the normalized brightness of the glyph with the given code.
func (c *Catalog) Brightness(code rune) (float64, bool) {
	i, ok := slices.BinarySearchFunc(c.glyphs, code, func(g Glyph, code rune) int {
		return int(g.Code - code)
	})
	if !ok {
		return 0, false
	}

	return c.glyphs[i].Brightness, true
}

/*
Match returns the glyph whose normalized brightness is closest to brightness. Ties go to the glyph with the smallest code.
*/
func (c *Catalog) Match(brightness float64) Glyph {
	best := c.glyphs[0]
	bestScore := math.Abs(brightness - best.Brightness)

	for _, g := range c.glyphs[1:] {
		score := math.Abs(brightness - g.Brightness)
		if score < bestScore { // lower score is better
			best = g
			bestScore = score
		}
	}

	return best
}
