package glyphart

import "strings"

/*
WithResolutionFactor sets the block size from a resolution factor: blocks are 2*factor pixels wide and factor pixels tall. A smaller factor gives a higher resolution output. Factors below 1 are ignored.
*/
func WithResolutionFactor(factor int) Option {
	return func(c *Converter) {
		if factor < 1 {
			return
		}
		c.BlockWidth = blockAspect * factor
		c.BlockHeight = factor
	}
}

/*
WithBlockSize sets the block dimensions directly, overriding any resolution factor applied before it. Dimensions are validated when rendering (see ErrInvalidBlockSize).
*/
func WithBlockSize(width, height int) Option {
	return func(c *Converter) {
		c.BlockWidth = width
		c.BlockHeight = height
	}
}

/*
WithStrictNormalization enables/disables strict normalization. When enabled, a glyph set or an image whose brightness values are all identical fails with ErrDegenerateNormalization. When disabled (the default), such values are normalized against the absolute 0-255 scale instead, so a single glyph catalog matches every block and a blank image keeps its brightness.
*/
func WithStrictNormalization(strict bool) Option {
	return func(c *Converter) {
		c.StrictNormalization = strict
	}
}

// WithWorkers bounds the goroutines used for glyph and block scoring. The output does not depend on it.
func WithWorkers(n int) Option {
	return func(c *Converter) {
		c.Workers = n
	}
}

// WithExtensions replaces the recognized glyph file extensions, e.g. WithExtensions(".jpg").
func WithExtensions(exts ...string) Option {
	normalized := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(e)
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		normalized = append(normalized, e)
	}

	return func(c *Converter) {
		c.Extensions = normalized
	}
}
