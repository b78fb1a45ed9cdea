package glyphart

import "errors"

var (
	// ErrEmptyGlyphSet is returned when a glyph directory contains no glyph images.
	ErrEmptyGlyphSet = errors.New("no glyph images found")

	// ErrGlyphDecode is returned when a glyph file cannot be read or decoded. The offending path is included in the wrapping error.
	ErrGlyphDecode = errors.New("cannot decode glyph image")

	// ErrGlyphName is returned when a glyph file name is not a numeric character code.
	ErrGlyphName = errors.New("glyph file name is not a character code")

	// ErrDuplicateGlyph is returned when two glyph files map to the same character code.
	ErrDuplicateGlyph = errors.New("duplicate glyph code")

	// ErrImageDecode is returned when the source image cannot be decoded.
	ErrImageDecode = errors.New("cannot decode image")

	/*
	ErrDegenerateNormalization is returned by strict converters when every value in a normalization set is identical, so min-max normalization would divide by zero. See WithStrictNormalization().
	*/
	ErrDegenerateNormalization = errors.New("cannot normalize brightness: all values are identical")

	// ErrImageTooSmall is returned when the source image does not contain a single whole block.
	ErrImageTooSmall = errors.New("image is smaller than one block")

	ErrBrightnessRange = errors.New("normalized brightness outside [0, 1]")

	ErrInvalidBlockSize = errors.New("block dimensions must be at least 1")
)
