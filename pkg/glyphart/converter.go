package glyphart

const (
	// DefaultResolutionFactor is the block size multiplier used when none is given.
	DefaultResolutionFactor = 2
	// blockAspect is the block width per unit of block height. Terminal characters are about twice as tall as they are wide.
	blockAspect = 2
)

// DefaultExtensions lists the glyph file extensions recognized by LoadCatalog().
var DefaultExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

type Converter struct {
	// BlockWidth is the width in pixels of the image block mapped to a single character
	BlockWidth				int
	// BlockHeight is the height in pixels of the image block mapped to a single character
	BlockHeight				int

	// StrictNormalization makes normalization fail with ErrDegenerateNormalization when all values are identical, instead of falling back to absolute brightness. See WithStrictNormalization()
	StrictNormalization		bool

	// Workers bounds the number of goroutines used to score glyphs and block rows. Values below 1 behave like 1
	Workers					int

	// Extensions lists the (lower case, dot prefixed) file extensions considered glyph images by LoadCatalog()
	Extensions				[]string
}

type Option func(*Converter)

/*
NewDefault initializes a converter with default parameters.

- BlockWidth: 4
- BlockHeight: 2
- StrictNormalization: false
- Workers: 1
- Extensions: DefaultExtensions
*/
func NewDefault() *Converter {
	return &Converter{
		BlockWidth: blockAspect * DefaultResolutionFactor,
		BlockHeight: DefaultResolutionFactor,
		StrictNormalization: false,
		Workers: 1,
		Extensions: DefaultExtensions,
	}
}

// New initializes a converter with default parameters, then applies options
func New(opts ...Option) *Converter {
	c := NewDefault()

	for _, o := range opts {
		o(c)
	}

	return c
}

func (c *Converter) workers() int {
	return max(c.Workers, 1)
}
