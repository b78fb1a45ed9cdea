package glyphart

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

/*
BlockGrid partitions an image into uniform blocks and holds the brightness of each, row-major.

Raw holds the mean intensity (0-255) of every block and Brightness the same values min-max normalized across the grid.
*/
type BlockGrid struct {
	Rows		int
	Columns		int
	BlockWidth	int
	BlockHeight	int
	Raw			[]float64
	Brightness	[]float64
}

// At returns the normalized brightness of the block at row, col.
func (g BlockGrid) At(row, col int) float64 {
	return g.Brightness[row * g.Columns + col]
}

/*
blockCount returns how many block origins 0, size, 2*size, ... lie strictly below extent - size. The last strip is always dropped, even when extent is an exact multiple of size, so every visited block is whole:

	extent=50, size=2 -> origins 0..46 -> 24 blocks
*/
func blockCount(extent, size int) int {
	if extent <= size {
		return 0
	}

	return (extent - size + size - 1) / size
}

/*
Blocks computes the block grid of lum using the converter's block size. Block rows are scored on up to Workers goroutines, then normalized together once every row is done.
*/
func (c *Converter) Blocks(lum Luminosity) (BlockGrid, error) {
	bw, bh := c.BlockWidth, c.BlockHeight
	if bw < 1 || bh < 1 {
		return BlockGrid{}, fmt.Errorf("%w: got %dx%d", ErrInvalidBlockSize, bw, bh)
	}

	rows := blockCount(lum.Height(), bh)
	cols := blockCount(lum.Width(), bw)
	if rows == 0 || cols == 0 {
		return BlockGrid{}, fmt.Errorf("%w: %dx%d image, %dx%d blocks", ErrImageTooSmall, lum.Width(), lum.Height(), bw, bh)
	}

	raw := make([]float64, rows * cols)

	var g errgroup.Group
	g.SetLimit(c.workers())

	for row := range rows {
		g.Go(func() error {
			y := row * bh
			for col := range cols {
				raw[row * cols + col] = lum.Mean(col * bw, y, bw, bh)
			}
			return nil
		})
	}

	// Scoring cannot fail, Wait is the barrier before normalization
	_ = g.Wait()

	norm, err := normalize(raw, c.StrictNormalization)
	if err != nil {
		return BlockGrid{}, fmt.Errorf("image blocks: %w", err)
	}

	return BlockGrid{
		Rows: rows,
		Columns: cols,
		BlockWidth: bw,
		BlockHeight: bh,
		Raw: raw,
		Brightness: norm,
	}, nil
}
