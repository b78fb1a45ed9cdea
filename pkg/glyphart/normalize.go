package glyphart

// maxIntensity is the brightest value of an 8 bit grayscale pixel.
const maxIntensity = 255

// bounds reduces vals to their minimum and maximum. vals must not be empty.
func bounds(vals []float64) (lo, hi float64) {
	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	return lo, hi
}

/*
normalize maps raw brightness values (0-255) onto [0, 1] using min-max normalization and returns the normalized copy:

	normalized = (raw - min) / (max - min)

If every value is identical the range is empty. A strict caller gets ErrDegenerateNormalization, otherwise each value falls back to its absolute brightness (raw / 255), so a uniformly white image still reads as white.
*/
func normalize(raw []float64, strict bool) ([]float64, error) {
	out := make([]float64, len(raw))
	if len(raw) == 0 {
		return out, nil
	}

	lo, hi := bounds(raw)
	if lo == hi {
		if strict {
			return nil, ErrDegenerateNormalization
		}

		for i, v := range raw {
			out[i] = v / maxIntensity
		}
		return out, nil
	}

	span := hi - lo
	for i, v := range raw {
		out[i] = (v - lo) / span
	}

	return out, nil
}
