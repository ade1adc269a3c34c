package layout

import (
	"fmt"
	"math"
)

// Partition resolves one axis of a grid into concrete pixel sizes.
//
// The result alternates margins, cells and spacing:
// [marginLo, cell0, spacing, cell1, ..., cellN-1, marginHi], 2n+1 entries
// that sum exactly to available.
//
// Percent cells are resolved first against the whole available dimension.
// Fixed cells, margins, spacing and resolved percents are then summed; if
// that sum exceeds available the call fails with ErrOversized. Proportional
// cells share what is left by weight. Both passes round against running
// totals so that rounding error is spread over the entries instead of
// accumulating.
func Partition(available int, cells []SizeSpec, marginLo, marginHi, spacing int) ([]int, error) {
	if available < 0 || marginLo < 0 || marginHi < 0 || spacing < 0 {
		return nil, fmt.Errorf("%w: available=%d margins=%d/%d spacing=%d",
			ErrNegativeInset, available, marginLo, marginHi, spacing)
	}

	for _, spec := range cells {
		if err := spec.Validate(); err != nil {
			return nil, err
		}
	}

	count := 2*len(cells) + 1
	sizes := make([]int, count)
	specs := make([]SizeSpec, count)
	for i := range specs {
		switch {
		case i == 0:
			specs[i] = Fixed(marginLo)
		case i == count-1:
			specs[i] = Fixed(marginHi)
		case i%2 == 0:
			specs[i] = Fixed(spacing)
		default:
			specs[i] = cells[(i-1)/2]
		}
	}

	// pct0 and px0 carry the fraction and pixels consumed so far.
	pct0, px0 := 0.0, 0
	for i, spec := range specs {
		if spec.Kind != SizePercent {
			continue
		}
		pct := spec.Value / 100
		px := roundHalfUp(float64(available)*(pct0+pct)) - px0
		sizes[i] = px
		pct0 += pct
		px0 += px
	}

	sum := 0
	sumWeight := 0.0
	for i, spec := range specs {
		switch spec.Kind {
		case SizeFixed:
			sizes[i] = spec.Pixels
			sum += spec.Pixels
		case SizePercent:
			sum += sizes[i]
		case SizeProportional:
			sumWeight += spec.Value
		}
	}
	if sum > available {
		return nil, fmt.Errorf("%w: need %d of %d", ErrOversized, sum, available)
	}

	leftover := available - sum
	w0, px0 := 0.0, 0
	for i, spec := range specs {
		if spec.Kind != SizeProportional || sumWeight <= 0 {
			continue
		}
		px := roundHalfUp(float64(leftover)*(w0+spec.Value)/sumWeight) - px0
		sizes[i] = px
		w0 += spec.Value
		px0 += px
	}

	total := 0
	for _, s := range sizes {
		total += s
	}
	if total != available {
		return nil, fmt.Errorf("%w: resolved %d of %d", ErrPartitionMismatch, total, available)
	}
	return sizes, nil
}

// Offsets returns the start offset of each size: the sum of all sizes before
// it.
func Offsets(sizes []int) []int {
	offs := make([]int, len(sizes))
	off := 0
	for i, s := range sizes {
		offs[i] = off
		off += s
	}
	return offs
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
