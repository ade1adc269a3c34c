package widgets

import "math"

// MeasureFunc returns the width of text drawn at size percent of the base
// font.
type MeasureFunc func(text string, size float64) int

// FitText returns the largest whole font size between minSize and maxSize at
// which text fits in width. maxSize is returned when the text already fits
// and minSize when nothing does. The search assumes measure grows with size.
func FitText(text string, width int, minSize, maxSize float64, measure MeasureFunc) float64 {
	if measure(text, maxSize) <= width {
		return maxSize
	}
	lo, hi := minSize, maxSize
	for {
		cur := lo + math.Floor((hi-lo)/2)
		if cur == hi || cur == lo {
			return cur
		}
		if measure(text, cur) > width {
			hi = cur
		} else {
			lo = cur
		}
	}
}
