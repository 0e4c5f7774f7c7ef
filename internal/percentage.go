package internal

import "math"

// Percentage is a helper function, to calculate percentage.
// Current values above total are clamped to width.
func Percentage(total, current int64, width uint) float64 {
	if total <= 0 {
		return 0
	}
	if current >= total {
		return float64(width)
	}
	if current <= 0 {
		return 0
	}
	return float64(int64(width)*current) / float64(total)
}

// PercentageRound same as Percentage but with math.Round.
func PercentageRound(total, current int64, width uint) float64 {
	return math.Round(Percentage(total, current, width))
}

// Fraction returns current/total without clamping, so overshoot shows
// up as a value above one. Zero is returned for unknown total.
func Fraction(total, current int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(current) / float64(total)
}
