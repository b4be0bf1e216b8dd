package model

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp bounds v to [lo, hi].
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between from and to; t is expected in [0, 1].
func Lerp[T constraints.Float](from, to, t T) T {
	return from + (to-from)*t
}

// FormatPx renders a readout value as a rounded integer with a px suffix.
func FormatPx(v float32) string {
	return fmt.Sprintf("%d px", int(math.Round(float64(v))))
}
