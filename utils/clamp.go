package utils

import "golang.org/x/exp/constraints"

// Clamp limits v to the interval [min, max].
func Clamp[T constraints.Ordered](v, min, max T) T {
	if min > max {
		min, max = max, min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
