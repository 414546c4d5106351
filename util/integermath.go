package util

import "golang.org/x/exp/constraints"

// Max returns the maximum value of inputs x, y
func Max(x int, y int) int {
	if x > y {
		return x
	}
	return y
}

// Min returns the minimum value of inputs x, y
func Min(x int, y int) int {
	if x < y {
		return x
	}
	return y
}

// Clamp bounds x to the closed interval [lo, hi]
func Clamp(x int, lo int, hi int) int {
	return Max(lo, Min(hi, x))
}

// Mask keeps the lowest width bits of v and clears the rest
func Mask[T constraints.Unsigned](v T, width uint) T {
	return v & (T(1)<<width - 1)
}
