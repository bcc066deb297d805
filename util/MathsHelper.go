package util

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"
)

// Compare3 returns -1, 0 or +1 as a is less than, equal to or greater than b.
// Unlike cmp.Compare it does not order NaN; callers only pass finite values.
func Compare3[T constraints.Ordered](a T, b T) int {
	if a < b {
		return -1
	}
	if a > b {
		return +1
	}
	return 0
}

// Sign reduces v to -1, 0 or +1. Zero of either sign maps to 0.
func Sign[T constraints.Signed | constraints.Float](v T) int {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return +1
	}
	return 0
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite[T constraints.Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Clamp3 restricts v to the closed range spanned by a and b, in either order.
func Clamp3[T cmp.Ordered](v T, a T, b T) T {
	lower := Min(a, b)
	upper := Max(a, b)
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}

func Max[T cmp.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	max := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg > max {
			max = arg
		}
	}
	return max
}

func Min[T cmp.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	min := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg < min {
			min = arg
		}
	}
	return min
}

func isNan[T comparable](arg T) bool {
	return arg != arg
}
