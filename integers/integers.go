// SPDX-License-Identifier: MIT

package integers

import "golang.org/x/exp/constraints"

// maxPow2 is the largest exponent Pow2 accepts without overflowing int64.
const maxPow2 = 62

// panicPow2Range is raised when Pow2 is asked for an exponent outside [0, 62].
const panicPow2Range = "integers: Pow2: exponent out of range [0, 62]"

// Abs returns |a|. For the most negative signed value the result overflows,
// exactly like the built-in negation.
func Abs[T constraints.Integer](a T) T {
	if a < 0 {
		return -a
	}

	return a
}

// GCD returns the greatest common divisor of a and b, normalised to be
// non-negative. GCD(0, 0) == 0.
//
// Complexity: O(log min(|a|,|b|)).
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}

	return Abs(a)
}

// LCM returns the least common multiple of a and b, normalised to be
// non-negative. LCM(x, 0) == 0.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	// divide first to keep the intermediate small
	return Abs(a / GCD(a, b) * b)
}

// Pow2 returns 2ⁿ by repeated squaring.
// It panics when n is outside [0, 62]; callers validate their bit budgets first.
func Pow2(n int) int64 {
	if n < 0 || n > maxPow2 {
		panic(panicPow2Range)
	}
	var (
		result int64 = 1
		base   int64 = 2
	)
	for n > 0 {
		if n&1 == 1 {
			result *= base
		}
		n >>= 1
		if n > 0 {
			base *= base
		}
	}

	return result
}
