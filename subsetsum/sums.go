// SPDX-License-Identifier: MIT

package subsetsum

import "golang.org/x/exp/constraints"

// Number is any value type SortedSums can add and order.
type Number interface {
	constraints.Integer | constraints.Float
}

// SortedSums returns the 2^len(items) subset sums of items in ascending
// order, the empty sum 0 included. Each item doubles the list: the shifted
// copy is still sorted, so one linear merge keeps the whole list ordered.
//
// Complexity: O(2^n) time and space.
func SortedSums[T Number](items []T) []T {
	sums := []T{0}
	for _, v := range items {
		shifted := make([]T, len(sums))
		for i, s := range sums {
			shifted[i] = s + v
		}
		sums = merge(sums, shifted)
	}

	return sums
}

// merge returns the sorted union of a and b, ties taken from a first.
func merge[T Number](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}
