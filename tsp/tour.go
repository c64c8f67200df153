package tsp

import (
	"strconv"
	"strings"
)

// closeTour returns order with Depot appended, as a fresh slice.
func closeTour(order []int) []int {
	out := make([]int, len(order)+1)
	copy(out, order)
	out[len(order)] = Depot

	return out
}

// reverseArcInPlace reverses tour[i..k] inclusive.
// Callers keep 1 ≤ i < k ≤ n-1 so the depot at both ends never moves.
//
// Complexity: O(k-i).
func reverseArcInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// CopyTour returns an independent copy of t.
func CopyTour(t []int) []int {
	if t == nil {
		return nil
	}
	out := make([]int, len(t))
	copy(out, t)

	return out
}

// FormatTour renders a tour as "0 -> 3 -> 1 -> 0".
func FormatTour(t []int) string {
	var b strings.Builder
	for i, v := range t {
		if i > 0 {
			b.WriteString(" -> ")
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}
