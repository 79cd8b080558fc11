package perm

import (
	"iter"
	"math/big"
	"slices"
)

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	if n <= 0 {
		return []int{}
	}
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
//
// Factorials grow extremely fast: 21! already overflows a 64-bit int.
// Use BigFactorial when n may exceed 20.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// BigFactorial returns n! as an arbitrary-precision integer.
// For n <= 1, BigFactorial returns 1.
func BigFactorial(n int) *big.Int {
	if n <= 1 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(1, int64(n))
}

// Indices yields every permutation of [0, 1, ..., n-1] in lexicographic order.
//
// The order is the one produced by fixing each index in turn as the head and
// permuting the remaining indices in their original order: [0 1 2], [0 2 1],
// [1 0 2], [1 2 0], [2 0 1], [2 1 0].
//
// The yielded slice is reused between iterations. Callers that retain a
// permutation must clone it.
//
// For n <= 0 a single empty permutation is yielded.
func Indices(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		p := Seq(n)
		for {
			if !yield(p) {
				return
			}
			if !next(p) {
				return
			}
		}
	}
}

// next advances p to its lexicographic successor in place and reports
// whether one existed. Elements of p must be distinct.
func next(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] > p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] < p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])
	return true
}

// maxPrealloc bounds up-front slice capacity to 9! entries; larger results
// grow by append.
const maxPrealloc = 9

// Of returns every ordering of items, distinguished by position only.
//
// Equal values are not merged: a slice with repeated elements still yields
// exactly len(items)! orderings. The result order matches Indices. Each
// returned slice is a separate allocation, and items is not modified.
func Of[T any](items []T) [][]T {
	n := len(items)
	result := make([][]T, 0, Factorial(min(n, maxPrealloc)))
	for p := range Indices(n) {
		ordering := make([]T, n)
		for i, idx := range p {
			ordering[i] = items[idx]
		}
		result = append(result, ordering)
	}
	return result
}
