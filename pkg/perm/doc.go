// Package perm provides exhaustive permutation generation and the
// permutation decision tree used to visualize it.
//
// # Overview
//
// The number of orderings of n symbols grows factorially, so everything in
// this package is meant for short sequences such as the letters of a word:
//
//   - [Of]: every ordering of a typed slice, by position
//   - [Indices]: the same orderings over index sequences, lazily
//   - [Factorial] and [BigFactorial]: the size of the permutation space
//   - [Tree]: the head-fixing decision tree, renderable as DOT or SVG
//
// # Ordering
//
// Orderings are produced by fixing each element in turn as the head and
// permuting the rest in their original order. Over indices this is
// lexicographic order:
//
//	for p := range perm.Indices(3) { ... }
//	// [0 1 2] [0 2 1] [1 0 2] [1 2 0] [2 0 1] [2 1 0]
//
// The walk is an in-place successor loop, so stack depth stays constant no
// matter how long the input is.
//
// # Duplicates
//
// [Of] never merges equal values: the letters of "anna" produce 24
// orderings, several of them spelling the same string. Callers that want
// distinct arrangements deduplicate the results. A [Tree] built with
// distinct set collapses equal sibling branches and has exactly one leaf per
// distinct arrangement.
package perm
