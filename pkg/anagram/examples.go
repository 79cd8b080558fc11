package anagram

import "slices"

// Pair is a word and one of its anagrams.
type Pair struct {
	Original string `json:"originale" yaml:"originale"`
	Anagram  string `json:"anagramma" yaml:"anagramma"`
}

var examples = [...]Pair{
	{"roma", "mora"},
	{"cane", "acne"},
	{"attore", "teatro"},
	{"calendario", "locandiera"},
	{"rame", "mare"},
	{"rosa", "orsa"},
	{"parto", "porta"},
	{"lago", "gola"},
	{"trota", "torta"},
	{"mela", "lame"},
}

// Examples returns ten well-known Italian anagram pairs. The slice is a fresh
// copy on every call.
func Examples() []Pair {
	return slices.Clone(examples[:])
}
