package anagram

import (
	"math/big"
	"slices"

	"github.com/matzehuels/anagramma/pkg/perm"
)

// AreAnagrams reports whether a and b use exactly the same letters once
// normalized. Words of different normalized length are never anagrams.
func AreAnagrams(a, b string) bool {
	la, lb := letters(a), letters(b)
	if len(la) != len(lb) {
		return false
	}
	slices.Sort(la)
	slices.Sort(lb)
	return slices.Equal(la, lb)
}

// Key returns the canonical anagram key of word: its normalized letters in
// ascending code point order. Two words share a key exactly when they are
// anagrams of each other.
func Key(word string) string {
	l := letters(word)
	slices.Sort(l)
	return string(l)
}

// Multiset returns how often each letter occurs in the normalized word.
func Multiset(word string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range Normalize(word) {
		counts[r]++
	}
	return counts
}

// Count returns the number of distinct arrangements of word's letters.
//
// The result is n!/(k1!·…·km!) over the letter multiset and always matches
// len(Generate(word, true)). The empty word has exactly one arrangement.
func Count(word string) *big.Int {
	counts := Multiset(word)
	n := 0
	for _, k := range counts {
		n += k
	}

	result := perm.BigFactorial(n)
	for _, k := range counts {
		result.Quo(result, perm.BigFactorial(k))
	}
	return result
}
