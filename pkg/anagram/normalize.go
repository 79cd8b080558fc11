package anagram

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// folder is stateless and safe for concurrent use.
var folder = cases.Fold()

// UnicodeVersion is the Unicode version of the case folding tables.
const UnicodeVersion = cases.UnicodeVersion

// Normalize removes every whitespace rune from word and case-folds the rest.
//
// Whitespace is deleted, not collapsed: "la mora" becomes "lamora". Folding
// uses Unicode case folding, which maps every rune independently of its
// neighbours, so two permutations of the same letters always normalize to
// permutations of each other (a Greek sigma folds to σ wherever it sits).
// Accented letters are folded but otherwise left alone. The result contains
// no whitespace, so the final trim only guards the contract.
func Normalize(word string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, word)
	return strings.TrimSpace(folder.String(stripped))
}

// letters returns the runes of the normalized word.
func letters(word string) []rune {
	return []rune(Normalize(word))
}
