package errors

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxWordBytes caps a single CLI argument. Anything longer is not a word.
const maxWordBytes = 1024

// ValidateWord checks a word supplied on the command line.
//
// Rules:
//   - Must be valid UTF-8
//   - No control characters other than whitespace (tabs and newlines are
//     removed by normalization anyway)
//   - Maximum length of 1024 bytes
//
// The empty string is accepted: it is a valid word with one arrangement.
func ValidateWord(word string) error {
	if len(word) > maxWordBytes {
		return New(ErrCodeInvalidInput, "word too long (max %d bytes)", maxWordBytes)
	}
	if !utf8.ValidString(word) {
		return New(ErrCodeInvalidInput, "word is not valid UTF-8: %q", word)
	}
	for _, r := range word {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "word contains invalid control characters: %q", word)
		}
	}
	return nil
}

// ValidateLength rejects a word of n symbols when n exceeds max.
// A max of zero or less disables the check.
func ValidateLength(word string, n, max int) error {
	if max > 0 && n > max {
		return New(ErrCodeTooLong, "%q has %d letters (max %d, use --force to override)", word, n, max)
	}
	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed []string) error {
	if slices.Contains(allowed, format) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "unknown format %q (expected one of: %s)", format, strings.Join(allowed, ", "))
}
