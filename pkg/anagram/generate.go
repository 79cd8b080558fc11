package anagram

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/anagramma/pkg/perm"
)

// AdvisoryLength is the longest word Generate handles without a warning.
// Above it the n! enumeration becomes expensive (11! is almost 40 million).
const AdvisoryLength = 10

// cancelCheckEvery is how many orderings GenerateWith visits between checks
// of Options.Context.
const cancelCheckEvery = 1 << 12

// Options configures GenerateWith.
type Options struct {
	// Unique drops repeated arrangements caused by repeated letters.
	Unique bool

	// Limit stops generation after that many results. Zero or less means no
	// limit. With Unique set the limit counts distinct arrangements.
	Limit int

	// Context aborts a long enumeration. When it is done GenerateWith returns
	// the results gathered so far; callers tell a cut-short result apart by
	// checking Context.Err. Nil means never cancelled.
	Context context.Context

	// Logger receives the long-input warning. Nil means log.Default().
	Logger *log.Logger
}

// Generate returns every arrangement of word's normalized letters.
//
// With unique set, each distinct arrangement appears once and the result has
// Count(word) elements. Otherwise all n! positional orderings are returned,
// including duplicates that spell the same string.
//
// Words longer than AdvisoryLength log a warning to log.Default(); the
// enumeration still runs.
func Generate(word string, unique bool) []string {
	return GenerateWith(word, Options{Unique: unique})
}

// GenerateWith is Generate with an explicit limit, cancellation context and
// diagnostic logger. Results come in the order of perm.Of over the
// normalized letters.
func GenerateWith(word string, opts Options) []string {
	symbols := letters(word)
	n := len(symbols)

	advise(opts.Logger, n)

	capacity := perm.Factorial(min(n, 9))
	if opts.Limit > 0 && opts.Limit < capacity {
		capacity = opts.Limit
	}
	out := make([]string, 0, capacity)

	var seen map[string]struct{}
	if opts.Unique {
		seen = make(map[string]struct{})
	}

	buf := make([]rune, n)
	visited := 0
	for p := range perm.Indices(n) {
		if opts.Context != nil && visited%cancelCheckEvery == 0 && opts.Context.Err() != nil {
			break
		}
		visited++

		for i, idx := range p {
			buf[i] = symbols[idx]
		}
		s := string(buf)
		if seen != nil {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
		}
		out = append(out, s)
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
	}
	return out
}

// advise warns when n letters exceed AdvisoryLength.
func advise(logger *log.Logger, n int) {
	if n <= AdvisoryLength {
		return
	}
	if logger == nil {
		logger = log.Default()
	}
	logger.Warn("long word, generation may be slow",
		"letters", n,
		"orderings", perm.BigFactorial(n).String())
}
