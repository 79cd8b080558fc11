package anagram

import "math/rand/v2"

// NewRand returns a generator seeded deterministically from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Shuffle returns the runes of word in a uniformly random order using a
// Fisher–Yates shuffle. The word is used as given; case and whitespace are
// kept. A nil rng draws from the global math/rand/v2 source.
func Shuffle(word string, rng *rand.Rand) string {
	symbols := []rune(word)
	for i := len(symbols) - 1; i > 0; i-- {
		j := intN(rng, i+1)
		symbols[i], symbols[j] = symbols[j], symbols[i]
	}
	return string(symbols)
}

// RandomAnagram shuffles the normalized form of word.
func RandomAnagram(word string, rng *rand.Rand) string {
	return Shuffle(Normalize(word), rng)
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
