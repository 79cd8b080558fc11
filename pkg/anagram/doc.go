// Package anagram provides word-level anagram utilities.
//
// # Overview
//
// Every function normalizes its input first (see [Normalize]): whitespace is
// removed and letters are lowercased. Words are handled as sequences of
// runes, so accented letters such as "è" count as one symbol and survive
// normalization unchanged.
//
//   - [AreAnagrams]: do two words use the same letters?
//   - [Key]: the sorted-letter form shared by all anagrams of a word
//   - [Generate]: every rearrangement of a word's letters
//   - [Count]: how many distinct rearrangements exist, without generating them
//   - [Group]: bucket a word list into anagram classes
//   - [Shuffle] and [RandomAnagram]: one random rearrangement
//   - [Examples]: reference pairs of Italian anagrams
//
// # Counting
//
// [Count] is the multinomial coefficient n!/(k1!·k2!·…·km!) where n is the
// number of letters and k1…km are the repeat counts of each distinct letter.
// It always equals len(Generate(word, true)):
//
//	anagram.Count("cane") // 24: four distinct letters
//	anagram.Count("anna") // 6:  4!/(2!·2!)
//	anagram.Count("")     // 1:  the empty arrangement
//
// # Cost
//
// [Generate] enumerates all n! orderings before deduplicating, which is
// feasible up to roughly ten letters. Longer words log a warning through
// charmbracelet/log (see [Options]) but are never refused; callers that need
// a hard limit enforce it themselves.
//
// # Randomness
//
// [Shuffle] takes an explicit *rand.Rand. Pass nil for the global source, or
// a seeded generator from [NewRand] for reproducible output.
package anagram
