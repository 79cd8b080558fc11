package anagram

import "iter"

// Groups holds the anagram classes found by Group.
//
// Keys lists anagram keys in order of first occurrence in the input;
// Members maps each key to the original words that share it, in input order.
// Every group has at least two members.
type Groups struct {
	Keys    []string
	Members map[string][]string
}

// Len returns the number of groups.
func (g Groups) Len() int {
	return len(g.Keys)
}

// All iterates over the groups in first-occurrence order.
func (g Groups) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, k := range g.Keys {
			if !yield(k, g.Members[k]) {
				return
			}
		}
	}
}

// Group buckets words by their anagram key and keeps only buckets with two
// or more members. Words are stored as given, not normalized.
func Group(words []string) Groups {
	buckets := make(map[string][]string)
	var order []string
	for _, w := range words {
		k := Key(w)
		if _, ok := buckets[k]; !ok {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], w)
	}

	g := Groups{Members: make(map[string][]string)}
	for _, k := range order {
		if len(buckets[k]) < 2 {
			continue
		}
		g.Keys = append(g.Keys, k)
		g.Members[k] = buckets[k]
	}
	return g
}
