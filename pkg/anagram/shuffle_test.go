package anagram

import (
	"testing"
	"unicode/utf8"
)

func TestShufflePreservesLetters(t *testing.T) {
	rng := NewRand(42)
	for _, w := range sampleWords {
		for range 50 {
			got := Shuffle(w, rng)
			if !AreAnagrams(got, w) {
				t.Fatalf("Shuffle(%q) = %q, not an anagram", w, got)
			}
			if utf8.RuneCountInString(got) != utf8.RuneCountInString(w) {
				t.Fatalf("Shuffle(%q) = %q, length changed", w, got)
			}
		}
	}
}

func TestShuffleSigmaStaysAnagram(t *testing.T) {
	rng := NewRand(7)
	for _, w := range []string{"ΑΣ", "ΟΔΟΣ", "ΣΟΦΟΣ"} {
		for range 100 {
			if got := Shuffle(w, rng); !AreAnagrams(got, w) || Key(got) != Key(w) {
				t.Fatalf("Shuffle(%q) = %q, keys %q and %q", w, got, Key(got), Key(w))
			}
		}
	}
}

func TestShuffleKeepsCaseAndSpaces(t *testing.T) {
	got := Shuffle("A b", NewRand(1))
	if utf8.RuneCountInString(got) != 3 {
		t.Fatalf("Shuffle(\"A b\") = %q, want 3 runes", got)
	}
	counts := map[rune]int{}
	for _, r := range got {
		counts[r]++
	}
	if counts['A'] != 1 || counts[' '] != 1 || counts['b'] != 1 {
		t.Errorf("Shuffle(\"A b\") = %q, want the same runes", got)
	}
}

func TestShuffleGlobalSource(t *testing.T) {
	for range 20 {
		if got := Shuffle("perché", nil); !AreAnagrams(got, "perché") {
			t.Fatalf("Shuffle(perché, nil) = %q", got)
		}
	}
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	a := Shuffle("calendario", NewRand(7))
	b := Shuffle("calendario", NewRand(7))
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
}

func TestShuffleUniform(t *testing.T) {
	const trials = 6000
	rng := NewRand(2024)
	counts := make(map[string]int)
	for range trials {
		counts[Shuffle("abc", rng)]++
	}

	if len(counts) != 6 {
		t.Fatalf("expected all 6 arrangements, got %v", counts)
	}
	// Expected 1000 each; the bounds are more than six standard deviations wide.
	for s, c := range counts {
		if c < 800 || c > 1200 {
			t.Errorf("arrangement %q appeared %d times, want about 1000", s, c)
		}
	}
}

func TestShuffleShortWords(t *testing.T) {
	if got := Shuffle("", nil); got != "" {
		t.Errorf("Shuffle(\"\") = %q", got)
	}
	if got := Shuffle("è", nil); got != "è" {
		t.Errorf("Shuffle(è) = %q", got)
	}
}

func TestRandomAnagram(t *testing.T) {
	rng := NewRand(3)
	for range 20 {
		got := RandomAnagram(" La Mora ", rng)
		if Normalize(got) != got {
			t.Fatalf("RandomAnagram returned non-normalized %q", got)
		}
		if !AreAnagrams(got, "lamora") {
			t.Fatalf("RandomAnagram(La Mora) = %q", got)
		}
	}
}
