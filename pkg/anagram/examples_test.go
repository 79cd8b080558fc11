package anagram

import "testing"

func TestExamples(t *testing.T) {
	pairs := Examples()
	if len(pairs) != 10 {
		t.Fatalf("Examples() returned %d pairs, want 10", len(pairs))
	}
	for _, p := range pairs {
		if !AreAnagrams(p.Original, p.Anagram) {
			t.Errorf("%q and %q are not anagrams", p.Original, p.Anagram)
		}
		if p.Original == p.Anagram {
			t.Errorf("pair %q maps to itself", p.Original)
		}
	}
}

func TestExamplesReturnsCopy(t *testing.T) {
	first := Examples()
	first[0].Original = "changed"
	if Examples()[0].Original == "changed" {
		t.Error("Examples() should return an independent copy")
	}
}
