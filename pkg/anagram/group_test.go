package anagram

import (
	"slices"
	"testing"
)

func TestGroup(t *testing.T) {
	g := Group([]string{"roma", "amor", "mora", "cane", "acne", "casa"})

	if g.Len() != 2 {
		t.Fatalf("Group returned %d groups, want 2: %v", g.Len(), g.Members)
	}

	if want := []string{"amor", "acen"}; !slices.Equal(g.Keys, want) {
		t.Errorf("Keys = %v, want %v", g.Keys, want)
	}
	if want := []string{"roma", "amor", "mora"}; !slices.Equal(g.Members["amor"], want) {
		t.Errorf("Members[amor] = %v, want %v", g.Members["amor"], want)
	}
	if want := []string{"cane", "acne"}; !slices.Equal(g.Members["acen"], want) {
		t.Errorf("Members[acen] = %v, want %v", g.Members["acen"], want)
	}
	if _, ok := g.Members[Key("casa")]; ok {
		t.Error("casa has no partner and should be excluded")
	}
}

func TestGroupSigmaPosition(t *testing.T) {
	g := Group([]string{"ΣΑ", "ΑΣ", "ΟΔΟΣ", "ΣΟΔΟ"})

	if want := []string{"ασ", "δοοσ"}; !slices.Equal(g.Keys, want) {
		t.Fatalf("Keys = %v, want %v", g.Keys, want)
	}
	if want := []string{"ΣΑ", "ΑΣ"}; !slices.Equal(g.Members["ασ"], want) {
		t.Errorf("Members[ασ] = %v, want %v", g.Members["ασ"], want)
	}
}

func TestGroupKeepsOriginalForm(t *testing.T) {
	g := Group([]string{"Roma", "la mora", "AMOR", "Moral a"})

	if want := []string{"Roma", "AMOR"}; !slices.Equal(g.Members["amor"], want) {
		t.Errorf("Members[amor] = %v, want %v", g.Members["amor"], want)
	}
	if want := []string{"la mora", "Moral a"}; !slices.Equal(g.Members["aalmor"], want) {
		t.Errorf("Members[aalmor] = %v, want %v", g.Members["aalmor"], want)
	}
}

func TestGroupFirstOccurrenceOrder(t *testing.T) {
	g := Group([]string{"cane", "roma", "acne", "mora", "lago", "gola"})
	if want := []string{"acen", "amor", "aglo"}; !slices.Equal(g.Keys, want) {
		t.Errorf("Keys = %v, want %v", g.Keys, want)
	}

	var keys []string
	for k, members := range g.All() {
		keys = append(keys, k)
		if len(members) < 2 {
			t.Errorf("group %q has %d members", k, len(members))
		}
	}
	if !slices.Equal(keys, g.Keys) {
		t.Errorf("All() order = %v, want %v", keys, g.Keys)
	}
}

func TestGroupEmpty(t *testing.T) {
	for _, words := range [][]string{nil, {}, {"solo"}, {"a", "b", "c"}} {
		if g := Group(words); g.Len() != 0 {
			t.Errorf("Group(%v) = %v, want no groups", words, g.Members)
		}
	}
}

func TestGroupsAllEarlyStop(t *testing.T) {
	g := Group([]string{"roma", "amor", "cane", "acne"})
	n := 0
	for range g.All() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iteration did not stop: %d", n)
	}
}
