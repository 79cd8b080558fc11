package anagram

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/anagramma/pkg/perm"
)

func TestGenerateAllIsFactorial(t *testing.T) {
	for _, w := range sampleWords {
		n := len([]rune(Normalize(w)))
		got := Generate(w, false)
		if len(got) != perm.Factorial(n) {
			t.Errorf("len(Generate(%q, false)) = %d, want %d", w, len(got), perm.Factorial(n))
		}
	}
}

func TestGenerateUniqueMatchesCount(t *testing.T) {
	for _, w := range sampleWords {
		got := Generate(w, true)
		if want := Count(w); int64(len(got)) != want.Int64() {
			t.Errorf("len(Generate(%q, true)) = %d, Count = %s", w, len(got), want)
		}
	}
}

func TestGenerateUniqueHasNoDuplicates(t *testing.T) {
	for _, w := range sampleWords {
		got := Generate(w, true)
		seen := make(map[string]bool, len(got))
		for _, s := range got {
			if seen[s] {
				t.Errorf("Generate(%q, true) repeated %q", w, s)
			}
			seen[s] = true
		}
	}
}

func TestGenerateElementsAreAnagrams(t *testing.T) {
	for _, w := range sampleWords {
		for _, s := range Generate(w, false) {
			if !AreAnagrams(s, w) {
				t.Fatalf("Generate(%q) produced %q, which is not an anagram", w, s)
			}
		}
	}
}

func TestGenerateSameDistinctSet(t *testing.T) {
	all := Generate("anna", false)
	unique := Generate("anna", true)

	distinct := slices.Compact(slices.Sorted(slices.Values(all)))
	slices.Sort(unique)
	if !slices.Equal(distinct, unique) {
		t.Errorf("distinct(all) = %v, unique = %v", distinct, unique)
	}

	want := []string{"aann", "anan", "anna", "naan", "nana", "nnaa"}
	if !slices.Equal(unique, want) {
		t.Errorf("Generate(anna, true) = %v, want %v", unique, want)
	}
}

func TestGenerateNormalizes(t *testing.T) {
	got := Generate(" Ab ", true)
	slices.Sort(got)
	if want := []string{"ab", "ba"}; !slices.Equal(got, want) {
		t.Errorf("Generate(\" Ab \") = %v, want %v", got, want)
	}
}

func TestGenerateEmpty(t *testing.T) {
	for _, unique := range []bool{true, false} {
		got := Generate("", unique)
		if len(got) != 1 || got[0] != "" {
			t.Errorf("Generate(\"\", %v) = %q, want [\"\"]", unique, got)
		}
	}
}

func TestGenerateWithQuietForShortWords(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	GenerateWith("attore", Options{Unique: true, Logger: logger})
	if buf.Len() != 0 {
		t.Errorf("unexpected advisory for a short word: %s", buf.String())
	}
}

func TestAdvise(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{0, false},
		{AdvisoryLength, false},
		{AdvisoryLength + 1, true},
		{30, true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		advise(log.New(&buf), tt.n)

		if logged := buf.Len() > 0; logged != tt.want {
			t.Errorf("advise(%d) logged = %v, want %v", tt.n, logged, tt.want)
		}
		if tt.want && !strings.Contains(buf.String(), "letters") {
			t.Errorf("advisory should mention the letter count: %s", buf.String())
		}
	}
}

func TestGenerateWithLimit(t *testing.T) {
	tests := []struct {
		word   string
		unique bool
		limit  int
		want   int
	}{
		{"cane", false, 5, 5},
		{"cane", true, 5, 5},
		{"anna", true, 4, 4},
		{"anna", true, 10, 6},
		{"anna", false, 0, 24},
		{"ape", false, -1, 6},
	}

	for _, tt := range tests {
		got := GenerateWith(tt.word, Options{Unique: tt.unique, Limit: tt.limit})
		if len(got) != tt.want {
			t.Errorf("GenerateWith(%q, unique=%v, limit=%d) returned %d, want %d",
				tt.word, tt.unique, tt.limit, len(got), tt.want)
		}
	}
}

func TestGenerateWithLimitIsPrefix(t *testing.T) {
	full := Generate("calendario", true)
	head := GenerateWith("calendario", Options{Unique: true, Limit: 50})
	if !slices.Equal(head, full[:50]) {
		t.Errorf("limited result is not a prefix of the full result")
	}
}

func TestGenerateWithCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := GenerateWith("calendario", Options{Context: ctx})
	if len(got) != 0 {
		t.Errorf("cancelled generation returned %d results, want 0", len(got))
	}
}

func TestGenerateWithCancelledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if got := GenerateWith("attore", Options{Context: ctx}); len(got) != 720 {
		t.Fatalf("live context returned %d results, want 720", len(got))
	}

	done := make(chan []string)
	go func() {
		done <- GenerateWith("abcdefghij", Options{Context: ctx})
	}()
	cancel()
	if got := <-done; len(got) >= perm.Factorial(10) {
		t.Errorf("generation ignored cancellation: %d results", len(got))
	}
}
