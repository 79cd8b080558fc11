package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinterPlain(t *testing.T) {
	var buf bytes.Buffer
	p := &printer{w: &buf, plain: true}

	p.success("done %d", 3)
	p.failure("nope")
	p.warning("careful")
	p.info("note")
	p.detail("small")
	p.title("Heading")
	p.keyValue("roma", "amor")
	p.item("mora")
	p.stats("4 letters", "24 distinct")

	want := []string{
		iconSuccess + " done 3",
		iconError + " nope",
		iconWarning + " careful",
		iconInfo + " note",
		"  small",
		"Heading",
		"roma         amor",
		"  " + iconArrow + " mora",
		"  4 letters · 24 distinct",
	}
	got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPrinterTable(t *testing.T) {
	var buf bytes.Buffer
	p := &printer{w: &buf, plain: true}
	p.table([]string{"Key", "Words"}, [][]string{{"amor", "roma, mora"}, {"acen", "cane, acne"}})

	out := buf.String()
	for _, want := range []string{"Key", "Words", "amor", "roma, mora", "cane, acne"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
