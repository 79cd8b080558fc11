package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/anagramma/pkg/anagram"
	"github.com/matzehuels/anagramma/pkg/perm"
)

// demoSeed makes the demo's shuffle section reproducible.
const demoSeed = 2024

var demoWords = []string{"roma", "amor", "mora", "cane", "acne", "casa"}

// demoCommand creates the demo command, a guided tour of the library.
func (c *CLI) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through every anagram operation on sample words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.runDemo(c.printerFor(cmd))
			return nil
		},
	}
}

func (c *CLI) runDemo(p *printer) {
	p.title("Normalize")
	for _, w := range []string{"  Roma Amor ", "ROMA", "città"} {
		p.keyValue(strconv.Quote(w), strconv.Quote(anagram.Normalize(w)))
	}
	p.newline()

	p.title("AreAnagrams")
	for _, pair := range [][2]string{{"roma", "amor"}, {"Dormitory", "dirty room"}, {"cane", "casa"}} {
		p.keyValue(pair[0]+" / "+pair[1], strconv.FormatBool(anagram.AreAnagrams(pair[0], pair[1])))
	}
	p.newline()

	p.title("Key")
	for _, w := range []string{"roma", "mora", "amor"} {
		p.keyValue(w, anagram.Key(w))
	}
	p.newline()

	p.title("Generate")
	p.keyValue("ape", strings.Join(anagram.Generate("ape", true), " "))
	all := anagram.Generate("anna", false)
	distinct := anagram.Generate("anna", true)
	p.keyValue("anna", strings.Join(distinct, " "))
	p.stats(fmt.Sprintf("%d orderings", len(all)), fmt.Sprintf("%d distinct", len(distinct)))
	p.newline()

	p.title("Count")
	for _, w := range []string{"", "cane", "anna", "mississippi"} {
		p.keyValue(strconv.Quote(w), anagram.Count(w).String())
		p.detail("%s", formula(w))
	}
	p.newline()

	p.title("Group")
	p.detail("%s", strings.Join(demoWords, " "))
	for key, members := range anagram.Group(demoWords).All() {
		p.keyValue(key, strings.Join(members, ", "))
	}
	p.newline()

	p.title("Shuffle")
	rng := anagram.NewRand(demoSeed)
	for _, w := range []string{"roma", "calendario"} {
		p.keyValue(w, anagram.Shuffle(w, rng))
	}
	p.keyValue("Roma Amor", anagram.RandomAnagram("Roma Amor", rng))
	p.newline()

	p.title("Permutations")
	for _, ordering := range perm.Of([]string{"a", "p", "e"}) {
		p.item(strings.Join(ordering, ""))
	}
	p.stats(fmt.Sprintf("3! = %d", perm.Factorial(3)))
	p.newline()

	p.title("Examples")
	p.table([]string{"Originale", "Anagramma", "Key", "Arrangements", "OK"}, exampleRows(anagram.Examples()[:3]))
}
