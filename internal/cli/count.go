package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/anagramma/pkg/anagram"
	anaio "github.com/matzehuels/anagramma/pkg/io"
)

// countCommand creates the count command for distinct arrangement counts.
func (c *CLI) countCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "count WORD...",
		Short: "Count the distinct anagrams of each word",
		Long: `Count the distinct anagrams of each word without enumerating them.

The count is the multinomial coefficient n!/(k1!·k2!·…) where n is the
number of letters and each k is how often a letter repeats.`,
		Example: `  anagramma count anna mississippi
  anagramma count "a long sentence" --format yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateWords(args); err != nil {
				return err
			}
			format, err := c.resolveFormat(format)
			if err != nil {
				return err
			}

			doc := anaio.Counts{Words: make([]anaio.WordCount, 0, len(args))}
			for _, w := range args {
				doc.Words = append(doc.Words, anaio.FromCount(w))
			}

			if format != anaio.FormatText {
				return anaio.Encode(cmd.OutOrStdout(), format, doc)
			}

			p := c.printerFor(cmd)
			for _, wc := range doc.Words {
				p.keyValue(wc.Word, wc.Count)
				p.detail("%s", formula(wc.Word))
			}
			return nil
		},
	}

	addFormatFlag(cmd, &format)
	return cmd
}

// formula renders the multinomial behind anagram.Count, e.g. "4!/(2!·2!)".
// Letters that occur once contribute 1! and are left out.
func formula(word string) string {
	ms := anagram.Multiset(word)
	n := 0
	for _, k := range ms {
		n += k
	}

	letters := make([]rune, 0, len(ms))
	for r, k := range ms {
		if k > 1 {
			letters = append(letters, r)
		}
	}
	slices.Sort(letters)

	if len(letters) == 0 {
		return fmt.Sprintf("%d!", n)
	}
	parts := make([]string, len(letters))
	for i, r := range letters {
		parts[i] = fmt.Sprintf("%d!", ms[r])
	}
	if len(parts) == 1 {
		return fmt.Sprintf("%d!/%s", n, parts[0])
	}
	return fmt.Sprintf("%d!/(%s)", n, strings.Join(parts, "·"))
}
