package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/anagramma/pkg/anagram"
	anaio "github.com/matzehuels/anagramma/pkg/io"
)

// checkCommand creates the check command for comparing two words.
func (c *CLI) checkCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check WORD WORD",
		Short: "Check whether two words are anagrams of each other",
		Long: `Check whether two words are anagrams of each other.

Both words are normalized first: whitespace is removed and letters are
lowercased, so "Roma" and "a mor" compare equal.`,
		Example: `  anagramma check roma amor
  anagramma check "Dormitory" "dirty room" --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateWords(args); err != nil {
				return err
			}
			format, err := c.resolveFormat(format)
			if err != nil {
				return err
			}

			a, b := args[0], args[1]
			res := anaio.Comparison{
				A:        a,
				B:        b,
				KeyA:     anagram.Key(a),
				KeyB:     anagram.Key(b),
				Anagrams: anagram.AreAnagrams(a, b),
			}
			loggerFromContext(cmd.Context()).Debug("compared", "a", res.KeyA, "b", res.KeyB)

			if format != anaio.FormatText {
				return anaio.Encode(cmd.OutOrStdout(), format, res)
			}

			p := c.printerFor(cmd)
			if res.Anagrams {
				p.success("%q and %q are anagrams", a, b)
			} else {
				p.failure("%q and %q are not anagrams", a, b)
			}
			p.keyValue(a, res.KeyA)
			p.keyValue(b, res.KeyB)
			return nil
		},
	}

	addFormatFlag(cmd, &format)
	return cmd
}
