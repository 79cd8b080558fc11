package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/anagramma/pkg/anagram"
	anaio "github.com/matzehuels/anagramma/pkg/io"
)

// examplesCommand creates the examples command that prints the reference pairs.
func (c *CLI) examplesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Show the built-in Italian anagram pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := c.resolveFormat(format)
			if err != nil {
				return err
			}

			pairs := anagram.Examples()
			if format != anaio.FormatText {
				return anaio.Encode(cmd.OutOrStdout(), format, anaio.ExamplesDoc{Pairs: pairs})
			}

			p := c.printerFor(cmd)
			p.table([]string{"Originale", "Anagramma", "Key", "Arrangements", "OK"}, exampleRows(pairs))
			return nil
		},
	}

	addFormatFlag(cmd, &format)
	return cmd
}

func exampleRows(pairs []anagram.Pair) [][]string {
	rows := make([][]string, 0, len(pairs))
	for _, pr := range pairs {
		ok := iconError
		if anagram.AreAnagrams(pr.Original, pr.Anagram) {
			ok = iconSuccess
		}
		rows = append(rows, []string{
			pr.Original,
			pr.Anagram,
			anagram.Key(pr.Original),
			anagram.Count(pr.Original).String(),
			ok,
		})
	}
	return rows
}
