package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/anagramma/pkg/anagram"
	anaio "github.com/matzehuels/anagramma/pkg/io"
)

// keyCommand creates the key command that prints anagram keys.
func (c *CLI) keyCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "key WORD...",
		Short:   "Print the anagram key (sorted letters) of each word",
		Example: `  anagramma key roma mora amor`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateWords(args); err != nil {
				return err
			}
			format, err := c.resolveFormat(format)
			if err != nil {
				return err
			}

			doc := anaio.Keys{Words: make([]anaio.WordKey, 0, len(args))}
			for _, w := range args {
				doc.Words = append(doc.Words, anaio.WordKey{Word: w, Key: anagram.Key(w)})
			}

			if format != anaio.FormatText {
				return anaio.Encode(cmd.OutOrStdout(), format, doc)
			}

			p := c.printerFor(cmd)
			for _, wk := range doc.Words {
				p.keyValue(wk.Word, wk.Key)
			}
			return nil
		},
	}

	addFormatFlag(cmd, &format)
	return cmd
}
