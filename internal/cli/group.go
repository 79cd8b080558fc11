package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/anagramma/pkg/anagram"
	"github.com/matzehuels/anagramma/pkg/errors"
	anaio "github.com/matzehuels/anagramma/pkg/io"
)

// groupCommand creates the group command that buckets words into anagram classes.
func (c *CLI) groupCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "group [WORD...]",
		Short: "Group words into anagram classes",
		Long: `Group words into anagram classes.

Words are read from the arguments, or from stdin when none are given. Stdin
may hold one word per line or a JSON array of strings. Only classes with at
least two members are printed, in order of first appearance.`,
		Example: `  anagramma group roma amor mora cane acne casa
  cat words.txt | anagramma group --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := c.resolveFormat(format)
			if err != nil {
				return err
			}

			words := args
			if len(words) == 0 {
				words, err = anaio.ReadWords(cmd.InOrStdin())
				if err != nil {
					return errors.Wrap(errors.ErrCodeInvalidInput, err, "read words from stdin")
				}
			}
			if err := validateWords(words); err != nil {
				return err
			}

			groups := anagram.Group(words)
			loggerFromContext(cmd.Context()).Debug("grouped", "words", len(words), "groups", groups.Len())

			if format != anaio.FormatText {
				return anaio.Encode(cmd.OutOrStdout(), format, anaio.FromGroups(groups))
			}

			p := c.printerFor(cmd)
			if groups.Len() == 0 {
				p.info("No anagram groups among %d words", len(words))
				return nil
			}

			rows := make([][]string, 0, groups.Len())
			for key, members := range groups.All() {
				rows = append(rows, []string{key, strings.Join(members, ", "), strconv.Itoa(len(members))})
			}
			p.table([]string{"Key", "Words", "Size"}, rows)
			p.stats(fmt.Sprintf("%d words", len(words)), fmt.Sprintf("%d groups", groups.Len()))
			return nil
		},
	}

	addFormatFlag(cmd, &format)
	return cmd
}
