package cli

import (
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/matzehuels/anagramma/pkg/anagram"
	"github.com/matzehuels/anagramma/pkg/errors"
	anaio "github.com/matzehuels/anagramma/pkg/io"
	"github.com/matzehuels/anagramma/pkg/perm"
)

// generateOpts holds flags for the generate command.
type generateOpts struct {
	all    bool
	limit  int
	format string
	force  bool
}

// generateCommand creates the generate command that enumerates anagrams.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{limit: -1}

	cmd := &cobra.Command{
		Use:   "generate WORD",
		Short: "List every rearrangement of a word's letters",
		Long: `List every rearrangement of a word's letters.

By default repeated arrangements are removed (config: unique). Use --all to
keep every one of the n! orderings, duplicates included.

Words longer than max_length letters are refused unless --force is given:
the number of arrangements grows factorially.`,
		Example: `  anagramma generate roma
  anagramma generate anna --all
  anagramma generate attore --limit 20 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.all, "all", false, "keep duplicate arrangements (n! results)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", -1, "print at most N anagrams, 0 for all (default from config)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "generate even when the word exceeds max_length")
	addFormatFlag(cmd, &opts.format)

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, word string, opts generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if err := errors.ValidateWord(word); err != nil {
		return err
	}
	format, err := c.resolveFormat(opts.format)
	if err != nil {
		return err
	}
	n, err := c.checkLength(word, opts.force)
	if err != nil {
		return err
	}

	unique := c.Config.Unique && !opts.all
	limit := opts.limit
	if limit < 0 {
		limit = c.Config.Limit
	}

	logger.Debug("generating", "word", word, "letters", n, "unique", unique, "limit", limit)
	prog := newProgress(logger)

	var spinner *Spinner
	if n > anagram.AdvisoryLength && format == anaio.FormatText {
		spinner = newSpinner(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Generating anagrams of %s...", word))
		spinner.Start()
	}
	results := anagram.GenerateWith(word, anagram.Options{
		Unique:  unique,
		Limit:   limit,
		Context: ctx,
		Logger:  logger,
	})
	if spinner != nil {
		spinner.Stop()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d anagrams", len(results)))

	count := anagram.Count(word)
	total := count
	if !unique {
		total = perm.BigFactorial(n)
	}

	doc := anaio.Generation{
		Word:       word,
		Normalized: anagram.Normalize(word),
		Unique:     unique,
		Count:      count.String(),
		Total:      total.String(),
		Anagrams:   results,
	}

	if format != anaio.FormatText {
		return anaio.Encode(cmd.OutOrStdout(), format, doc)
	}

	p := c.printerFor(cmd)
	if max := c.Config.MaxLength; max > 0 && n > max {
		p.warning("%d letters exceeds max_length %d", n, max)
	}
	p.title("%s", doc.Normalized)
	kind := "distinct"
	if !unique {
		kind = "orderings"
	}
	p.stats(fmt.Sprintf("%d letters", n), doc.Total+" "+kind, "count "+doc.Count)
	for _, a := range results {
		p.item(a)
	}
	shown := big.NewInt(int64(len(results)))
	if rest := new(big.Int).Sub(total, shown); rest.Sign() > 0 {
		p.detail("%s more not shown (use --limit 0 for all)", rest)
	}
	return nil
}

// checkLength returns the normalized letter count of word and refuses words
// longer than the configured maximum unless force is set.
func (c *CLI) checkLength(word string, force bool) (int, error) {
	n := utf8.RuneCountInString(anagram.Normalize(word))
	if force {
		return n, nil
	}
	if err := errors.ValidateLength(word, n, c.Config.MaxLength); err != nil {
		return 0, err
	}
	return n, nil
}
