package cli

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/matzehuels/anagramma/pkg/anagram"
	"github.com/matzehuels/anagramma/pkg/errors"
	anaio "github.com/matzehuels/anagramma/pkg/io"
)

// shuffleOpts holds flags for the shuffle command.
type shuffleOpts struct {
	seed      uint64
	normalize bool
	times     int
	format    string
}

// shuffleCommand creates the shuffle command for random letter rearrangements.
func (c *CLI) shuffleCommand() *cobra.Command {
	var opts shuffleOpts

	cmd := &cobra.Command{
		Use:   "shuffle WORD",
		Short: "Randomly rearrange the letters of a word",
		Long: `Randomly rearrange the letters of a word.

Every arrangement is equally likely. The word is shuffled as given, spaces and
capitals included, unless --normalize is set. A non-zero --seed (or the seed
config value) makes the output reproducible.`,
		Example: `  anagramma shuffle roma
  anagramma shuffle "Roma Amor" --normalize --times 5 --seed 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			if err := errors.ValidateWord(word); err != nil {
				return err
			}
			format, err := c.resolveFormat(opts.format)
			if err != nil {
				return err
			}
			if opts.times < 1 {
				return errors.New(errors.ErrCodeInvalidInput, "--times must be at least 1, got %d", opts.times)
			}

			seed := c.Config.Seed
			if cmd.Flags().Changed("seed") {
				seed = opts.seed
			}
			var rng *rand.Rand
			if seed != 0 {
				rng = anagram.NewRand(seed)
			}
			loggerFromContext(cmd.Context()).Debug("shuffling", "word", word, "seed", seed, "times", opts.times)

			doc := anaio.Shuffles{Word: word, Results: make([]string, 0, opts.times)}
			for range opts.times {
				if opts.normalize {
					doc.Results = append(doc.Results, anagram.RandomAnagram(word, rng))
				} else {
					doc.Results = append(doc.Results, anagram.Shuffle(word, rng))
				}
			}

			if format != anaio.FormatText {
				return anaio.Encode(cmd.OutOrStdout(), format, doc)
			}

			p := c.printerFor(cmd)
			for _, r := range doc.Results {
				p.item(r)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed, 0 for a random source (default from config)")
	cmd.Flags().BoolVar(&opts.normalize, "normalize", false, "normalize the word before shuffling")
	cmd.Flags().IntVarP(&opts.times, "times", "t", 1, "number of shuffles to print")
	addFormatFlag(cmd, &opts.format)

	return cmd
}
