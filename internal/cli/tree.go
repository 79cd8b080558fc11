package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/anagramma/pkg/anagram"
	"github.com/matzehuels/anagramma/pkg/errors"
	"github.com/matzehuels/anagramma/pkg/perm"
)

// treeOpts holds flags for the tree command.
type treeOpts struct {
	output   string
	distinct bool
	paths    bool
}

// treeCommand creates the tree command that draws the permutation decision tree.
func (c *CLI) treeCommand() *cobra.Command {
	var opts treeOpts

	cmd := &cobra.Command{
		Use:   "tree WORD",
		Short: "Draw the permutation tree of a word",
		Long: `Draw the permutation tree of a word as Graphviz DOT or SVG.

Each level of the tree picks the next letter from those still unused, so every
root-to-leaf path spells one arrangement. With --distinct, branches that pick
an equal letter are merged and leaves are distinct anagrams only.

With --paths the leaf arrangements are listed in tree order instead of
drawing the tree. Without --output the DOT source is written to stdout. The output format
follows the file extension: .dot or .svg. Words are limited to 6 letters.`,
		Example: `  anagramma tree ape
  anagramma tree anna --distinct -o anna.svg
  anagramma tree anna --distinct --paths`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTree(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.dot or .svg)")
	cmd.Flags().BoolVar(&opts.distinct, "distinct", false, "merge branches that pick an equal letter")
	cmd.Flags().BoolVar(&opts.paths, "paths", false, "list root-to-leaf arrangements instead of drawing")

	return cmd
}

func (c *CLI) runTree(cmd *cobra.Command, word string, opts treeOpts) error {
	if err := errors.ValidateWord(word); err != nil {
		return err
	}

	labels := strings.Split(anagram.Normalize(word), "")
	if len(labels) == 1 && labels[0] == "" {
		labels = nil
	}
	if perm.TooLarge(len(labels)) {
		return errors.New(errors.ErrCodeTooLong, "%q has %d letters, too many to draw (max 6)", word, len(labels))
	}

	tree := perm.NewTree(labels, opts.distinct)
	logger := loggerFromContext(cmd.Context())
	logger.Debug("built tree", "letters", len(labels), "leaves", tree.Leaves(), "nodes", tree.Size())

	if opts.paths {
		p := c.printerFor(cmd)
		p.title("%s", strings.Join(labels, ""))
		p.stats(fmt.Sprintf("%d leaves", tree.Leaves()), fmt.Sprintf("%d nodes", tree.Size()))
		for _, path := range tree.Paths() {
			p.item(strings.Join(path, ""))
		}
		return nil
	}

	if opts.output == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), tree.ToDOT())
		return err
	}

	var data []byte
	switch ext := strings.ToLower(filepath.Ext(opts.output)); ext {
	case ".dot", ".gv":
		data = []byte(tree.ToDOT())
	case ".svg":
		prog := newProgress(logger)
		svg, err := tree.RenderSVG(cmd.Context())
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render tree")
		}
		prog.done("Rendered tree")
		data = svg
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported output extension %q (expected .dot or .svg)", ext)
	}

	if err := writeFile(opts.output, data); err != nil {
		return err
	}
	c.printerFor(cmd).success("Wrote %s (%d leaves)", opts.output, tree.Leaves())
	return nil
}

// writeFile creates path, overwriting it if it exists.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
