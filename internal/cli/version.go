package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/anagramma/pkg/anagram"
	"github.com/matzehuels/anagramma/pkg/buildinfo"
	anaio "github.com/matzehuels/anagramma/pkg/io"
)

// versionDoc is the structured output of the version command.
type versionDoc struct {
	buildinfo.Info `yaml:",inline"`
	Unicode        string `json:"unicode" yaml:"unicode"`
}

// versionCommand creates the version command that reports build metadata.
func (c *CLI) versionCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show build and Unicode table versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVersion(cmd, format)
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

func (c *CLI) runVersion(cmd *cobra.Command, flag string) error {
	format, err := c.resolveFormat(flag)
	if err != nil {
		return err
	}
	doc := versionDoc{Info: buildinfo.Get(), Unicode: anagram.UnicodeVersion}
	if format != anaio.FormatText {
		return anaio.Encode(cmd.OutOrStdout(), format, doc)
	}

	p := c.printerFor(cmd)
	p.title("%s %s", appName, doc.Version)
	p.keyValue("commit", doc.Commit)
	p.keyValue("built", doc.Date)
	p.keyValue("go", doc.GoVersion+" ("+doc.Platform+")")
	p.keyValue("unicode", doc.Unicode)
	return nil
}
