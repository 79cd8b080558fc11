// Package cli implements the anagramma command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/anagramma/pkg/buildinfo"
	"github.com/matzehuels/anagramma/pkg/config"
	"github.com/matzehuels/anagramma/pkg/errors"
	anaio "github.com/matzehuels/anagramma/pkg/io"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "anagramma"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	noColor    bool
}

// New creates a new CLI instance with a default logger and default settings.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Anagramma finds, counts and groups anagrams",
		Long:          `Anagramma is a CLI tool for working with anagrams: compare words, enumerate every rearrangement of a word's letters, count distinct arrangements, group word lists into anagram classes and shuffle letters.`,
		Version:       buildinfo.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/anagramma/config.toml)")
	root.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "disable styled output")

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.countCommand())
	root.AddCommand(c.keyCommand())
	root.AddCommand(c.groupCommand())
	root.AddCommand(c.shuffleCommand())
	root.AddCommand(c.examplesCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig resolves settings and attaches the logger to the command context.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.noColor {
		cfg.Color = false
	}
	c.Config = cfg
	c.Logger.Debug("config loaded", "path", c.configPath, "format", cfg.Format, "unique", cfg.Unique)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// addFormatFlag registers --format with the configured default and shell
// completion of the supported formats.
func addFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "format", "f", "", "output format: text, json or yaml (default from config)")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(anaio.Formats, cobra.ShellCompDirectiveNoFileComp))
}

// resolveFormat returns the flag value, falling back to the configured format.
func (c *CLI) resolveFormat(flag string) (string, error) {
	format := flag
	if format == "" {
		format = c.Config.Format
	}
	if err := errors.ValidateFormat(format, anaio.Formats); err != nil {
		return "", err
	}
	return format, nil
}

// validateWords checks every word argument.
func validateWords(words []string) error {
	for _, w := range words {
		if err := errors.ValidateWord(w); err != nil {
			return err
		}
	}
	return nil
}
