package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/anagramma/pkg/anagram"
	"github.com/matzehuels/anagramma/pkg/errors"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command, an interactive pager over anagrams.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		all   bool
		force bool
	)

	cmd := &cobra.Command{
		Use:   "browse WORD",
		Short: "Page through the anagrams of a word interactively",
		Long: `Page through the anagrams of a word interactively.

Use the arrow keys (or j/k) to move, PgUp/PgDn to jump a page, enter to pick
the highlighted anagram and print it, q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			if err := errors.ValidateWord(word); err != nil {
				return err
			}
			if _, err := c.checkLength(word, force); err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			unique := c.Config.Unique && !all
			items := anagram.GenerateWith(word, anagram.Options{Unique: unique, Context: cmd.Context(), Logger: logger})
			if err := cmd.Context().Err(); err != nil {
				return err
			}

			m := NewBrowseModel(anagram.Normalize(word), items)
			prog := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			finalModel, err := prog.Run()
			if err != nil {
				return err
			}

			fm, ok := finalModel.(BrowseModel)
			if !ok || fm.Selected == "" {
				logger.Debug("no selection made")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), fm.Selected)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "keep duplicate arrangements")
	cmd.Flags().BoolVar(&force, "force", false, "browse even when the word exceeds max_length")

	return cmd
}

// =============================================================================
// BrowseModel - Interactive anagram pager
// =============================================================================

// BrowseModel is the bubbletea model for paging through generated anagrams.
type BrowseModel struct {
	Word     string
	Items    []string
	Cursor   int
	Offset   int
	Height   int
	Selected string
}

// NewBrowseModel creates a pager over items.
func NewBrowseModel(word string, items []string) BrowseModel {
	return BrowseModel{
		Word:   word,
		Items:  items,
		Height: 15,
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup", "b":
			m.move(-m.Height)
		case "pgdown", " ", "f":
			m.move(m.Height)
		case "home", "g":
			m.move(-len(m.Items))
		case "end", "G":
			m.move(len(m.Items))
		case "enter":
			if len(m.Items) == 0 {
				return m, nil
			}
			m.Selected = m.Items[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
		m.move(0)
	}
	return m, nil
}

// move shifts the cursor by delta, clamped to the list, and scrolls the
// window so the cursor stays visible.
func (m *BrowseModel) move(delta int) {
	if len(m.Items) == 0 {
		m.Cursor, m.Offset = 0, 0
		return
	}
	m.Cursor = max(0, min(len(m.Items)-1, m.Cursor+delta))
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Anagrams of " + m.Word))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  pgup/pgdn page  ⏎ select  q quit"))
	b.WriteString("\n\n")

	if len(m.Items) == 0 {
		b.WriteString(listDimStyle.Render("  (no anagrams)"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Items))
	for i := m.Offset; i < end; i++ {
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + m.Items[i]))
		} else {
			b.WriteString(listNormalStyle.Render("  " + m.Items[i]))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Items))))

	return b.String()
}
