package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleKey        = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleTableHead  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleTableCell  = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
	styleTableFrame = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Printer
// =============================================================================

// printer writes styled status lines to a command's output.
// With plain set, styles are skipped and only the text is written.
type printer struct {
	w     io.Writer
	plain bool
}

// printerFor returns a printer bound to the command's stdout.
func (c *CLI) printerFor(cmd *cobra.Command) *printer {
	return &printer{w: cmd.OutOrStdout(), plain: !c.Config.Color}
}

func (p *printer) render(s lipgloss.Style, text string) string {
	if p.plain {
		return text
	}
	return s.Render(text)
}

func (p *printer) line(text string) {
	fmt.Fprintln(p.w, text)
}

// success prints a success message.
func (p *printer) success(format string, args ...any) {
	p.line(p.render(styleIconSuccess, iconSuccess) + " " + fmt.Sprintf(format, args...))
}

// failure prints an error message.
func (p *printer) failure(format string, args ...any) {
	p.line(p.render(styleIconError, iconError) + " " + fmt.Sprintf(format, args...))
}

// warning prints a warning message.
func (p *printer) warning(format string, args ...any) {
	p.line(p.render(styleIconWarning, iconWarning) + " " + p.render(StyleWarning, fmt.Sprintf(format, args...)))
}

// info prints an info/status message.
func (p *printer) info(format string, args ...any) {
	p.line(p.render(styleIconInfo, iconInfo) + " " + fmt.Sprintf(format, args...))
}

// detail prints a detail line (indented).
func (p *printer) detail(format string, args ...any) {
	p.line("  " + p.render(StyleDim, fmt.Sprintf(format, args...)))
}

// title prints a section heading.
func (p *printer) title(format string, args ...any) {
	p.line(p.render(StyleTitle, fmt.Sprintf(format, args...)))
}

// keyValue prints a labeled value.
func (p *printer) keyValue(key, value string) {
	k := fmt.Sprintf("%-12s", key)
	if !p.plain {
		k = styleKey.Render(key)
	}
	p.line(k + " " + p.render(StyleValue, value))
}

// item prints one list entry behind an arrow.
func (p *printer) item(value string) {
	p.line("  " + p.render(StyleDim, iconArrow) + " " + p.render(StyleValue, value))
}

// stats prints dim facts joined on a single line.
func (p *printer) stats(parts ...string) {
	var b strings.Builder
	b.WriteString("  ")
	for i, part := range parts {
		if i > 0 {
			b.WriteString(p.render(StyleDim, " · "))
		}
		b.WriteString(p.render(StyleDim, part))
	}
	p.line(b.String())
}

// table prints rows under headers.
func (p *printer) table(headers []string, rows [][]string) {
	t := table.New().
		Headers(headers...).
		Rows(rows...)
	if p.plain {
		t = t.Border(lipgloss.HiddenBorder())
	} else {
		t = t.Border(lipgloss.RoundedBorder()).
			BorderStyle(styleTableFrame).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return styleTableHead
				}
				return styleTableCell
			})
	}
	p.line(t.String())
}

// newline prints an empty line.
func (p *printer) newline() {
	fmt.Fprintln(p.w)
}
