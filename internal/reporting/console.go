package reporting

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
)

var _ driven.Reporter = (*Console)(nil)

// Console renders reports as bordered panels on a terminal, falling
// back to plain lines when the output is not a TTY.
type Console struct {
	out     io.Writer
	styled  bool
	border  lipgloss.Style
	heading lipgloss.Style
	detail  lipgloss.Style
}

// NewConsole creates a console reporter writing to stderr.
func NewConsole() *Console {
	return newConsole(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))
}

func newConsole(out io.Writer, styled bool) *Console {
	return &Console{
		out:    out,
		styled: styled,
		border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#F38BA8")).
			Padding(0, 1),
		heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F38BA8")),
		detail: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CDD6F4")),
	}
}

// Report renders a single failure.
func (c *Console) Report(rec domain.Report) {
	if !c.styled {
		fmt.Fprintln(c.out, rec.Summary())
		return
	}

	title := fmt.Sprintf("%s.%s failed", rec.Component, rec.Op)
	if rec.Kind == domain.ReportArgument {
		title = fmt.Sprintf("%s.%s rejected", rec.Component, rec.Op)
	}
	body := c.heading.Render(title) + "\n" + c.detail.Render(rec.Err.Error())
	fmt.Fprintln(c.out, c.border.Render(body))
}
