// Package ui renders todo output lines with lipgloss styles.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Console writes human-readable lines to one writer.
// Colour is only emitted when enabled, the theme allows it, and the writer is a terminal.
type Console struct {
	out   io.Writer
	theme Theme
	color bool
	r     *lipgloss.Renderer
}

// NewConsole builds a Console for out. color=false forces plain text.
func NewConsole(out io.Writer, theme Theme, color bool) *Console {
	if out == nil {
		out = io.Discard
	}
	return &Console{
		out:   out,
		theme: theme,
		color: color && !theme.Plain && isTTY(out),
		r:     lipgloss.NewRenderer(out),
	}
}

// Colored reports whether output carries ANSI styling.
func (c *Console) Colored() bool { return c.color }

func (c *Console) Theme() Theme { return c.theme }

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (c *Console) paint(fg lipgloss.Color, bold, faint bool, s string) string {
	if !c.color {
		return s
	}
	st := c.r.NewStyle().Bold(bold).Faint(faint)
	if fg != "" {
		st = st.Foreground(fg)
	}
	return st.Render(s)
}

func (c *Console) Println(s string) { _, _ = fmt.Fprintln(c.out, s) }

func (c *Console) Printf(format string, args ...any) { _, _ = fmt.Fprintf(c.out, format, args...) }

// Title prints a bold heading line.
func (c *Console) Title(msg string) { c.Println(c.paint(c.theme.Title, true, false, msg)) }

// Prompt prints a request for input, preceded by a blank line.
func (c *Console) Prompt(msg string) {
	c.Println("")
	c.Println(c.paint(c.theme.Accent, false, false, msg))
}

func (c *Console) OK(msg string)    { c.Println(c.paint(c.theme.Success, false, false, msg)) }
func (c *Console) Muted(msg string) { c.Println(c.paint(c.theme.Muted, false, true, msg)) }

// Fail prints an error line prefixed with the theme's cross symbol.
func (c *Console) Fail(msg string) {
	c.Println(c.paint(c.theme.Error, true, false, c.theme.SymCross+" "+msg))
}

// Entry prints one listing line: "<n>: <description>" with an optional " - X|O" marker.
func (c *Console) Entry(n int, description string, marked, done bool) {
	if !marked {
		c.Printf("%d: %s\n", n, description)
		return
	}
	marker := c.paint(c.theme.Pending, false, false, "O")
	if done {
		marker = c.paint(c.theme.Success, false, false, "X")
	}
	c.Printf("%d: %s - %s\n", n, description, marker)
}
