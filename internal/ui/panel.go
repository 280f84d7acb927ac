package ui

import (
	"fmt"
	"strings"
)

// ProgressBar renders a bar of width cells followed by "done/total done".
func (c *Console) ProgressBar(done, total, width int) string {
	if width < 5 {
		width = 5
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	if filled > width {
		filled = width
	}
	bar := c.paint(c.theme.Success, false, false, strings.Repeat(c.theme.BarFull, filled)) +
		c.paint(c.theme.Muted, false, true, strings.Repeat(c.theme.BarEmpty, width-filled))
	return fmt.Sprintf("%s %d/%d done", bar, done, total)
}

// Panel prints lines inside a box drawn with the theme's border.
func (c *Console) Panel(lines []string) {
	st := c.r.NewStyle().Border(c.theme.Border).Padding(0, 1)
	if c.color && c.theme.Muted != "" {
		st = st.BorderForeground(c.theme.Muted)
	}
	c.Println(st.Render(strings.Join(lines, "\n")))
}
