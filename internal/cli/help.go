package cli

import "github.com/idilsaglam/todo-repl/internal/ui"

// HelpLines is the fixed command reference shown by help.
func HelpLines() []string {
	return []string{
		"Commands:",
		"  help, h               Show this help",
		"  add, a [text]         Add a new item (asks for the text if omitted)",
		"  delete, d [n]         Remove item n (1-based)",
		"  complete, x [n]       Mark item n as completed",
		"  list, l [scope]       List items; scope is all|a (default), open|o, done|d",
		"  quit, q               Save and exit",
		"",
		"Examples:",
		"  a buy milk",
		"  l open",
		"  x 2",
	}
}

func PrintHelp(c *ui.Console) {
	c.Panel(HelpLines())
}
