// Package command turns one line of user input into a Command.
package command

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/todo-repl/internal/model"
)

// Kind selects what a Command does.
type Kind int

const (
	Add Kind = iota
	Delete
	Complete
	List
	Help
	Quit
)

func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Delete:
		return "delete"
	case Complete:
		return "complete"
	case List:
		return "list"
	case Help:
		return "help"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a parsed input line. Scope is only meaningful for List.
// Arg is whatever followed the command token for Add, Delete and Complete.
type Command struct {
	Kind  Kind
	Scope model.Scope
	Arg   string
}

// ParseError reports a line that is not a valid command.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

var kinds = map[string]Kind{
	"help": Help, "h": Help,
	"quit": Quit, "q": Quit,
	"add": Add, "a": Add,
	"delete": Delete, "d": Delete,
	"complete": Complete, "x": Complete,
	"list": List, "l": List,
}

var scopes = map[string]model.Scope{
	"all": model.All, "a": model.All,
	"done": model.Done, "d": model.Done,
	"open": model.Open, "o": model.Open,
}

// Parse reads a single command line. Matching is exact and case-sensitive.
func Parse(line string) (Command, error) {
	fields := strings.FieldsFunc(line, isSpace)
	if len(fields) == 0 {
		return Command{}, unknownCommand(line)
	}
	kind, ok := kinds[fields[0]]
	if !ok {
		return Command{}, unknownCommand(line)
	}

	cmd := Command{Kind: kind}
	switch kind {
	case List:
		if len(fields) < 2 {
			return cmd, nil
		}
		scope, ok := scopes[fields[1]]
		if !ok {
			return Command{}, &ParseError{Msg: fmt.Sprintf("unknown list argument: %s", fields[1])}
		}
		cmd.Scope = scope
	case Add, Delete, Complete:
		cmd.Arg = rest(line, fields[0])
	}
	return cmd, nil
}

// rest returns the text after the first token, keeping inner spacing.
func rest(line, first string) string {
	line = strings.TrimLeftFunc(line, isSpace)
	return strings.TrimFunc(strings.TrimPrefix(line, first), isSpace)
}

// isSpace matches ASCII whitespace only.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func unknownCommand(line string) error {
	return &ParseError{Msg: fmt.Sprintf("unknown command: %s", line)}
}
