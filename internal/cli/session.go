package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo-repl/internal/command"
	"github.com/idilsaglam/todo-repl/internal/logging"
	"github.com/idilsaglam/todo-repl/internal/model"
	"github.com/idilsaglam/todo-repl/internal/todo"
	"github.com/idilsaglam/todo-repl/internal/ui"
)

// Options tune output behavior from config.
type Options struct {
	ShowProgress bool // progress bar after "list all"
}

const progressWidth = 20

// Session is the read-eval loop over one todo list.
type Session struct {
	in     *bufio.Reader
	ui     *ui.Console
	log    *log.Logger
	opt    Options
	list   *todo.List
	closed bool  // no more input
	err    error // read failure other than EOF
}

// NewSession reads commands from in and writes to c. logger may be nil.
func NewSession(in io.Reader, c *ui.Console, logger *log.Logger, opt Options) *Session {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Session{
		in:  bufio.NewReader(in),
		ui:  c,
		log: logger,
		opt: opt,
	}
}

// Run seeds the list with items and loops until quit or end of input.
// It returns the items to persist even when reading input failed.
func (s *Session) Run(items []model.Item) ([]model.Item, error) {
	s.list = todo.New(items)
	s.ui.Title("Todo list!")

	for !s.closed {
		s.ui.Prompt("Please enter a command")
		line, ok := s.readLine()
		if !ok {
			break
		}
		cmd, err := command.Parse(line)
		if err != nil {
			s.report(err)
			continue
		}
		s.log.Debug("command", "kind", cmd.Kind, "scope", cmd.Scope, "arg", cmd.Arg)
		if cmd.Kind == command.Quit {
			break
		}
		s.dispatch(cmd)
	}

	if s.err != nil {
		return s.list.Items(), fmt.Errorf("read input: %w", s.err)
	}
	return s.list.Items(), nil
}

// -------------- command impls ----------------

func (s *Session) dispatch(cmd command.Command) {
	switch cmd.Kind {
	case command.Help:
		PrintHelp(s.ui)
	case command.Add:
		s.doAdd(cmd.Arg)
	case command.Delete:
		s.doRemove(cmd.Arg)
	case command.Complete:
		s.doComplete(cmd.Arg)
	case command.List:
		s.doList(cmd.Scope)
	}
}

func (s *Session) doAdd(desc string) {
	if desc == "" {
		var ok bool
		if desc, ok = s.ask("Please type in a new todo item"); !ok {
			return
		}
	}
	s.ui.OK(fmt.Sprintf("Adding '%s' to the todo list", desc))
	s.list.Add(desc)
}

func (s *Session) doRemove(text string) {
	if text == "" {
		var ok bool
		if text, ok = s.ask("Enter the number of the item you want to remove"); !ok {
			return
		}
	}
	it, err := s.list.RemoveText(text)
	if err != nil {
		s.report(err)
		return
	}
	s.ui.OK(fmt.Sprintf("Removed item '%s'", it.Description))
}

func (s *Session) doComplete(text string) {
	if text == "" {
		var ok bool
		if text, ok = s.ask("Enter the number of the item you want to complete"); !ok {
			return
		}
	}
	it, err := s.list.CompleteText(text)
	if err != nil {
		s.report(err)
		return
	}
	s.ui.OK(fmt.Sprintf("'%s' marked as completed", it.Description))
}

func (s *Session) doList(scope model.Scope) {
	entries := s.list.Entries(scope)
	if len(entries) == 0 {
		s.ui.Muted("no items")
		return
	}
	for _, e := range entries {
		s.ui.Entry(e.Number, e.Item.Description, e.Marked, e.Item.Completed)
	}
	if scope == model.All && s.opt.ShowProgress {
		done, _ := s.list.Counts()
		s.ui.Muted(s.ui.ProgressBar(done, s.list.Len(), progressWidth))
	}
}

// -------------- input + errors --------------

// ask prints a follow-up question and reads the answer.
func (s *Session) ask(question string) (string, bool) {
	s.ui.Println(question)
	return s.readLine()
}

// readLine returns the next line of any length. A final line without a
// newline is still returned; the read after it reports no input.
func (s *Session) readLine() (string, bool) {
	if s.closed {
		return "", false
	}
	line, err := s.in.ReadString('\n')
	if err != nil {
		s.closed = true
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimSpace(line), true
}

func (s *Session) report(err error) {
	var perr *command.ParseError
	var ierr *todo.IndexError
	switch {
	case errors.As(err, &perr):
		s.ui.Fail(perr.Msg)
		s.ui.Muted("Hint: type `help` to see every command")
	case errors.As(err, &ierr):
		s.ui.Fail(ierr.Error())
		if ierr.Kind == todo.OutOfRange {
			s.ui.Muted("Hint: run `list` to see valid indexes")
		}
	default:
		s.ui.Fail(err.Error())
	}
}
