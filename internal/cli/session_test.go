package cli

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/idilsaglam/todo-repl/internal/model"
	"github.com/idilsaglam/todo-repl/internal/ui"
)

func run(t *testing.T, seed []model.Item, opt Options, lines ...string) ([]model.Item, string) {
	t.Helper()
	var out bytes.Buffer
	theme, _ := ui.ThemeByName("mono")
	s := NewSession(strings.NewReader(strings.Join(lines, "\n")+"\n"), ui.NewConsole(&out, theme, false), nil, opt)
	items, err := s.Run(seed)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	return items, out.String()
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSessionAddListQuit(t *testing.T) {
	items, out := run(t, nil, Options{}, "add", "buy milk", "a call mum", "l", "q")

	want := []model.Item{{Description: "buy milk"}, {Description: "call mum"}}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("items = %+v, want %+v", items, want)
	}
	assertContains(t, out,
		"Todo list!",
		"Please enter a command",
		"Please type in a new todo item",
		"Adding 'buy milk' to the todo list",
		"Adding 'call mum' to the todo list",
		"1: buy milk - O\n",
		"2: call mum - O\n",
	)
}

func TestSessionCompleteAndScopes(t *testing.T) {
	seed := []model.Item{{Description: "a"}, {Description: "b"}, {Description: "c"}}
	items, out := run(t, seed, Options{}, "x 2", "complete", "2", "l o", "list done", "quit")

	if !items[1].Completed || items[0].Completed || items[2].Completed {
		t.Fatalf("items = %+v, want only b completed", items)
	}
	assertContains(t, out,
		"Enter the number of the item you want to complete",
		"'b' marked as completed",
	)
	// list open then list done
	openIdx := strings.Index(out, "1: a\n2: c\n")
	doneIdx := strings.Index(out, "1: b\n")
	if openIdx < 0 || doneIdx < 0 || doneIdx < openIdx {
		t.Fatalf("unexpected scoped listing:\n%s", out)
	}
	if strings.Count(out, "marked as completed") != 2 {
		t.Fatalf("second complete should also succeed:\n%s", out)
	}
}

func TestSessionRemove(t *testing.T) {
	seed := []model.Item{{Description: "a"}, {Description: "b"}}
	items, out := run(t, seed, Options{}, "delete", "1", "q")

	if !reflect.DeepEqual(items, []model.Item{{Description: "b"}}) {
		t.Fatalf("items = %+v", items)
	}
	assertContains(t, out, "Enter the number of the item you want to remove", "Removed item 'a'")
}

func TestSessionErrorsDoNotStopLoop(t *testing.T) {
	seed := []model.Item{{Description: "a"}}
	items, out := run(t, seed, Options{}, "", "bogus", "l maybe", "d 5", "d 0", "x nope", "d 1", "q")

	if len(items) != 0 {
		t.Fatalf("items = %+v, want empty after final delete", items)
	}
	assertContains(t, out,
		"! unknown command: \n",
		"! unknown command: bogus",
		"! unknown list argument: maybe",
		"! there are only 1 todo items",
		"! please enter a valid index: nope",
		"Hint: run `list` to see valid indexes",
		"Removed item 'a'",
	)
	if strings.Count(out, "there are only 1 todo items") != 2 {
		t.Fatalf("expected both out-of-range deletes reported:\n%s", out)
	}
}

func TestSessionEOFStops(t *testing.T) {
	var out bytes.Buffer
	theme, _ := ui.ThemeByName("mono")
	s := NewSession(strings.NewReader("a first\nadd"), ui.NewConsole(&out, theme, false), nil, Options{})
	items, err := s.Run(nil)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !reflect.DeepEqual(items, []model.Item{{Description: "first"}}) {
		t.Fatalf("items = %+v", items)
	}
	if strings.Contains(out.String(), "Adding ''") {
		t.Fatalf("add after EOF should not add an empty item:\n%s", out.String())
	}
}

func TestSessionQuitIgnoresRest(t *testing.T) {
	items, _ := run(t, nil, Options{}, "q", "a never")
	if len(items) != 0 {
		t.Fatalf("items = %+v, want nothing after quit", items)
	}
}

func TestSessionHelp(t *testing.T) {
	_, out := run(t, nil, Options{}, "h", "q")
	for _, line := range HelpLines() {
		if strings.TrimSpace(line) == "" {
			continue
		}
		assertContains(t, out, strings.TrimSpace(line))
	}
	assertContains(t, out, "help, h", "quit, q", "add, a", "delete, d", "complete, x", "list, l")
}

func TestSessionListEmptyAndProgress(t *testing.T) {
	_, out := run(t, nil, Options{ShowProgress: true}, "l", "q")
	assertContains(t, out, "no items")

	seed := []model.Item{{Description: "a", Completed: true}, {Description: "b"}}
	_, out = run(t, seed, Options{ShowProgress: true}, "l", "l o", "q")
	assertContains(t, out, "1: a - X", "2: b - O", "1/2 done")
	if strings.Count(out, "1/2 done") != 1 {
		t.Fatalf("progress should only follow list all:\n%s", out)
	}
}

func TestSessionSeedNotAliased(t *testing.T) {
	seed := []model.Item{{Description: "a"}}
	run(t, seed, Options{}, "x 1", "q")
	if seed[0].Completed {
		t.Fatal("session mutated the caller's seed slice")
	}
}

func TestSessionLongInputLine(t *testing.T) {
	long := strings.Repeat("y", 70*1024)
	items, out := run(t, nil, Options{}, "a "+long, "a after", "l o", "q")

	want := []model.Item{{Description: long}, {Description: "after"}}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("got %d items, want both the long item and %q", len(items), "after")
	}
	assertContains(t, out, "Adding 'after' to the todo list", "2: after\n")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestSessionReadError(t *testing.T) {
	theme, _ := ui.ThemeByName("mono")
	s := NewSession(failingReader{}, ui.NewConsole(&bytes.Buffer{}, theme, false), nil, Options{})
	items, err := s.Run([]model.Item{{Description: "keep"}})
	if err == nil || !strings.Contains(err.Error(), "tty gone") {
		t.Fatalf("err = %v, want wrapped read error", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %+v, want seed returned for saving", items)
	}
}
