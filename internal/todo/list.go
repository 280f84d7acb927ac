// Package todo holds the in-memory todo list and its 1-based index rules.
package todo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/idilsaglam/todo-repl/internal/model"
)

// IndexErrorKind tells a malformed index apart from one outside the list.
type IndexErrorKind int

const (
	Malformed IndexErrorKind = iota
	OutOfRange
)

// IndexError reports a user index that could not be applied to the list.
type IndexError struct {
	Kind  IndexErrorKind
	Text  string // raw input, set for Malformed
	Index int    // requested index, set for OutOfRange
	Len   int    // list length at the time, set for OutOfRange
	Err   error  // strconv failure, set for Malformed
}

func (e *IndexError) Error() string {
	switch e.Kind {
	case Malformed:
		return fmt.Sprintf("please enter a valid index: %s", e.Text)
	default:
		return fmt.Sprintf("there are only %d todo items", e.Len)
	}
}

func (e *IndexError) Unwrap() error { return e.Err }

// Entry is one line of a listing. Number restarts at 1 for every scope.
type Entry struct {
	Number int
	Item   model.Item
	Marked bool // whether the X/O marker is shown
}

// Marker returns "X" for completed items and "O" for open ones.
func (e Entry) Marker() string {
	if e.Item.Completed {
		return "X"
	}
	return "O"
}

// List is an ordered todo list. The zero value is an empty list.
type List struct {
	items []model.Item
}

// New seeds a list with a copy of items.
func New(items []model.Item) *List {
	l := &List{items: make([]model.Item, len(items))}
	copy(l.items, items)
	return l
}

func (l *List) Len() int { return len(l.items) }

// Items returns a snapshot safe to hand to a store.
func (l *List) Items() []model.Item {
	out := make([]model.Item, len(l.items))
	copy(out, l.items)
	return out
}

// Add appends an open item and returns it.
func (l *List) Add(description string) model.Item {
	it := model.Item{Description: description}
	l.items = append(l.items, it)
	return it
}

// Remove deletes the item at the 1-based index.
func (l *List) Remove(index int) (model.Item, error) {
	idx, err := l.position(index)
	if err != nil {
		return model.Item{}, err
	}
	removed := l.items[idx]
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return removed, nil
}

// Complete marks the item at the 1-based index done. Completing a done item is a no-op.
func (l *List) Complete(index int) (model.Item, error) {
	idx, err := l.position(index)
	if err != nil {
		return model.Item{}, err
	}
	l.items[idx].Completed = true
	return l.items[idx], nil
}

// RemoveText is Remove for raw user input.
func (l *List) RemoveText(text string) (model.Item, error) {
	n, err := ParseIndex(text)
	if err != nil {
		return model.Item{}, err
	}
	return l.Remove(n)
}

// CompleteText is Complete for raw user input.
func (l *List) CompleteText(text string) (model.Item, error) {
	n, err := ParseIndex(text)
	if err != nil {
		return model.Item{}, err
	}
	return l.Complete(n)
}

// Entries renders the list for a scope without changing it.
func (l *List) Entries(scope model.Scope) []Entry {
	out := make([]Entry, 0, len(l.items))
	for _, it := range l.items {
		switch scope {
		case model.Done:
			if !it.Completed {
				continue
			}
		case model.Open:
			if it.Completed {
				continue
			}
		}
		out = append(out, Entry{
			Number: len(out) + 1,
			Item:   it,
			Marked: scope == model.All,
		})
	}
	return out
}

// Counts returns how many items are done and how many are still open.
func (l *List) Counts() (done, open int) {
	for _, it := range l.items {
		if it.Completed {
			done++
		} else {
			open++
		}
	}
	return
}

// ParseIndex reads a decimal 1-based index. One leading '+' is allowed.
func ParseIndex(text string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, 0)
	if err != nil {
		return 0, &IndexError{Kind: Malformed, Text: text, Err: err}
	}
	return int(n), nil
}

func (l *List) position(index int) (int, error) {
	if index < 1 || index > len(l.items) {
		return 0, &IndexError{Kind: OutOfRange, Index: index, Len: len(l.items)}
	}
	return index - 1, nil
}
