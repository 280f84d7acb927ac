package linestore

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/idilsaglam/todo-repl/internal/model"
)

// Line-backed storage. Each item is two lines: the raw description, then
// "true" or "false". No locking; one session owns the file at a time.

// DefaultFileName is used when no data file is configured.
const DefaultFileName = "todos.txt"

// Load reads every complete item from path. A missing file is an empty list.
// A dangling last line without its completion line is dropped.
func Load(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return decode(b), nil
}

// Save truncates path and writes items to it.
func Save(path string, items []model.Item) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(path, encode(items), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func decode(b []byte) []model.Item {
	items := []model.Item{}
	if len(b) == 0 {
		return items
	}
	lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
	for i := 0; i+1 < len(lines); i += 2 {
		items = append(items, model.Item{
			Description: strings.TrimSuffix(lines[i], "\r"),
			Completed:   strings.TrimSuffix(lines[i+1], "\r") == "true",
		})
	}
	return items
}

func encode(items []model.Item) []byte {
	var buf bytes.Buffer
	for _, it := range items {
		buf.WriteString(it.Description)
		buf.WriteByte('\n')
		if it.Completed {
			buf.WriteString("true\n")
		} else {
			buf.WriteString("false\n")
		}
	}
	return buf.Bytes()
}
