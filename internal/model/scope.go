package model

// Scope filters which items a listing shows.
type Scope int

const (
	All Scope = iota
	Open
	Done
)

func (s Scope) String() string {
	switch s {
	case All:
		return "all"
	case Open:
		return "open"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}
