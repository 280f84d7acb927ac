package model

// Item is the domain model for a todo entry.
// Its position in the list is its only identity.
type Item struct {
	Description string
	Completed   bool
}
