package tasks

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by errors.Is for every *OutOfRangeError.
var ErrOutOfRange = errors.New("index out of range")

// OutOfRangeError reports a row access outside [0, Count).
type OutOfRangeError struct {
	Index int
	Count int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("task index %d out of range [0, %d)", e.Index, e.Count)
}

// Unwrap returns ErrOutOfRange.
func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// DefaultSeeds returns the tasks a fresh list starts with.
func DefaultSeeds() []string {
	return []string{"Pay Bills", "Buy Grocery", "Shopping"}
}

// Store is an ordered, append-only list of task names.
type Store struct {
	items []string
}

// New creates a store holding a copy of seeds, in order.
func New(seeds ...string) *Store {
	items := make([]string, len(seeds))
	copy(items, seeds)
	return &Store{items: items}
}

// NewDefault creates a store holding DefaultSeeds.
func NewDefault() *Store {
	return New(DefaultSeeds()...)
}

// Append adds text at the end of the list. The text is stored verbatim:
// it is not trimmed, empty strings are kept and duplicates are allowed.
func (s *Store) Append(text string) {
	s.items = append(s.items, text)
}

// Count returns the number of tasks.
func (s *Store) Count() int {
	return len(s.items)
}

// ItemAt returns the task at index.
func (s *Store) ItemAt(index int) (string, error) {
	if index < 0 || index >= len(s.items) {
		return "", &OutOfRangeError{Index: index, Count: len(s.items)}
	}
	return s.items[index], nil
}

// Items returns a copy of all tasks in display order.
func (s *Store) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
