// Package tasks holds the in-memory task list shown on the to-do screen.
//
// A task is just its display text. Tasks have no identity beyond their
// position in the list and duplicates are allowed. The list only grows:
// Append is the single mutation and there is no removal.
//
// The store is not safe for concurrent use. It is owned by the screen and
// only touched from the bubbletea update loop.
package tasks
