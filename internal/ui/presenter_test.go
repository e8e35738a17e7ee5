package ui

import (
	"errors"
	"testing"

	"github.com/nibzard/tasklist-go/internal/tasks"
)

func TestListPresenterFreshStore(t *testing.T) {
	p := NewListPresenter(tasks.NewDefault())

	if got := p.RowCount(); got != 3 {
		t.Fatalf("RowCount() = %d, want 3", got)
	}
	want := []string{"Pay Bills", "Buy Grocery", "Shopping"}
	for i, w := range want {
		got, err := p.RowContent(i)
		if err != nil {
			t.Fatalf("RowContent(%d) error: %v", i, err)
		}
		if got != w {
			t.Errorf("RowContent(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestListPresenterReadsThrough(t *testing.T) {
	store := tasks.NewDefault()
	p := NewListPresenter(store)

	store.Append("Walk Dog")
	if got := p.RowCount(); got != 4 {
		t.Fatalf("RowCount() = %d, want 4", got)
	}
	got, err := p.RowContent(3)
	if err != nil {
		t.Fatalf("RowContent(3) error: %v", err)
	}
	if got != "Walk Dog" {
		t.Errorf("RowContent(3) = %q, want %q", got, "Walk Dog")
	}
}

func TestListPresenterOutOfRange(t *testing.T) {
	p := NewListPresenter(tasks.NewDefault())

	for _, index := range []int{-1, 3, 99} {
		if _, err := p.RowContent(index); !errors.Is(err, tasks.ErrOutOfRange) {
			t.Errorf("RowContent(%d) error = %v, want ErrOutOfRange", index, err)
		}
	}
}

func TestListPresenterHeights(t *testing.T) {
	p := NewListPresenter(tasks.New())

	if got := p.RowHeight(); got != 50 {
		t.Errorf("RowHeight() = %v, want 50", got)
	}
	if got := p.HeaderHeight(); got != 100 {
		t.Errorf("HeaderHeight() = %v, want 100", got)
	}
	if got := p.RowCount(); got != 0 {
		t.Errorf("RowCount() on empty store = %d, want 0", got)
	}
}
