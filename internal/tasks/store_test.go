package tasks

import (
	"errors"
	"testing"
)

func TestNewDefault(t *testing.T) {
	s := NewDefault()

	want := []string{"Pay Bills", "Buy Grocery", "Shopping"}
	if s.Count() != len(want) {
		t.Fatalf("Count: got %d, want %d", s.Count(), len(want))
	}
	for i, w := range want {
		got, err := s.ItemAt(i)
		if err != nil {
			t.Fatalf("ItemAt(%d) failed: %v", i, err)
		}
		if got != w {
			t.Errorf("ItemAt(%d): got %q, want %q", i, got, w)
		}
	}
}

func TestAppend(t *testing.T) {
	tests := []struct {
		name  string
		input []string
	}{
		{"none", nil},
		{"single", []string{"Walk Dog"}},
		{"empty string", []string{""}},
		{"whitespace kept", []string{"  padded  ", "\t"}},
		{"duplicates", []string{"Shopping", "Shopping"}},
		{"many", []string{"a", "b", "c", "d", "e", "f", "g"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewDefault()
			seeds := DefaultSeeds()
			for _, text := range tt.input {
				s.Append(text)
			}

			if got, want := s.Count(), len(seeds)+len(tt.input); got != want {
				t.Fatalf("Count: got %d, want %d", got, want)
			}
			for i, text := range tt.input {
				got, err := s.ItemAt(len(seeds) + i)
				if err != nil {
					t.Fatalf("ItemAt(%d) failed: %v", len(seeds)+i, err)
				}
				if got != text {
					t.Errorf("ItemAt(%d): got %q, want %q", len(seeds)+i, got, text)
				}
			}
		})
	}
}

func TestItemAtOutOfRange(t *testing.T) {
	s := NewDefault()
	s.Append("Walk Dog")

	for _, idx := range []int{-1, s.Count(), s.Count() + 10} {
		_, err := s.ItemAt(idx)
		if err == nil {
			t.Fatalf("ItemAt(%d): expected error, got nil", idx)
		}
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("ItemAt(%d): expected ErrOutOfRange, got %v", idx, err)
		}
		var oor *OutOfRangeError
		if !errors.As(err, &oor) {
			t.Fatalf("ItemAt(%d): expected *OutOfRangeError, got %T", idx, err)
		}
		if oor.Index != idx || oor.Count != s.Count() {
			t.Errorf("OutOfRangeError: got {%d %d}, want {%d %d}", oor.Index, oor.Count, idx, s.Count())
		}
	}
}

func TestNewCopiesSeeds(t *testing.T) {
	seeds := []string{"one", "two"}
	s := New(seeds...)
	seeds[0] = "changed"

	got, _ := s.ItemAt(0)
	if got != "one" {
		t.Errorf("ItemAt(0): got %q, want %q", got, "one")
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	s := New("a")
	items := s.Items()
	items[0] = "mutated"

	got, _ := s.ItemAt(0)
	if got != "a" {
		t.Errorf("store mutated through Items: got %q", got)
	}
}

func TestEmptyStore(t *testing.T) {
	s := New()
	if s.Count() != 0 {
		t.Fatalf("Count: got %d, want 0", s.Count())
	}
	if _, err := s.ItemAt(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ItemAt(0) on empty store: got %v, want ErrOutOfRange", err)
	}
}
