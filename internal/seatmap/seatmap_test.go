package seatmap

import (
	"errors"
	"testing"
)

func TestColumnsInterleaveOddEven(t *testing.T) {
	left, right := LeftColumn(), RightColumn()
	if len(left) != 10 || len(right) != 10 {
		t.Fatalf("expected 10 seats per column, got %d and %d", len(left), len(right))
	}
	for i, n := range left {
		if n != 2*i+1 {
			t.Fatalf("left column position %d = %d, want %d", i, n, 2*i+1)
		}
	}
	for i, n := range right {
		if n != 2*i+2 {
			t.Fatalf("right column position %d = %d, want %d", i, n, 2*i+2)
		}
	}
}

func TestNewPartitionsSeats(t *testing.T) {
	m := New([]string{"3", "7", "20"})
	for n := 1; n <= SeatCount; n++ {
		got := m.State(n)
		want := Available
		if n == 3 || n == 7 || n == 20 {
			want = Occupied
		}
		if got != want {
			t.Errorf("seat %d state = %q, want %q", n, got, want)
		}
	}
}

func TestNewIgnoresUnparsableEntries(t *testing.T) {
	m := New([]string{"", "abc", "0", "21", "5"})
	if m.State(5) != Occupied {
		t.Errorf("seat 5 should be occupied")
	}
	occupied := 0
	for n := 1; n <= SeatCount; n++ {
		if m.State(n) == Occupied {
			occupied++
		}
	}
	if occupied != 1 {
		t.Errorf("expected exactly 1 occupied seat, got %d", occupied)
	}
}

func TestSelectIsExclusive(t *testing.T) {
	m := New(nil)
	if err := m.Select(4); err != nil {
		t.Fatalf("select 4: %v", err)
	}
	if err := m.Select(9); err != nil {
		t.Fatalf("select 9: %v", err)
	}
	if m.State(4) != Available {
		t.Errorf("seat 4 should revert to available after selecting 9")
	}
	if m.State(9) != Selected {
		t.Errorf("seat 9 should be selected")
	}
	selected := 0
	for n := 1; n <= SeatCount; n++ {
		if m.State(n) == Selected {
			selected++
		}
	}
	if selected != 1 {
		t.Errorf("expected exactly one selected seat, got %d", selected)
	}
}

func TestSelectRejectsOccupiedAndOutOfRange(t *testing.T) {
	m := New([]string{"7"})
	if err := m.Select(7); !errors.Is(err, ErrSeatOccupied) {
		t.Errorf("select occupied seat: got %v, want ErrSeatOccupied", err)
	}
	if _, ok := m.Selected(); ok {
		t.Errorf("failed select must not record a selection")
	}
	for _, n := range []int{0, -1, 21} {
		if err := m.Select(n); !errors.Is(err, ErrSeatOutOfRange) {
			t.Errorf("select %d: got %v, want ErrSeatOutOfRange", n, err)
		}
	}
}

func TestClearSelection(t *testing.T) {
	m := New(nil)
	if err := m.Select(12); err != nil {
		t.Fatalf("select: %v", err)
	}
	m.ClearSelection()
	if _, ok := m.Selected(); ok {
		t.Errorf("selection should be cleared")
	}
	if m.State(12) != Available {
		t.Errorf("seat 12 should be available after clear")
	}
}
