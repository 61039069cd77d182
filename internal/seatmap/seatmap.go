// Package seatmap models the fixed 20-seat shuttle layout and the exclusive
// seat-selection state machine backing the booking overlay. The layout is two
// columns of ten: odd seat numbers 1..19 run down the left column and even
// numbers 2..20 down the right. The interleaving mirrors the physical vehicle
// and is a venue convention, not an artifact of rendering order.
package seatmap

import (
	"errors"
	"strconv"
)

// SeatCount is the number of seats in every shuttle.
const SeatCount = 20

// State is the render state of a single seat. Before any selection each seat
// is in exactly one of Occupied or Available; at most one seat in the whole
// map is ever Selected.
type State string

const (
	Available State = "available"
	Occupied  State = "occupied"
	Selected  State = "selected"
)

var (
	// ErrSeatOutOfRange is returned for seat numbers outside 1..SeatCount.
	ErrSeatOutOfRange = errors.New("seat number out of range")
	// ErrSeatOccupied is returned when the requested seat is already booked.
	ErrSeatOccupied = errors.New("seat is already occupied")
)

// LeftColumn returns the seat numbers of the left column top to bottom.
func LeftColumn() []int {
	out := make([]int, 0, SeatCount/2)
	for n := 1; n <= SeatCount; n += 2 {
		out = append(out, n)
	}
	return out
}

// RightColumn returns the seat numbers of the right column top to bottom.
func RightColumn() []int {
	out := make([]int, 0, SeatCount/2)
	for n := 2; n <= SeatCount; n += 2 {
		out = append(out, n)
	}
	return out
}

// Map tracks which seats of one schedule are occupied and which single seat,
// if any, the user has picked. A Map lives only while the seat overlay is
// open and is discarded on close, confirm or cancel.
type Map struct {
	occupied map[int]bool
	selected int // 0 means no selection
}

// New builds a Map from the backend's occupied seat set. Entries that do not
// parse as a seat number in range are ignored rather than rejected; the
// backend is authoritative and the client cannot repair its data.
func New(occupiedSeats []string) *Map {
	m := &Map{occupied: make(map[int]bool, len(occupiedSeats))}
	for _, s := range occupiedSeats {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > SeatCount {
			continue
		}
		m.occupied[n] = true
	}
	return m
}

// State returns the render state of seat n. Numbers outside the layout
// report Occupied so that callers can never act on them.
func (m *Map) State(n int) State {
	switch {
	case n < 1 || n > SeatCount:
		return Occupied
	case m.occupied[n]:
		return Occupied
	case n == m.selected:
		return Selected
	default:
		return Available
	}
}

// Select marks seat n as the pending selection. Any previous selection is
// cleared back to Available first, so selection stays exclusive. Occupied
// seats are never selectable.
func (m *Map) Select(n int) error {
	if n < 1 || n > SeatCount {
		return ErrSeatOutOfRange
	}
	if m.occupied[n] {
		return ErrSeatOccupied
	}
	m.selected = n
	return nil
}

// Selected returns the pending seat number, if any.
func (m *Map) Selected() (int, bool) {
	return m.selected, m.selected != 0
}

// ClearSelection discards the pending selection.
func (m *Map) ClearSelection() {
	m.selected = 0
}
