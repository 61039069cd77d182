// Package view renders the client's surfaces on a terminal. It implements
// app.View and stays deliberately dumb: every label and state decision is
// made by the controller, the terminal only prints.
package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/iliyamo/shuttle-booking-client/internal/app"
	"github.com/iliyamo/shuttle-booking-client/internal/seatmap"
)

// Terminal is the interactive text implementation of app.View. It reads
// confirmation answers from the same input stream the command shell uses.
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewTerminal builds a Terminal on the given streams.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewScanner(in), out: out}
}

// ReadLine prompts and reads one line. The second return value is false on
// end of input.
func (t *Terminal) ReadLine(prompt string) (string, bool) {
	fmt.Fprint(t.out, prompt)
	if !t.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(t.in.Text()), true
}

func (t *Terminal) ShowLogin() {
	fmt.Fprintln(t.out, "\n== Campus Shuttle, please log in ==")
}

func (t *Terminal) ShowMain(studentID string) {
	fmt.Fprintf(t.out, "\n== Welcome, %s ==\n", studentID)
}

func (t *Terminal) RenderSchedules(cards []app.ScheduleCard, date string) {
	if len(cards) == 0 {
		fmt.Fprintf(t.out, "no departures on %s\n", date)
		return
	}
	fmt.Fprintf(t.out, "departures on %s:\n", date)
	for _, c := range cards {
		seats := c.SeatsLabel
		if c.LowSeats {
			seats += " (!)"
		}
		fmt.Fprintf(t.out, "  [%d] %s  %-26s %s  [%s]\n", c.ScheduleID, c.DepartureTime, c.Route, seats, c.ActionLabel)
	}
}

func (t *Terminal) RenderScheduleError(msg string) {
	fmt.Fprintf(t.out, "-- %s --\n", msg)
}

func (t *Terminal) RenderSeatMap(vm app.SeatMapView) {
	fmt.Fprintf(t.out, "\n%s\n", vm.Title)
	fmt.Fprintln(t.out, "      front")
	for i := range vm.Left {
		fmt.Fprintf(t.out, "  %s   %s\n", seatCell(vm.Left[i]), seatCell(vm.Right[i]))
	}
	if vm.CanConfirm {
		fmt.Fprintln(t.out, "type 'book' to confirm your seat")
	} else {
		fmt.Fprintln(t.out, "type 'select <seat>' to pick a seat")
	}
}

func seatCell(s app.SeatView) string {
	switch s.State {
	case seatmap.Occupied:
		return "[ XX ]"
	case seatmap.Selected:
		return fmt.Sprintf("[*%2d*]", s.Number)
	default:
		return fmt.Sprintf("[ %2d ]", s.Number)
	}
}

func (t *Terminal) RenderBookings(cards []app.BookingCard) {
	fmt.Fprintf(t.out, "my bookings (%d):\n", len(cards))
	if len(cards) == 0 {
		fmt.Fprintln(t.out, "  no bookings yet, go grab a seat")
		return
	}
	for _, c := range cards {
		fmt.Fprintf(t.out, "  [%d] %s %s  %-26s seat %s  (%s)\n",
			c.BookingID, c.Date, c.DepartureTime, c.Route, c.SeatNumber, c.StatusLabel)
	}
}

func (t *Terminal) Notify(msg string) {
	fmt.Fprintf(t.out, ">> %s\n", msg)
}

// ClearNotice is a no-op on a scrolling terminal; the banner simply ages
// out of view.
func (t *Terminal) ClearNotice() {}

func (t *Terminal) Alert(msg string) {
	fmt.Fprintf(t.out, "!! %s\n", msg)
}

func (t *Terminal) ConfirmDelete(prompt string) bool {
	answer, ok := t.ReadLine(prompt + " [y/N] ")
	if !ok {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}
