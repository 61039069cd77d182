package app

import "github.com/iliyamo/shuttle-booking-client/internal/seatmap"

// View is the rendering boundary of the client. The controller computes all
// labels and state; implementations only draw. Successes are shown through
// the non-blocking Notify banner while failures go through the blocking
// Alert, and that asymmetry is deliberate: a failure must be acknowledged, a
// success must not interrupt.
type View interface {
	// ShowLogin switches to the login surface.
	ShowLogin()
	// ShowMain switches to the main surface, greeting the given user.
	ShowMain(studentID string)
	// RenderSchedules replaces the schedule result list. An empty slice
	// means the queried date has no departures.
	RenderSchedules(cards []ScheduleCard, date string)
	// RenderScheduleError shows a backend-reported query failure inline, in
	// place of the result list.
	RenderScheduleError(msg string)
	// RenderSeatMap draws or redraws the seat selection overlay.
	RenderSeatMap(vm SeatMapView)
	// RenderBookings replaces the "my bookings" list.
	RenderBookings(cards []BookingCard)
	// Notify shows a transient success banner.
	Notify(msg string)
	// ClearNotice removes the success banner if it is still visible.
	ClearNotice()
	// Alert shows a blocking failure or validation message.
	Alert(msg string)
	// ConfirmDelete asks the user to confirm a booking deletion.
	ConfirmDelete(prompt string) bool
}

// ScheduleCard is one schedule row ready for rendering.
type ScheduleCard struct {
	ScheduleID    int64
	DepartureTime string
	Route         string
	SeatsLabel    string
	LowSeats      bool // five or fewer seats left, styled as urgent
	Disabled      bool // sold out, the action must not be clickable
	ActionLabel   string
}

// SeatView is one seat cell of the overlay.
type SeatView struct {
	Number int
	State  seatmap.State
}

// SeatMapView is the full seat overlay: two columns of ten seats plus the
// confirm control state.
type SeatMapView struct {
	Title      string
	Left       []SeatView
	Right      []SeatView
	CanConfirm bool
}

// BookingCard is one booking row ready for rendering.
type BookingCard struct {
	BookingID     int64
	Route         string
	Date          string
	DepartureTime string
	SeatNumber    string
	StatusLabel   string
	Upcoming      bool
}
