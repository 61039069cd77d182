package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/iliyamo/shuttle-booking-client/internal/api"
	"github.com/iliyamo/shuttle-booking-client/internal/seatmap"
	"github.com/iliyamo/shuttle-booking-client/internal/ticket"
)

// upcomingThreshold is the whole-day distance at or below which a booking is
// styled as "upcoming". Zero and negative day counts fall under it too; see
// DESIGN.md for why past bookings are not special-cased.
const upcomingThreshold = 3

// OpenSeatMap opens the seat overlay for a schedule from the last query
// result set. The schedule is resolved locally, without a backend call; an
// id that is not in the current results, or a sold-out schedule, is ignored.
func (c *Controller) OpenSeatMap(scheduleID int64) {
	for _, s := range c.schedules {
		if s.ID != scheduleID {
			continue
		}
		if s.IsFull() {
			return
		}
		c.booking = &bookingContext{
			ScheduleID:    s.ID,
			Route:         s.Route,
			DepartureTime: s.DepartureTime,
			Date:          s.Date,
		}
		c.seats = seatmap.New(s.OccupiedSeats)
		c.renderSeatMap()
		return
	}
}

// SelectSeat marks one seat as the pending choice, replacing any previous
// one. Picking an occupied or out-of-range seat alerts and leaves the
// current selection as it was.
func (c *Controller) SelectSeat(n int) {
	if c.seats == nil {
		return
	}
	if err := c.seats.Select(n); err != nil {
		if errors.Is(err, seatmap.ErrSeatOccupied) {
			c.view.Alert(fmt.Sprintf("seat %d is already taken", n))
		} else {
			c.view.Alert(fmt.Sprintf("there is no seat %d", n))
		}
		return
	}
	c.renderSeatMap()
}

// CloseSeatMap discards the pending selection and booking context
// unconditionally. It serves explicit cancel, backdrop dismissal and
// post-confirm cleanup alike, and bumps the generation so a confirm request
// still in flight cannot act on the overlay it belonged to.
func (c *Controller) CloseSeatMap() {
	c.gen++
	c.seats = nil
	c.booking = nil
}

// ConfirmBooking submits the pending seat for the open schedule. Without a
// pending seat and context it does nothing; the confirm control is only
// enabled once a seat is picked, so this guard is defensive rather than a
// user-facing error. On success the overlay closes, a banner announces the
// seat, and both the booking list and the schedule list are re-fetched so
// every count reflects the new booking. On failure the overlay stays open
// with the selection intact so the user can retry or cancel.
func (c *Controller) ConfirmBooking() {
	if c.seats == nil || c.booking == nil {
		return
	}
	seat, ok := c.seats.Selected()
	if !ok {
		return
	}
	student := c.student
	scheduleID := c.booking.ScheduleID
	c.async(func() func() {
		_, err := c.backend.CreateBooking(context.Background(), student, scheduleID, strconv.Itoa(seat))
		return func() {
			if err != nil {
				c.view.Alert("booking failed: " + api.RemoteMessage(err, "please check your network connection"))
				return
			}
			c.CloseSeatMap()
			c.notify(fmt.Sprintf("booking confirmed, seat %d", seat))
			c.loadMyBookings()
			c.research()
		}
	})
}

// LoadMyBookings refreshes the booking list for the current user. Logged
// out, it does nothing. The cached list is replaced wholesale; there is no
// incremental merge. A failed load is logged but not alerted, matching the
// quiet refresh behavior of the original client.
func (c *Controller) LoadMyBookings() { c.loadMyBookings() }

func (c *Controller) loadMyBookings() {
	if c.student == "" {
		return
	}
	student := c.student
	c.async(func() func() {
		list, err := c.backend.MyBookings(context.Background(), student)
		return func() {
			if err != nil {
				c.log.Warn("loading bookings failed", "student_id", student, "error", err)
				return
			}
			c.bookings = list
			c.view.RenderBookings(c.bookingCards())
		}
	})
}

// DeleteBooking cancels a booking after interactive confirmation. A
// declined prompt does nothing and issues no request. Success notifies and
// re-fetches both lists; failure alerts and changes nothing.
func (c *Controller) DeleteBooking(bookingID int64) {
	if !c.view.ConfirmDelete("delete this booking?") {
		return
	}
	student := c.student
	c.async(func() func() {
		err := c.backend.DeleteBooking(context.Background(), bookingID, student)
		return func() {
			if err != nil {
				c.view.Alert("delete failed: " + api.RemoteMessage(err, "please check your network connection"))
				return
			}
			c.notify("booking deleted")
			c.loadMyBookings()
			c.research()
		}
	})
}

// SaveTicket writes the e-ticket PDF for one of the user's cached bookings.
// It is local: the booking must already be in the loaded list.
func (c *Controller) SaveTicket(bookingID int64, path string) {
	for _, b := range c.bookings {
		if b.ID != bookingID {
			continue
		}
		pdf, err := ticket.Render(b)
		if err != nil {
			c.view.Alert("could not render the ticket: " + err.Error())
			return
		}
		if err := os.WriteFile(path, pdf, 0o644); err != nil {
			c.view.Alert("could not save the ticket: " + err.Error())
			return
		}
		c.notify("ticket saved to " + path)
		return
	}
	c.view.Alert("no such booking in your list, reload your bookings first")
}

func (c *Controller) renderSeatMap() {
	if c.seats == nil || c.booking == nil {
		return
	}
	vm := SeatMapView{
		Title: c.booking.Route + " - " + c.booking.DepartureTime,
	}
	for _, n := range seatmap.LeftColumn() {
		vm.Left = append(vm.Left, SeatView{Number: n, State: c.seats.State(n)})
	}
	for _, n := range seatmap.RightColumn() {
		vm.Right = append(vm.Right, SeatView{Number: n, State: c.seats.State(n)})
	}
	_, vm.CanConfirm = c.seats.Selected()
	c.view.RenderSeatMap(vm)
}

func (c *Controller) bookingCards() []BookingCard {
	today := c.clock()
	cards := make([]BookingCard, 0, len(c.bookings))
	for _, b := range c.bookings {
		days := b.DaysUntil(today)
		card := BookingCard{
			BookingID:     b.ID,
			Route:         b.Schedule.Route,
			Date:          b.Schedule.Date,
			DepartureTime: b.Schedule.DepartureTime,
			SeatNumber:    b.SeatNumber,
			StatusLabel:   fmt.Sprintf("%d days from now", days),
			Upcoming:      days <= upcomingThreshold,
		}
		if card.Upcoming {
			card.StatusLabel = "upcoming"
		}
		cards = append(cards, card)
	}
	return cards
}
