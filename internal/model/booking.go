package model

import "time"

// Booking records a student's reservation of one seat on one schedule. The
// backend owns bookings; the client keeps a read-through cache that is fully
// replaced on every load and re-fetched after any create or delete.
type Booking struct {
	ID         int64           `json:"id"`
	StudentID  string          `json:"studentId"`
	SeatNumber string          `json:"seatNumber"`
	Schedule   ScheduleSummary `json:"schedule"`
}

// DaysUntil returns the whole-day difference between the booking's schedule
// date and today. Both sides are truncated to midnight first, so the time of
// day never influences the count. Past dates yield negative values; a booking
// whose date cannot be parsed counts as today.
func (b Booking) DaysUntil(today time.Time) int {
	d, err := ParseDate(b.Schedule.Date)
	if err != nil {
		return 0
	}
	diff := Midnight(d).Sub(Midnight(today))
	return int(diff / (24 * time.Hour))
}
