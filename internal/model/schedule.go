package model

// Schedule is a single shuttle departure instance on a given date, route and
// time together with its seat inventory. Schedules are owned entirely by the
// backend; the client only ever holds the most recent query result set and
// replaces it wholesale on each search.
//
// Date is a "YYYY-MM-DD" string and DepartureTime a zero-padded "HH:MM"
// string. The fixed width of DepartureTime is load bearing: the client-side
// time filter orders departure times by plain string comparison.
type Schedule struct {
	ID             int64    `json:"id"`
	Date           string   `json:"date"`
	Route          string   `json:"route"`
	DepartureTime  string   `json:"departureTime"`
	TotalSeats     int      `json:"totalSeats"`
	AvailableSeats int      `json:"availableSeats"`
	OccupiedSeats  []string `json:"occupiedSeats"`
}

// IsFull reports whether no seats remain on this schedule.
func (s Schedule) IsFull() bool { return s.AvailableSeats == 0 }

// Summary returns the subset of fields embedded in booking records.
func (s Schedule) Summary() ScheduleSummary {
	return ScheduleSummary{
		ID:            s.ID,
		Date:          s.Date,
		Route:         s.Route,
		DepartureTime: s.DepartureTime,
	}
}

// ScheduleSummary is the schedule excerpt the backend embeds inside each
// booking record.
type ScheduleSummary struct {
	ID            int64  `json:"id"`
	Date          string `json:"date"`
	Route         string `json:"route"`
	DepartureTime string `json:"departureTime"`
}
