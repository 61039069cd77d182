package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/iliyamo/shuttle-booking-client/internal/api"
	"github.com/iliyamo/shuttle-booking-client/internal/model"
)

// lowSeatThreshold marks a schedule card as urgent when this many seats or
// fewer remain.
const lowSeatThreshold = 5

// Search queries schedules for a date and optional route, applies the
// client-side time filter, and renders the results in backend order. An
// empty date is a hard precondition: the user gets a blocking prompt and no
// request is issued. A backend-reported query failure renders inline in
// place of the results; only transport failures alert.
func (c *Controller) Search(date, route, timeFilter string) {
	if date == "" {
		c.view.Alert("please choose a date")
		return
	}
	c.filters = searchParams{Date: date, Route: route, Time: timeFilter}
	c.lastSearch = c.filters
	c.hasSearch = true
	c.runSearch(c.lastSearch)
}

// research re-runs the last schedule query so availability counts reflect a
// just-created or just-deleted booking. It is a no-op before the first
// search.
func (c *Controller) research() {
	if !c.hasSearch {
		return
	}
	c.runSearch(c.lastSearch)
}

func (c *Controller) runSearch(p searchParams) {
	c.async(func() func() {
		schedules, err := c.backend.Schedules(context.Background(), p.Date, p.Route)
		return func() {
			if err != nil {
				var re *api.RemoteError
				if errors.As(err, &re) {
					c.view.RenderScheduleError(re.Error())
					return
				}
				c.view.Alert("search failed, please check your network connection")
				return
			}
			if p.Time != "" {
				schedules = filterByTime(schedules, p.Time)
			}
			c.schedules = schedules
			c.view.RenderSchedules(scheduleCards(schedules), p.Date)
		}
	})
}

// filterByTime keeps schedules departing at or after t. The comparison is a
// plain string comparison, which is correct only because departure times are
// zero-padded "HH:MM" strings; "08:00" < "13:30" holds lexicographically for
// exactly that reason. Keep the fixed width or this breaks.
func filterByTime(schedules []model.Schedule, t string) []model.Schedule {
	out := make([]model.Schedule, 0, len(schedules))
	for _, s := range schedules {
		if s.DepartureTime >= t {
			out = append(out, s)
		}
	}
	return out
}

func scheduleCards(schedules []model.Schedule) []ScheduleCard {
	cards := make([]ScheduleCard, 0, len(schedules))
	for _, s := range schedules {
		card := ScheduleCard{
			ScheduleID:    s.ID,
			DepartureTime: s.DepartureTime,
			Route:         s.Route,
			SeatsLabel:    fmt.Sprintf("%d seats left", s.AvailableSeats),
			LowSeats:      s.AvailableSeats <= lowSeatThreshold,
			Disabled:      s.IsFull(),
			ActionLabel:   "select seat",
		}
		if s.IsFull() {
			card.ActionLabel = "full"
		}
		cards = append(cards, card)
	}
	return cards
}
