package app

import (
	"context"

	"github.com/iliyamo/shuttle-booking-client/internal/api"
	"github.com/iliyamo/shuttle-booking-client/internal/model"
	"github.com/iliyamo/shuttle-booking-client/internal/validate"
)

// Login authenticates against the backend. Missing fields are caught before
// any network call. On success the session is replaced wholesale: the
// previous user's cached bookings are dropped so they can never leak into
// the new session, the filters reset to today with no route or time filter,
// and the main surface is shown. On any failure the session is untouched.
func (c *Controller) Login(username, password string) {
	form := validate.LoginForm{Username: username, Password: password}
	if err := form.Validate(); err != nil {
		c.view.Alert(err.Error())
		return
	}
	c.async(func() func() {
		id, err := c.backend.Login(context.Background(), form.Username, form.Password)
		return func() {
			if err != nil {
				c.view.Alert("login failed: " + api.RemoteMessage(err, "please check your network connection"))
				return
			}
			c.gen++
			c.student = id
			c.bookings = nil
			c.schedules = nil
			c.hasSearch = false
			c.seats = nil
			c.booking = nil
			c.filters = searchParams{Date: model.FormatDate(c.clock())}
			c.view.ShowMain(id)
			if c.remember != nil {
				c.remember(id)
			}
			c.loadMyBookings()
		}
	})
}

// Register submits a new account. Field problems, including a password
// confirmation mismatch, are caught locally. Success returns the user to the
// login surface; the account is not logged in automatically.
func (c *Controller) Register(form validate.RegisterForm) {
	if err := form.Validate(); err != nil {
		c.view.Alert(err.Error())
		return
	}
	payload := api.RegisterRequest{
		StudentID: form.StudentID,
		Name:      form.Name,
		Email:     form.Email,
		Password:  form.Password,
	}
	c.async(func() func() {
		err := c.backend.Register(context.Background(), payload)
		return func() {
			if err != nil {
				c.view.Alert("registration failed: " + api.RemoteMessage(err, "please try again later"))
				return
			}
			c.view.Alert("registration complete, log in with your student id and password")
			c.view.ShowLogin()
		}
	})
}

// Logout clears the session, the cached bookings, the schedule results and
// the filters, then returns to the login surface. It is purely local, cannot
// fail, and bumps the generation so any still-in-flight response from the
// old session is discarded when it lands.
func (c *Controller) Logout() {
	c.gen++
	c.student = ""
	c.bookings = nil
	c.schedules = nil
	c.filters = searchParams{}
	c.lastSearch = searchParams{}
	c.hasSearch = false
	c.seats = nil
	c.booking = nil
	c.view.RenderBookings(nil)
	c.view.ShowLogin()
}
