// Package stubserver is an in-memory stand-in for the shuttle backend. It
// implements the same REST contract the production backend exposes, seeded
// with a month of departures, and exists for local development and as the
// fixture the client tests run against. The backend proper, with real
// storage and authentication, stays outside this repository.
package stubserver

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// Server wires the in-memory store to echo handlers.
type Server struct {
	store *Store
	log   *slog.Logger
}

// New builds a Server around the given store.
func New(store *Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{store: store, log: logger}
}

// Register mounts the API routes on the provided Echo instance.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("/api")
	api.POST("/login", s.handleLogin)
	api.POST("/register", s.handleRegister)
	api.GET("/schedules", s.handleSchedules)
	api.POST("/bookings", s.handleCreateBooking)
	api.GET("/bookings/:studentId", s.handleListBookings)
	api.DELETE("/bookings/:id", s.handleDeleteBooking)
}

// handleLogin accepts any non-empty username, echoing it back as the student
// id. The original dev backend did exactly this; real credential checks
// belong to the production backend.
func (s *Server) handleLogin(c echo.Context) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
	}
	username := strings.TrimSpace(body.Username)
	if username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "login failed"})
	}
	s.log.Info("login", "student_id", username)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "studentId": username})
}

func (s *Server) handleRegister(c echo.Context) error {
	var body struct {
		StudentID string `json:"studentId"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
	}
	if strings.TrimSpace(body.StudentID) == "" || strings.TrimSpace(body.Password) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "please fill in all fields"})
	}
	if err := s.store.RegisterStudent(body.StudentID, body.Name, body.Email, body.Password); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	s.log.Info("registered", "student_id", body.StudentID)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (s *Server) handleSchedules(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	route := strings.TrimSpace(c.QueryParam("route"))
	schedules, err := s.store.SchedulesFor(date, route)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, schedules)
}

func (s *Server) handleCreateBooking(c echo.Context) error {
	var body struct {
		StudentID  string `json:"studentId"`
		ScheduleID int64  `json:"scheduleId"`
		SeatNumber string `json:"seatNumber"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	booking, err := s.store.CreateBooking(body.StudentID, body.ScheduleID, body.SeatNumber)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	s.log.Info("booking created", "booking_id", booking.ID, "student_id", booking.StudentID, "seat", booking.SeatNumber)
	return c.JSON(http.StatusOK, booking)
}

func (s *Server) handleListBookings(c echo.Context) error {
	studentID := c.Param("studentId")
	return c.JSON(http.StatusOK, s.store.BookingsFor(studentID))
}

func (s *Server) handleDeleteBooking(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	studentID := strings.TrimSpace(c.QueryParam("studentId"))
	if err := s.store.DeleteBooking(id, studentID); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	s.log.Info("booking deleted", "booking_id", id, "student_id", studentID)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
