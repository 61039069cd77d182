// Command shuttle is the interactive terminal client for the campus shuttle
// booking backend.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/iliyamo/shuttle-booking-client/internal/api"
	"github.com/iliyamo/shuttle-booking-client/internal/app"
	"github.com/iliyamo/shuttle-booking-client/internal/config"
	"github.com/iliyamo/shuttle-booking-client/internal/validate"
	"github.com/iliyamo/shuttle-booking-client/internal/view"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	client := api.New(cfg.APIBase, cfg.HTTPTimeout, logger)
	term := view.NewTerminal(os.Stdin, os.Stdout)
	ctrl := app.New(app.Options{
		Backend: client,
		View:    term,
		Logger:  logger,
		Remember: func(id string) {
			if err := config.RememberStudentID(id); err != nil {
				logger.Warn("could not remember student id", "error", err)
			}
		},
	})

	term.ShowLogin()
	if id := config.RememberedStudentID(); id != "" {
		fmt.Printf("(last login: %s)\n", id)
	}
	fmt.Println("type 'help' for the command list")

	runShell(ctrl, term)
}

// runShell reads commands, dispatches them to the controller and drains its
// completion queue after every event, the same way the browser loop applied
// fetch continuations between user actions.
func runShell(ctrl *app.Controller, term *view.Terminal) {
	for {
		ctrl.Pump()
		line, ok := term.ReadLine("> ")
		if !ok {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "help":
			printHelp()
		case "login":
			username, _ := term.ReadLine("student id: ")
			password, _ := term.ReadLine("password: ")
			ctrl.Login(username, password)
		case "register":
			doRegister(ctrl, term)
		case "logout":
			ctrl.Logout()
		case "search":
			doSearch(ctrl, term, args)
		case "seats":
			if id, ok := parseID(term, args); ok {
				ctrl.OpenSeatMap(id)
			}
		case "select":
			if len(args) != 1 {
				fmt.Println("usage: select <seat>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Println("usage: select <seat>")
				continue
			}
			ctrl.SelectSeat(n)
		case "book":
			ctrl.ConfirmBooking()
		case "cancel":
			ctrl.CloseSeatMap()
		case "bookings":
			ctrl.LoadMyBookings()
		case "delete":
			if id, ok := parseID(term, args); ok {
				ctrl.DeleteBooking(id)
			}
		case "ticket":
			if len(args) != 2 {
				fmt.Println("usage: ticket <booking id> <file.pdf>")
				continue
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fmt.Println("usage: ticket <booking id> <file.pdf>")
				continue
			}
			ctrl.SaveTicket(id, args[1])
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q, type 'help'\n", cmd)
		}
		ctrl.Flush()
	}
}

func doSearch(ctrl *app.Controller, term *view.Terminal, args []string) {
	date, route, timeFilter := ctrl.Filters()
	if len(args) > 0 {
		date = args[0]
	} else {
		if v, ok := term.ReadLine(fmt.Sprintf("date [%s]: ", date)); ok && v != "" {
			date = v
		}
	}
	if len(args) > 1 {
		route = args[1]
	} else {
		if v, ok := term.ReadLine(fmt.Sprintf("route [%s]: ", route)); ok && v != "" {
			route = v
		}
	}
	if len(args) > 2 {
		timeFilter = args[2]
	} else {
		if v, ok := term.ReadLine(fmt.Sprintf("not before [%s]: ", timeFilter)); ok && v != "" {
			timeFilter = v
		}
	}
	ctrl.Search(date, route, timeFilter)
}

func doRegister(ctrl *app.Controller, term *view.Terminal) {
	form := validate.RegisterForm{}
	form.StudentID, _ = term.ReadLine("student id: ")
	form.Name, _ = term.ReadLine("name: ")
	form.Email, _ = term.ReadLine("email: ")
	form.Password, _ = term.ReadLine("password: ")
	form.ConfirmPassword, _ = term.ReadLine("confirm password: ")
	ctrl.Register(form)
}

func parseID(term *view.Terminal, args []string) (int64, bool) {
	if len(args) != 1 {
		fmt.Println("an id argument is required")
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Println("invalid id")
		return 0, false
	}
	return id, true
}

func printHelp() {
	fmt.Print(`commands:
  login                     log in with your student id
  register                  create an account
  search [date route time]  find departures (prompts for missing values)
  seats <schedule id>       open the seat map for a schedule
  select <seat>             pick a seat (1-20)
  book                      confirm the selected seat
  cancel                    close the seat map
  bookings                  show my bookings
  delete <booking id>       cancel a booking
  ticket <booking id> <f>   save the e-ticket PDF to file f
  logout                    log out
  quit                      leave
`)
}
