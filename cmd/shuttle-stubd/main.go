// Command shuttle-stubd serves the in-memory stand-in backend for local
// development of the shuttle client.
package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/shuttle-booking-client/internal/config"
	"github.com/iliyamo/shuttle-booking-client/internal/stubserver"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadStub()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	store := stubserver.NewStore(time.Now(), cfg.SeedDays)
	srv := stubserver.New(store, logger)

	e := echo.New()
	e.HideBanner = true
	srv.Register(e)

	log.Printf("stub backend seeded with %s, listening on :%s", store, cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
