package main

import (
	"attendance-backend/lib/restyutil"
	"attendance-backend/lib/timezone"
	"attendance-backend/services/attendance"
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi/v5"
)

// InitAttendance opens the database and mounts the attendance routes,
// the returned database must be closed by the caller.
func InitAttendance(r chi.Router, cfg attendance.Config, output restyutil.InstrumentOutput) (*sql.DB, error) {
	err := timezone.SetLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	slog.Info("opening database...", "file", cfg.Database.File, "remote", cfg.Database.Url != "")
	database, err := cfg.OpenDB()
	if err != nil {
		return nil, err
	}

	service := attendance.NewService(database, cfg.NewScraper(output), cfg.AllowedHost)
	attendance.NewHandler(service).RegisterRoutes(r)
	return database, nil
}
