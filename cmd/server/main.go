package main

import (
	"attendance-backend/lib/configutil"
	"attendance-backend/lib/httputil"
	"attendance-backend/lib/serviceutil"
	"attendance-backend/services/attendance"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Config struct {
	Port       int               `json:"port"`
	DumpDir    string            `json:"dump_dir"`
	Attendance attendance.Config `json:"attendance"`
}

func readConfig() (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	config, err := configutil.ReadConfig[Config]("config.json5")
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("config.json5 not found, using defaults")
	} else if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if config.Port == 0 {
		config.Port = 8000
	}
	if v := os.Getenv("ATTENDANCE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ATTENDANCE_PORT: %w", err)
		}
		config.Port = port
	}
	config.Attendance.ApplyEnv()

	return config, nil
}

// run owns every deferred cleanup, main only turns its result into an
// exit code.
func run(verbose bool) int {
	ctx := serviceutil.SignalContext()
	shutdown, err := InitTelemetry(ctx, verbose)
	if err != nil {
		slog.Error("failed to setup telemetry", "err", err)
		return 1
	}
	defer shutdown()

	config, err := readConfig()
	if err != nil {
		slog.Error("failed to read config", "err", err)
		return 1
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(httputil.Logging)
	r.Use(httputil.CORS)

	database, err := InitAttendance(r, config.Attendance, scrapeOutput(verbose, config.DumpDir))
	if err != nil {
		slog.Error("failed to init attendance", "err", err)
		return 1
	}
	defer database.Close()

	err = serviceutil.StartHttpServer(ctx, config.Port, otelhttp.NewHandler(r, "attendance"))
	if err != nil {
		slog.Error("http server stopped", "err", err)
		return 1
	}
	return 0
}

func main() {
	verbose := flag.Bool("v", false, "enable debug logging and dump scraped pages")
	flag.Parse()
	os.Exit(run(*verbose))
}
