package main

import (
	"attendance-backend/cmd/attendance-cli/commands"
	"attendance-backend/lib/telemetry"
	"context"
	"fmt"
	"log/slog"
	"os"
)

func run() int {
	telemetry.InitSlog(os.Stderr, false)

	t, err := telemetry.SetupFromEnv(context.Background(), "attendance-cli")
	if err != nil {
		slog.Warn("failed to setup telemetry", "err", err)
	}
	defer func() {
		err := t.Shutdown(context.Background())
		if err != nil {
			slog.Warn("telemetry shutdown", "err", err)
		}
	}()

	err = commands.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
