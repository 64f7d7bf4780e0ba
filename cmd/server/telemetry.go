package main

import (
	"attendance-backend/lib/restyutil"
	"attendance-backend/lib/telemetry"
	"context"
	"log/slog"
	"os"
)

// InitTelemetry sets up logging and the otel providers, the returned
// function flushes them.
func InitTelemetry(ctx context.Context, verbose bool) (func(), error) {
	telemetry.InitSlog(os.Stderr, verbose)

	t, err := telemetry.SetupFromEnv(ctx, "attendance")
	if err != nil {
		return nil, err
	}
	err = telemetry.InstrumentPerfStats(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to instrument perf stats", "err", err)
	}

	return func() {
		err := t.Shutdown(context.Background())
		if err != nil {
			slog.Warn("telemetry shutdown", "err", err)
		}
	}, nil
}

// scrapeOutput dumps every fetched profile page under dir, only when
// running verbose.
func scrapeOutput(verbose bool, dir string) restyutil.InstrumentOutput {
	if !verbose || dir == "" {
		return nil
	}
	output, err := restyutil.NewFilesystemOutput(dir)
	if err != nil {
		slog.Warn("failed to create scrape dump directory", "dir", dir, "err", err)
		return nil
	}
	return output
}
