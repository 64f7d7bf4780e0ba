package telemetry

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// InstrumentPerfStats reports process level gauges until ctx is done.
// cpu usage is sampled in the background since a sample blocks for
// the whole sampling window.
func InstrumentPerfStats(ctx context.Context) error {
	meter := otel.Meter("attendance.perf_stats")

	cpuGauge, err := meter.Float64ObservableGauge("cpu_usage", metric.WithUnit("%"))
	if err != nil {
		return err
	}
	memoryGauge, err := meter.Int64ObservableGauge("allocated_mb", metric.WithUnit("MB"))
	if err != nil {
		return err
	}
	goroutineGauge, err := meter.Int64ObservableGauge("goroutine_count")
	if err != nil {
		return err
	}

	cpuUsage := make(chan float64, 1)
	go sampleCpu(ctx, cpuUsage, systemCpu, 30*time.Second)

	var lastCpu float64
	_, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		select {
		case v := <-cpuUsage:
			lastCpu = v
		default:
		}

		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		o.ObserveFloat64(cpuGauge, lastCpu)
		o.ObserveInt64(memoryGauge, int64(memStats.Alloc/1_000_000))
		o.ObserveInt64(goroutineGauge, int64(runtime.NumGoroutine()))
		return nil
	}, cpuGauge, memoryGauge, goroutineGauge)
	return err
}

type cpuSampler func(ctx context.Context, interval time.Duration) ([]float64, error)

func systemCpu(ctx context.Context, interval time.Duration) ([]float64, error) {
	return cpu.PercentWithContext(ctx, interval, false)
}

// sampleCpu keeps the latest reading in out, which must have a buffer
// of one. a failed sample waits out the interval before retrying.
func sampleCpu(ctx context.Context, out chan float64, sample cpuSampler, interval time.Duration) {
	for {
		usage, err := sample(ctx, interval)
		if ctx.Err() != nil {
			return
		}
		if err != nil || len(usage) == 0 {
			slog.DebugContext(ctx, "failed to read cpu usage", "err", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(interval):
			}
			continue
		}
		select {
		case <-out:
		default:
		}
		out <- usage[0]
	}
}
