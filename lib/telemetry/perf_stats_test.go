package telemetry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSampleCpuKeepsLatest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int64
	sample := func(ctx context.Context, interval time.Duration) ([]float64, error) {
		n := calls.Add(1)
		if n > 3 {
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return []float64{float64(n)}, nil
	}

	out := make(chan float64, 1)
	done := make(chan struct{})
	go func() {
		sampleCpu(ctx, out, sample, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return calls.Load() > 3 }, time.Second, time.Millisecond)
	require.Equal(t, 3.0, <-out)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sampler did not stop after cancel")
	}
}

func TestSampleCpuWaitsAfterError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int64
	sample := func(ctx context.Context, interval time.Duration) ([]float64, error) {
		calls.Add(1)
		return nil, errors.New("unsupported platform")
	}

	out := make(chan float64, 1)
	done := make(chan struct{})
	go func() {
		sampleCpu(ctx, out, sample, 50*time.Millisecond)
		close(done)
	}()

	time.Sleep(120 * time.Millisecond)
	cancel()
	<-done

	require.LessOrEqual(t, calls.Load(), int64(4))
	require.Empty(t, out)
}
