package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupFromEnvWithoutConfig(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	tel, err := SetupFromEnv(context.Background(), "test:telemetry")
	require.NoError(t, err)
	require.Nil(t, tel.TracerProvider)
	require.NoError(t, tel.Shutdown(context.Background()))
}

func TestConnTransport(t *testing.T) {
	require.Equal(t, "grpc", OtlpConnConfig{GrpcEndpoint: "http://localhost:4317"}.transport())
	require.Equal(t, "http", OtlpConnConfig{HttpEndpoint: "http://localhost:4318"}.transport())
}

func TestInitSlog(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	var out bytes.Buffer
	InitSlog(&out, false)
	slog.Debug("hidden")
	slog.Info("visible", "roll_num", "CS2021001")
	require.NotContains(t, out.String(), "hidden")
	require.Contains(t, out.String(), "visible")

	out.Reset()
	InitSlog(&out, true)
	slog.Debug("shown")
	require.Contains(t, out.String(), "shown")
}
