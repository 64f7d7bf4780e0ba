package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestReadConfigDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("ATTENDANCE_PORT", "")

	config, err := readConfig()
	require.NoError(t, err)
	require.Equal(t, 8000, config.Port)
}

func TestReadConfigEnvOverrides(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json5"), []byte(`{
		port: 9000,
		attendance: { database: { file: "from-config.db" } },
	}`), 0644))
	t.Setenv("ATTENDANCE_PORT", "9100")
	t.Setenv("ATTENDANCE_DB_FILE", "from-env.db")

	config, err := readConfig()
	require.NoError(t, err)
	require.Equal(t, 9100, config.Port)
	require.Equal(t, "from-env.db", config.Attendance.Database.File)
}

func TestReadConfigInvalidPort(t *testing.T) {
	chdirTemp(t)
	t.Setenv("ATTENDANCE_PORT", "eighty")

	_, err := readConfig()
	require.ErrorContains(t, err, "ATTENDANCE_PORT")
}

func TestScrapeOutput(t *testing.T) {
	require.Nil(t, scrapeOutput(false, t.TempDir()))
	require.Nil(t, scrapeOutput(true, ""))
	require.NotNil(t, scrapeOutput(true, filepath.Join(t.TempDir(), "dumps")))
}
