package commands

import (
	"attendance-backend/lib/configutil"
	"attendance-backend/lib/telemetry"
	"attendance-backend/lib/timezone"
	"attendance-backend/services/attendance"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type Config struct {
	Attendance attendance.Config `json:"attendance"`
}

var configPath *string
var verbose *bool

var rootCmd = &cobra.Command{
	Use:   "attendance-cli",
	Short: "attendance-cli scrapes profile pages and inspects the attendance database.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if *verbose {
			telemetry.InitSlog(os.Stderr, true)
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "config.json5", "The config file to read.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")
}

func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func loadConfig() (attendance.Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return attendance.Config{}, err
	}

	cfg, err := configutil.ReadConfig[Config](*configPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return attendance.Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg.Attendance.ApplyEnv()

	err = timezone.SetLocation(cfg.Attendance.Timezone)
	if err != nil {
		return attendance.Config{}, err
	}
	return cfg.Attendance, nil
}

func openDB() (attendance.Config, *sql.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return attendance.Config{}, nil, err
	}
	database, err := cfg.OpenDB()
	if err != nil {
		return attendance.Config{}, nil, err
	}
	return cfg, database, nil
}

func tableFlag(cmd *cobra.Command) *string {
	return cmd.Flags().StringP("table", "t", string(attendance.TableIn), "The table to read, in or out.")
}
