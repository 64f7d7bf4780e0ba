package commands

import (
	"attendance-backend/services/attendance"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(ingestCmd)
}

var ingestCmd = &cobra.Command{
	Use:   "ingest <url>",
	Short: "Scrapes a profile page and records the student in the \"in\" table.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, database, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close()

		service := attendance.NewService(database, cfg.NewScraper(nil), cfg.AllowedHost)
		result, err := service.Ingest(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if result.Inserted {
			fmt.Fprintf(cmd.OutOrStdout(), "recorded %s (%s)\n", result.Record.RollNum, result.Record.Name)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s was already recorded\n", result.Record.RollNum)
		}
		return nil
	},
}
