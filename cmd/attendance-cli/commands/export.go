package commands

import (
	"attendance-backend/services/attendance"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var exportTable *string
var exportOutput *string

func init() {
	exportTable = tableFlag(exportCmd)
	exportOutput = exportCmd.Flags().StringP("output", "o", "", "The file to write to, defaults to stdout.")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [--table in|out] [-o <file.csv>]",
	Short: "Writes a table as CSV.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := attendance.ParseTable(*exportTable)
		if err != nil {
			return err
		}

		_, database, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close()

		data, err := attendance.ExportCSV(cmd.Context(), database, table)
		if err != nil {
			return err
		}

		if *exportOutput == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		err = os.WriteFile(*exportOutput, data, 0644)
		if err != nil {
			return err
		}
		slog.Info("exported table", "table", table, "file", *exportOutput)
		return nil
	},
}
