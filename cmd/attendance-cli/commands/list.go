package commands

import (
	"attendance-backend/services/attendance"
	"attendance-backend/services/attendance/db"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var listTable *string

func init() {
	listTable = tableFlag(listCmd)
	rootCmd.AddCommand(listCmd)
}

func renderRecords(w io.Writer, records []attendance.Record) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Roll No", "Name", "Department", "Time"})
	for _, r := range records {
		t.AppendRow(table.Row{r.RollNum, r.Name, r.Department, r.Time.Format(db.TimeLayout)})
	}
	t.AppendFooter(table.Row{"", "", "Total", len(records)})
	t.Render()
}

var listCmd = &cobra.Command{
	Use:   "list [--table in|out]",
	Short: "Prints the rows of a table.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := attendance.ParseTable(*listTable)
		if err != nil {
			return err
		}

		_, database, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close()

		records, err := attendance.List(cmd.Context(), database, table)
		if err != nil {
			return err
		}
		renderRecords(cmd.OutOrStdout(), records)
		return nil
	},
}
