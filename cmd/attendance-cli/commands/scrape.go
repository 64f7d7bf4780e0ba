package commands

import (
	"attendance-backend/lib/restyutil"
	"attendance-backend/services/attendance"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var scrapeDump *string

func init() {
	scrapeDump = scrapeCmd.Flags().String("dump", "", "A directory to dump the fetched page into.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url> [--dump <dir>]",
	Short: "Fetches a profile page and prints what was extracted, nothing is written.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		service := attendance.NewService(nil, nil, cfg.AllowedHost)
		link, err := service.ValidateURL(args[0])
		if err != nil {
			return err
		}

		var output restyutil.InstrumentOutput
		if *scrapeDump != "" {
			fs, err := restyutil.NewFilesystemOutput(*scrapeDump)
			if err != nil {
				return err
			}
			output = fs
		}

		details, err := cfg.NewScraper(output).Fetch(cmd.Context(), link)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Field", "Value"})
		t.AppendRows([]table.Row{
			{"name", details.Name},
			{"reg_num", details.RegNum},
			{"department", details.Department},
		})
		t.Render()
		return nil
	},
}
