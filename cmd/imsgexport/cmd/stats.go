package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show Messages database statistics",
	Long:  `Show thread and message totals and the covered date range.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.GetStats()
		if err != nil {
			return fmt.Errorf("get stats: %w", err)
		}

		const layout = "2006-01-02 15:04:05"
		earliest, latest := "-", "-"
		if !stats.Earliest.IsZero() {
			earliest = stats.Earliest.Format(layout)
		}
		if !stats.Latest.IsZero() {
			latest = stats.Latest.Format(layout)
		}

		fmt.Printf("Database: %s\n", db.Path())
		fmt.Printf("  Threads:   %d\n", stats.ThreadCount)
		fmt.Printf("  Messages:  %d\n", stats.MessageCount)
		fmt.Printf("  Earliest:  %s\n", earliest)
		fmt.Printf("  Latest:    %s\n", latest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
