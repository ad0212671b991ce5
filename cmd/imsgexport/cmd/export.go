package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/imsgexport/imsgexport/internal/chatdb"
	"github.com/imsgexport/imsgexport/internal/export"
)

var (
	exportOutput string
	exportStart  string
	exportEnd    string
)

var exportCmd = &cobra.Command{
	Use:   "export [thread-id...]",
	Short: "Export threads as plain-text transcripts",
	Long: `Export conversation threads as one plain-text transcript file per
thread. With no arguments every thread is exported; otherwise only the
named thread IDs (see 'imsgexport list').

Both date bounds are inclusive and may be given independently.

Examples:
  imsgexport export
  imsgexport export 42 17
  imsgexport export --start 2023-01-01 --end 2023-12-31
  imsgexport export -o ~/transcripts --start "2023-06-01 12:00:00"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := optionalDate(exportStart)
		if err != nil {
			return err
		}
		end, err := optionalDate(exportEnd)
		if err != nil {
			return err
		}

		outputDir := exportOutput
		if outputDir == "" {
			outputDir = cfg.Export.OutputDir
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		// Per-thread progress only when a human is watching.
		var progress io.Writer
		if isatty.IsTerminal(os.Stdout.Fd()) {
			progress = os.Stdout
		}

		exp := export.New(db, export.Options{
			OutputDir: outputDir,
			Start:     start,
			End:       end,
			Progress:  progress,
		})

		var summary *export.Summary
		if len(args) == 0 {
			summary, err = exp.ExportAll()
		} else {
			var selected []chatdb.Thread
			selected, err = selectThreads(db, args)
			if err != nil {
				return err
			}
			summary, err = exp.ExportThreads(selected)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Exported %d thread(s), %d message(s) to %s", summary.Threads, summary.Messages, outputDir)
		if summary.SkippedThreads > 0 {
			fmt.Printf(" (%d thread(s) had no messages in range)", summary.SkippedThreads)
		}
		fmt.Println()
		return nil
	},
}

// selectThreads resolves explicit thread-ID arguments against the store.
// An unknown ID is a user-facing error here; the access layer itself
// reports unknown threads as empty results.
func selectThreads(db *chatdb.DB, args []string) ([]chatdb.Thread, error) {
	threads, err := db.ListThreads()
	if err != nil {
		return nil, fmt.Errorf("list threads: %w", err)
	}

	byID := make(map[int64]chatdb.Thread, len(threads))
	for _, t := range threads {
		byID[t.ID] = t
	}

	selected := make([]chatdb.Thread, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid thread id %q", arg)
		}
		t, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown thread id %d (try 'imsgexport list')", id)
		}
		selected = append(selected, t)
	}
	return selected, nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output directory (default from config)")
	exportCmd.Flags().StringVar(&exportStart, "start", "", "only messages at or after this date")
	exportCmd.Flags().StringVar(&exportEnd, "end", "", "only messages at or before this date")
}
