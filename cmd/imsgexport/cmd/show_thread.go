package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/imsgexport/imsgexport/internal/chatdb"
	"github.com/imsgexport/imsgexport/internal/export"
)

var (
	showStart string
	showEnd   string
)

var showCmd = &cobra.Command{
	Use:   "show <thread-id>",
	Short: "Print one thread's transcript to stdout",
	Long: `Render a single conversation thread as a plain-text transcript on
standard output instead of writing a file.

Examples:
  imsgexport show 42
  imsgexport show 42 --start 2023-01-01 --end 2023-06-30`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid thread id %q", args[0])
		}

		start, err := optionalDate(showStart)
		if err != nil {
			return err
		}
		end, err := optionalDate(showEnd)
		if err != nil {
			return err
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		threads, err := db.ListThreads()
		if err != nil {
			return fmt.Errorf("list threads: %w", err)
		}
		var thread *chatdb.Thread
		for i := range threads {
			if threads[i].ID == id {
				thread = &threads[i]
				break
			}
		}
		if thread == nil {
			return fmt.Errorf("unknown thread id %d (try 'imsgexport list')", id)
		}

		messages, err := db.FetchMessages(chatdb.MessageFilter{
			ThreadID: id,
			Start:    start,
			End:      end,
		})
		if err != nil {
			return fmt.Errorf("fetch messages: %w", err)
		}

		_, err = os.Stdout.WriteString(export.RenderTranscript(*thread, messages))
		return err
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showStart, "start", "", "only messages at or after this date")
	showCmd.Flags().StringVar(&showEnd, "end", "", "only messages at or before this date")
}
