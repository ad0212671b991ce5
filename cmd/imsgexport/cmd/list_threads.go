package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/imsgexport/imsgexport/internal/chatdb"
	"github.com/imsgexport/imsgexport/internal/textutil"
)

var listJSON bool

// titleColumnWidth caps the TITLE column so group chats with long names
// or many participants keep the table readable.
const titleColumnWidth = 60

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List conversation threads",
	Long: `List all conversation threads in the Messages database, most
recently created first.

Examples:
  imsgexport list
  imsgexport list --json
  imsgexport list --db /backups/chat.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		threads, err := db.ListThreads()
		if err != nil {
			return fmt.Errorf("list threads: %w", err)
		}

		if len(threads) == 0 {
			fmt.Println("No threads found.")
			return nil
		}

		if listJSON {
			return outputThreadsJSON(threads)
		}
		outputThreadsTable(threads)
		return nil
	},
}

func outputThreadsTable(threads []chatdb.Thread) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPARTICIPANTS\tTITLE")
	fmt.Fprintln(w, "──\t────────────\t─────")
	for _, t := range threads {
		fmt.Fprintf(w, "%d\t%d\t%s\n", t.ID, len(t.Participants), textutil.Truncate(t.Title(), titleColumnWidth))
	}
	w.Flush()
}

func outputThreadsJSON(threads []chatdb.Thread) error {
	type threadJSON struct {
		ID           int64    `json:"id"`
		GUID         string   `json:"guid"`
		Title        string   `json:"title"`
		Participants []string `json:"participants"`
	}

	out := make([]threadJSON, 0, len(threads))
	for _, t := range threads {
		out = append(out, threadJSON{
			ID:           t.ID,
			GUID:         t.GUID,
			Title:        t.Title(),
			Participants: t.Participants,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}
