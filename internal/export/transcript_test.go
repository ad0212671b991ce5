package export

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	_ "github.com/mattn/go-sqlite3"

	"github.com/imsgexport/imsgexport/internal/chatdb"
	"github.com/imsgexport/imsgexport/internal/testutil"
)

func TestRenderTranscript(t *testing.T) {
	thread := chatdb.Thread{
		ID:           7,
		DisplayName:  "Ski Trip",
		Participants: []string{"+15551234567", "bob@example.com"},
	}
	at := time.Date(2023, 3, 7, 21, 46, 40, 0, time.UTC)
	messages := []chatdb.Message{
		{Text: "anyone up for saturday?", SentAt: at, Sender: "+15551234567"},
		{Text: "count me in", SentAt: at.Add(10 * time.Minute), FromMe: true},
		{Text: "", SentAt: at.Add(11 * time.Minute), Sender: "bob@example.com"}, // attachment-only
		{Text: "same here", SentAt: at.Add(20 * time.Minute)},                   // unresolved sender
	}

	want := strings.Join([]string{
		"Conversation: Ski Trip",
		"Participants: +15551234567, bob@example.com",
		"",
		"[2023-03-07 21:46:40] +15551234567: anyone up for saturday?",
		"[2023-03-07 21:56:40] Me: count me in",
		"[2023-03-07 22:06:40] Unknown: same here",
		"",
	}, "\n")

	got := RenderTranscript(thread, messages)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTranscriptNoParticipants(t *testing.T) {
	got := RenderTranscript(chatdb.Thread{DisplayName: "Notes"}, nil)
	want := "Conversation: Notes\n\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTranscriptFilename(t *testing.T) {
	tests := []struct {
		name   string
		thread chatdb.Thread
		want   string
	}{
		{
			"display name",
			chatdb.Thread{ID: 3, DisplayName: "Ski Trip"},
			"Ski Trip_3.txt",
		},
		{
			"unsafe characters replaced",
			chatdb.Thread{ID: 4, DisplayName: `a/b\c:d?e`},
			"a_b_c_d_e_4.txt",
		},
		{
			"participants fallback",
			chatdb.Thread{ID: 5, Participants: []string{"+15551234567", "bob@example.com"}},
			"+15551234567, bob@example.com_5.txt",
		},
		{
			"empty title",
			chatdb.Thread{ID: 6},
			"thread_6.txt",
		},
		{
			"long title truncated",
			chatdb.Thread{ID: 8, DisplayName: strings.Repeat("x", 80)},
			strings.Repeat("x", 50) + "_8.txt",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TranscriptFilename(tt.thread); got != tt.want {
				t.Errorf("TranscriptFilename = %q, want %q", got, tt.want)
			}
		})
	}
}

// seedExportFixture writes a two-thread chat.db: one thread with a single
// text message and one with no messages at all.
func seedExportFixture(t *testing.T, path string) {
	t.Helper()

	db, err := sql.Open("sqlite3", path)
	testutil.MustNoErr(t, err, "create fixture db")
	defer db.Close()

	const ts = int64(700_000_000_000_000_000)
	stmts := fmt.Sprintf(`
		CREATE TABLE chat (ROWID INTEGER PRIMARY KEY, guid TEXT NOT NULL, display_name TEXT);
		CREATE TABLE handle (ROWID INTEGER PRIMARY KEY, id TEXT NOT NULL);
		CREATE TABLE chat_handle_join (chat_id INTEGER NOT NULL, handle_id INTEGER NOT NULL);
		CREATE TABLE message (ROWID INTEGER PRIMARY KEY, guid TEXT NOT NULL, text TEXT,
			date INTEGER, is_from_me INTEGER DEFAULT 0, handle_id INTEGER);
		CREATE TABLE chat_message_join (chat_id INTEGER NOT NULL, message_id INTEGER NOT NULL);

		INSERT INTO handle (ROWID, id) VALUES (1, '+15551234567');
		INSERT INTO chat (ROWID, guid, display_name) VALUES
			(1, 'iMessage;-;+15551234567', NULL),
			(2, 'iMessage;-;empty', NULL);
		INSERT INTO chat_handle_join (chat_id, handle_id) VALUES (1, 1);
		INSERT INTO message (ROWID, guid, text, date, is_from_me, handle_id) VALUES
			(1, 'msg-1', 'hello there', %d, 0, 1);
		INSERT INTO chat_message_join (chat_id, message_id) VALUES (1, 1);
	`, ts)
	_, err = db.Exec(stmts)
	testutil.MustNoErr(t, err, "seed fixture")
}

func TestExportAll(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "chat.db")
	seedExportFixture(t, dbPath)

	db, err := chatdb.Open(dbPath)
	testutil.MustNoErr(t, err, "open chatdb")
	defer db.Close()

	outDir := filepath.Join(dir, "out")
	var progress strings.Builder
	exp := New(db, Options{OutputDir: outDir, Progress: &progress})

	summary, err := exp.ExportAll()
	testutil.MustNoErr(t, err, "export all")

	if summary.Threads != 1 {
		t.Errorf("Threads = %d, want 1", summary.Threads)
	}
	if summary.Messages != 1 {
		t.Errorf("Messages = %d, want 1", summary.Messages)
	}
	if summary.SkippedThreads != 1 {
		t.Errorf("SkippedThreads = %d, want 1", summary.SkippedThreads)
	}

	path := filepath.Join(outDir, "+15551234567_1.txt")
	data, err := os.ReadFile(path)
	testutil.MustNoErr(t, err, "read transcript")
	if !strings.Contains(string(data), "hello there") {
		t.Errorf("transcript missing message text:\n%s", data)
	}
	if !strings.Contains(progress.String(), "+15551234567_1.txt") {
		t.Errorf("progress output missing transcript path: %q", progress.String())
	}
}

func TestExportAllDateBoundsExcludeEverything(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "chat.db")
	seedExportFixture(t, dbPath)

	db, err := chatdb.Open(dbPath)
	testutil.MustNoErr(t, err, "open chatdb")
	defer db.Close()

	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	exp := New(db, Options{
		OutputDir: filepath.Join(dir, "out"),
		Start:     &start,
	})

	summary, err := exp.ExportAll()
	testutil.MustNoErr(t, err, "export all")
	if summary.Threads != 0 {
		t.Errorf("Threads = %d, want 0", summary.Threads)
	}
	if summary.SkippedThreads != 2 {
		t.Errorf("SkippedThreads = %d, want 2", summary.SkippedThreads)
	}
}
