package chatdb

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
)

// Fixture timestamps, nanosecond encoding, whole seconds so query bounds
// built through EncodeTimestamp land exactly on the stored values.
const (
	fixT1 = int64(700_000_000_000_000_000) // 2023-03-08T20:26:40Z
	fixT2 = fixT1 + 600_000_000_000
	fixT3 = fixT1 + 1_200_000_000_000

	// Attachment-only row sits between fixT2 and fixT3 so ordering
	// within the fixture is deterministic.
	fixT2a = fixT2 + 1_000_000
)

// newFixtureDB writes a minimal chat.db to a temp dir and reopens it
// through Open so tests exercise the read-only immutable path.
func newFixtureDB(t *testing.T) *DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "chat.db")
	seedFixture(t, path)

	db, err := Open(path)
	if err != nil {
		t.Fatalf("open fixture db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// seedFixture creates the subset of the Messages schema the exporter
// reads, plus test data: a named group chat with three text messages and
// one attachment-only row, a one-on-one chat, and an empty chat.
func seedFixture(t *testing.T, path string) {
	t.Helper()

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("create fixture db: %v", err)
	}
	defer db.Close()

	schema := `
		CREATE TABLE chat (
			ROWID INTEGER PRIMARY KEY,
			guid TEXT NOT NULL,
			display_name TEXT
		);

		CREATE TABLE handle (
			ROWID INTEGER PRIMARY KEY,
			id TEXT NOT NULL
		);

		CREATE TABLE chat_handle_join (
			chat_id INTEGER NOT NULL,
			handle_id INTEGER NOT NULL
		);

		CREATE TABLE message (
			ROWID INTEGER PRIMARY KEY,
			guid TEXT NOT NULL,
			text TEXT,
			date INTEGER,
			is_from_me INTEGER DEFAULT 0,
			handle_id INTEGER
		);

		CREATE TABLE chat_message_join (
			chat_id INTEGER NOT NULL,
			message_id INTEGER NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create fixture schema: %v", err)
	}

	data := fmt.Sprintf(`
		INSERT INTO handle (ROWID, id) VALUES
			(1, '+15551234567'),
			(2, 'bob@example.com'),
			(3, ' carol@example.com ');

		INSERT INTO chat (ROWID, guid, display_name) VALUES
			(1, 'iMessage;+;chat100', 'Ski Trip'),
			(2, 'iMessage;-;+15551234567', NULL),
			(3, 'iMessage;-;carol', '');

		INSERT INTO chat_handle_join (chat_id, handle_id) VALUES
			(1, 1),
			(1, 2),
			(2, 1),
			(3, 3);

		INSERT INTO message (ROWID, guid, text, date, is_from_me, handle_id) VALUES
			(10, 'msg-10', 'anyone up for saturday?', %[1]d, 0, 1),
			(11, 'msg-11', 'count me in', %[2]d, 1, NULL),
			(12, 'msg-12', 'same here', %[3]d, 0, 2),
			(13, 'msg-13', NULL, %[4]d, 0, 2),
			(20, 'msg-20', 'running late', %[1]d, 0, 1);

		INSERT INTO chat_message_join (chat_id, message_id) VALUES
			(1, 10),
			(1, 11),
			(1, 12),
			(1, 13),
			(2, 20);
	`, fixT1, fixT2, fixT3, fixT2a)
	if _, err := db.Exec(data); err != nil {
		t.Fatalf("seed fixture data: %v", err)
	}
}
