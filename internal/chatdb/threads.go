package chatdb

import "strings"

// participantSeparator joins handle identifiers inside the aggregating
// thread query; splitParticipants splits on it again.
const participantSeparator = ","

// ListThreads returns every conversation in the store, highest ROWID
// (most recently created) first. Participant handles are aggregated per
// thread inside the query so the whole listing is a single round trip.
func (d *DB) ListThreads() ([]Thread, error) {
	rows, err := d.db.Query(`
		SELECT
			c.ROWID,
			c.guid,
			COALESCE(c.display_name, ''),
			COALESCE(GROUP_CONCAT(h.id, ','), '')
		FROM chat c
		LEFT JOIN chat_handle_join chj ON chj.chat_id = c.ROWID
		LEFT JOIN handle h ON h.ROWID = chj.handle_id
		GROUP BY c.ROWID
		ORDER BY c.ROWID DESC
	`)
	if err != nil {
		return nil, &QueryError{Op: "list threads", Err: err}
	}
	defer rows.Close()

	var threads []Thread
	for rows.Next() {
		var t Thread
		var joined string
		if err := rows.Scan(&t.ID, &t.GUID, &t.DisplayName, &joined); err != nil {
			return nil, &QueryError{Op: "scan thread", Err: err}
		}
		t.Participants = splitParticipants(joined)
		threads = append(threads, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "list threads", Err: err}
	}
	return threads, nil
}

// splitParticipants parses the aggregated participant column into
// individual handle identifiers, trimming surrounding whitespace and
// dropping empties.
func splitParticipants(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, participantSeparator)
	handles := make([]string, 0, len(parts))
	for _, p := range parts {
		if h := strings.TrimSpace(p); h != "" {
			handles = append(handles, h)
		}
	}
	return handles
}
