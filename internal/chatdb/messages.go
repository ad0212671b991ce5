package chatdb

import (
	"database/sql"
	"time"
)

// MessageFilter selects which messages FetchMessages returns. ThreadID is
// mandatory; Start and End are optional inclusive calendar-time bounds,
// encoded to native nanosecond timestamps before binding.
type MessageFilter struct {
	ThreadID int64
	Start    *time.Time
	End      *time.Time
}

// FetchMessages returns one thread's messages in chronological order.
// A thread with no messages in range (including an unknown thread ID)
// yields an empty slice, not an error.
func (d *DB) FetchMessages(filter MessageFilter) ([]Message, error) {
	query := `
		SELECT
			m.ROWID,
			m.guid,
			m.text,
			COALESCE(m.date, 0),
			COALESCE(m.is_from_me, 0),
			h.id
		FROM message m
		JOIN chat_message_join cmj ON cmj.message_id = m.ROWID
		LEFT JOIN handle h ON h.ROWID = m.handle_id
		WHERE cmj.chat_id = ?`
	args := []interface{}{filter.ThreadID}

	if filter.Start != nil {
		query += `
		  AND m.date >= ?`
		args = append(args, EncodeTimestamp(*filter.Start))
	}
	if filter.End != nil {
		query += `
		  AND m.date <= ?`
		args = append(args, EncodeTimestamp(*filter.End))
	}
	query += `
		ORDER BY m.date ASC`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, &QueryError{Op: "fetch messages", Err: err}
	}
	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		var (
			m      Message
			text   sql.NullString
			date   int64
			fromMe int
			sender sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.GUID, &text, &date, &fromMe, &sender); err != nil {
			return nil, &QueryError{Op: "scan message", Err: err}
		}
		m.Text = text.String
		m.SentAt = DecodeTimestamp(date)
		m.FromMe = fromMe != 0
		if !m.FromMe {
			m.Sender = sender.String
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "fetch messages", Err: err}
	}
	return messages, nil
}
