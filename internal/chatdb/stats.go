package chatdb

import (
	"database/sql"
	"time"
)

// Stats holds summary counts for one Messages database.
type Stats struct {
	ThreadCount  int64
	MessageCount int64
	Earliest     time.Time // zero when the store has no dated messages
	Latest       time.Time
}

// GetStats returns thread and message totals plus the covered date range.
func (d *DB) GetStats() (*Stats, error) {
	stats := &Stats{}

	counts := []struct {
		query string
		dest  *int64
	}{
		{"SELECT COUNT(*) FROM chat", &stats.ThreadCount},
		{"SELECT COUNT(*) FROM message", &stats.MessageCount},
	}
	for _, q := range counts {
		if err := d.db.QueryRow(q.query).Scan(q.dest); err != nil {
			return nil, &QueryError{Op: "count rows", Err: err}
		}
	}

	var earliest, latest sql.NullInt64
	err := d.db.QueryRow(`
		SELECT MIN(date), MAX(date) FROM message WHERE date IS NOT NULL AND date != 0
	`).Scan(&earliest, &latest)
	if err != nil {
		return nil, &QueryError{Op: "date range", Err: err}
	}
	if earliest.Valid {
		stats.Earliest = DecodeTimestamp(earliest.Int64)
	}
	if latest.Valid {
		stats.Latest = DecodeTimestamp(latest.Int64)
	}

	return stats, nil
}
