package chatdb

import (
	"strings"
	"time"
)

// Thread is one conversation from the chat table. Threads are read-only
// snapshots fetched once per invocation.
type Thread struct {
	ID           int64    // chat.ROWID
	GUID         string   // chat.guid
	DisplayName  string   // chat.display_name; usually empty outside named group chats
	Participants []string // handle identifiers (phone numbers, emails)
}

// Title returns the human-assigned display name when one is set,
// otherwise the participants joined with ", ".
func (t Thread) Title() string {
	if name := strings.TrimSpace(t.DisplayName); name != "" {
		return name
	}
	return strings.Join(t.Participants, ", ")
}

// Message is one row from the message table, decoded into calendar time.
// Messages are immutable value snapshots.
type Message struct {
	ID     int64     // message.ROWID
	GUID   string    // message.guid
	Text   string    // message.text; empty for non-text rows (attachments, tapbacks)
	SentAt time.Time // decoded from the native message.date column
	FromMe bool      // message.is_from_me
	Sender string    // handle.id of the sender; empty when FromMe or unresolvable
}
