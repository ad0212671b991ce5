// Package export renders conversation threads as plain-text transcripts
// and writes them to per-thread files.
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/imsgexport/imsgexport/internal/chatdb"
	"github.com/imsgexport/imsgexport/internal/fileutil"
)

// timestampLayout is the wall-clock format used for transcript lines.
const timestampLayout = "2006-01-02 15:04:05"

// selfName labels messages authored by the local user.
const selfName = "Me"

// unknownName labels messages whose sender handle could not be resolved.
const unknownName = "Unknown"

// Options configures a transcript export run.
type Options struct {
	// OutputDir is the directory transcript files are written to.
	// It is created if missing.
	OutputDir string

	// Start and End are optional inclusive date bounds applied to every
	// thread's message query.
	Start *time.Time
	End   *time.Time

	// Progress receives one line per exported thread. Nil means silent.
	Progress io.Writer
}

// Summary holds statistics from a completed export.
type Summary struct {
	Threads        int // transcript files written
	Messages       int // messages fetched across all written threads
	SkippedThreads int // threads with no messages in range
}

// Exporter walks threads in a Messages database and writes one transcript
// file per thread. It does not own the database handle; the caller closes it.
type Exporter struct {
	db   *chatdb.DB
	opts Options
}

// New creates an Exporter over an open database handle.
func New(db *chatdb.DB, opts Options) *Exporter {
	return &Exporter{db: db, opts: opts}
}

// ExportAll exports every thread in the store. Threads with no messages
// in range produce no file and are counted as skipped.
func (e *Exporter) ExportAll() (*Summary, error) {
	threads, err := e.db.ListThreads()
	if err != nil {
		return nil, fmt.Errorf("list threads: %w", err)
	}
	return e.ExportThreads(threads)
}

// ExportThreads exports the given threads in order.
func (e *Exporter) ExportThreads(threads []chatdb.Thread) (*Summary, error) {
	if err := fileutil.SecureMkdirAll(e.opts.OutputDir, 0700); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	summary := &Summary{}
	for _, thread := range threads {
		path, count, err := e.exportThread(thread)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			summary.SkippedThreads++
			continue
		}
		summary.Threads++
		summary.Messages += count
		e.progressf("%s (%d messages)\n", path, count)
	}
	return summary, nil
}

// exportThread fetches one thread's messages and writes its transcript.
// Returns the written path and the message count; a count of zero means
// nothing was written.
func (e *Exporter) exportThread(thread chatdb.Thread) (string, int, error) {
	messages, err := e.db.FetchMessages(chatdb.MessageFilter{
		ThreadID: thread.ID,
		Start:    e.opts.Start,
		End:      e.opts.End,
	})
	if err != nil {
		return "", 0, fmt.Errorf("fetch messages for thread %d: %w", thread.ID, err)
	}
	if len(messages) == 0 {
		return "", 0, nil
	}

	path := filepath.Join(e.opts.OutputDir, TranscriptFilename(thread))
	transcript := RenderTranscript(thread, messages)
	if err := fileutil.SecureWriteFile(path, []byte(transcript), 0600); err != nil {
		return "", 0, fmt.Errorf("write transcript %s: %w", path, err)
	}
	return path, len(messages), nil
}

func (e *Exporter) progressf(format string, args ...interface{}) {
	if e.opts.Progress != nil {
		fmt.Fprintf(e.opts.Progress, format, args...)
	}
}

// RenderTranscript renders one thread's messages as plain text. Messages
// without a text body (attachments, tapbacks) are skipped.
func RenderTranscript(thread chatdb.Thread, messages []chatdb.Message) string {
	var b strings.Builder

	title := thread.Title()
	fmt.Fprintf(&b, "Conversation: %s\n", title)
	if len(thread.Participants) > 0 {
		fmt.Fprintf(&b, "Participants: %s\n", strings.Join(thread.Participants, ", "))
	}
	b.WriteString("\n")

	for _, m := range messages {
		if m.Text == "" {
			continue
		}
		fmt.Fprintf(&b, "[%s] %s: %s\n", m.SentAt.Format(timestampLayout), senderName(m), m.Text)
	}
	return b.String()
}

// senderName resolves the display label for a message's author.
func senderName(m chatdb.Message) string {
	if m.FromMe {
		return selfName
	}
	if m.Sender == "" {
		return unknownName
	}
	return m.Sender
}
