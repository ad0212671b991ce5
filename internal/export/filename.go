package export

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/imsgexport/imsgexport/internal/chatdb"
)

// maxFilenameRunes caps the title portion of a transcript filename.
const maxFilenameRunes = 50

// TranscriptFilename derives a filesystem-safe file name for a thread's
// transcript: the NFC-normalized title with unsafe characters replaced,
// truncated, and suffixed with the thread row ID for uniqueness.
func TranscriptFilename(t chatdb.Thread) string {
	name := norm.NFC.String(t.Title())
	name = sanitizeFilename(name)
	name = strings.Trim(name, " ._")
	if name == "" {
		name = "thread"
	}
	if runes := []rune(name); len(runes) > maxFilenameRunes {
		name = string(runes[:maxFilenameRunes])
	}
	return fmt.Sprintf("%s_%d.txt", name, t.ID)
}

// sanitizeFilename replaces characters that are invalid in filenames.
func sanitizeFilename(s string) string {
	var result []rune
	for _, r := range s {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', '\n', '\r', '\t':
			result = append(result, '_')
		default:
			result = append(result, r)
		}
	}
	return string(result)
}
