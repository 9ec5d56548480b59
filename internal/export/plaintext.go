package export

import (
	"fmt"
	"strings"
	"time"

	"audioscribe/internal/transcript"
)

// PlainText renders a record in the simple form pasted into word processors:
// one-line header, generation timestamp, a fixed-width rule, then the
// verbatim transcript body. No metadata beyond filename and timestamp.
type PlainText struct{}

func (PlainText) Ext() string { return ".txt" }

func (PlainText) Render(rec transcript.Record, outputPath string) (string, error) {
	info := rec.FileInfo()

	var b strings.Builder
	fmt.Fprintf(&b, "TRANSCRIPT: %s\n", info.Filename)
	fmt.Fprintf(&b, "Generated: %s\n", info.ProcessedAt.Format(time.RFC3339))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	b.WriteString(rec.Body())

	return writeDocument(outputPath, ".txt", b.String())
}
