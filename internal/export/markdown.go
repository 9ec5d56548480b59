package export

import (
	"fmt"
	"strings"
	"time"

	"audioscribe/internal/transcript"
)

const attributionLine = "*Automatically generated using Gemini 2.5 Flash Transcription*"

// Markdown renders a record as a Notion-compatible document: heading,
// metadata bullets, horizontal rules around the verbatim transcript body, and
// a fixed attribution line.
type Markdown struct{}

func (Markdown) Ext() string { return ".md" }

func (Markdown) Render(rec transcript.Record, outputPath string) (string, error) {
	info := rec.FileInfo()

	var b strings.Builder
	fmt.Fprintf(&b, "# Audio Transcript: %s\n\n", info.Filename)
	b.WriteString("## Metadata\n")
	fmt.Fprintf(&b, "- **File**: %s\n", info.Filename)
	fmt.Fprintf(&b, "- **Size**: %s\n", info.FileSize)
	fmt.Fprintf(&b, "- **Processed**: %s\n", info.ProcessedAt.Format(time.RFC3339))
	for _, e := range rec.Metadata().Entries() {
		fmt.Fprintf(&b, "- **%s**: %s\n", e.Key, e.Value)
	}
	b.WriteString("\n---\n\n## Transcript\n\n")
	b.WriteString(rec.Body())
	b.WriteString("\n\n---\n")
	b.WriteString(attributionLine + "\n")

	return writeDocument(outputPath, ".md", b.String())
}
