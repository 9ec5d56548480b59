package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"audioscribe/internal/transcript"
)

// JSON renders the entire record as an indented document, preserving metadata
// key order and leaving non-ASCII text unescaped.
type JSON struct{}

func (JSON) Ext() string { return ".json" }

func (JSON) Render(rec transcript.Record, outputPath string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return "", fmt.Errorf("failed to encode record: %w", err)
	}
	return writeDocument(outputPath, ".json", buf.String())
}
