package export

import (
	"errors"
	"fmt"
	"os"
	"time"

	"audioscribe/internal/transcript"
)

// Format names accepted by ForFormat.
const (
	FormatMarkdown = "markdown"
	FormatText     = "text"
	FormatJSON     = "json"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Renderer serializes a canonical transcript record into one document format.
// Renderers never mutate the record; writing the output file is the only side
// effect, and the returned string is the path actually written. An empty
// outputPath picks a timestamped default name; a non-empty one is used
// verbatim, overwriting any existing file.
type Renderer interface {
	Render(rec transcript.Record, outputPath string) (string, error)
	Ext() string
}

func ForFormat(name string) (Renderer, error) {
	switch name {
	case FormatMarkdown:
		return Markdown{}, nil
	case FormatText:
		return PlainText{}, nil
	case FormatJSON:
		return JSON{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// DefaultPath names an unnamed export after the wall clock, second
// resolution. Two unnamed exports within the same second collide; tolerable
// for a single-user, low-frequency tool.
func DefaultPath(t time.Time, ext string) string {
	return "transcript_" + t.Format("20060102_150405") + ext
}

func writeDocument(path, ext, content string) (string, error) {
	if path == "" {
		path = DefaultPath(time.Now(), ext)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
