package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileInfo is provenance for a transcribed recording, captured once at parse
// time and never recomputed.
type FileInfo struct {
	Filename    string    `json:"filename"`
	FileSize    string    `json:"file_size"`
	ProcessedAt time.Time `json:"processed_at"`
}

// NewFileInfo describes the audio file at path, with its size rendered as a
// human-readable megabyte figure.
func NewFileInfo(path string) (FileInfo, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{
		Filename:    filepath.Base(path),
		FileSize:    fmt.Sprintf("%.2f MB", float64(fi.Size())/(1024*1024)),
		ProcessedAt: time.Now(),
	}, nil
}

// Outcome tags how a record was produced.
type Outcome int

const (
	// OutcomeStructured means both section markers were found in order and
	// the metadata block yielded at least one key/value pair.
	OutcomeStructured Outcome = iota
	// OutcomeMissingMarkers means the response had no usable marker pair;
	// the whole response became the transcript body.
	OutcomeMissingMarkers
	// OutcomeParseError means the markers were present but the structured
	// slice could not produce valid metadata.
	OutcomeParseError
)

// Record is the canonical in-memory representation of a transcript, shared by
// every exporter. It is immutable once constructed; only Parse builds one, so
// the degradation policy lives in a single place.
type Record struct {
	fileInfo FileInfo
	metadata Metadata
	body     string
	raw      string
	outcome  Outcome
}

func (r Record) FileInfo() FileInfo { return r.fileInfo }

// Metadata returns a copy; mutating it does not touch the record.
func (r Record) Metadata() Metadata {
	return Metadata{entries: r.metadata.Entries()}
}

// Body is the human-readable transcript text. Bracketed timestamp and event
// tags inside it are opaque.
func (r Record) Body() string { return r.body }

// Raw is the full, unmodified response text, kept for audit and as the
// ultimate fallback payload.
func (r Record) Raw() string { return r.raw }

func (r Record) Outcome() Outcome { return r.outcome }

// Degraded reports whether the record came out of the fallback path.
func (r Record) Degraded() bool { return r.outcome != OutcomeStructured }

// MarshalJSON serializes all four fields, preserving metadata key order.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		FileInfo    FileInfo `json:"file_info"`
		Metadata    Metadata `json:"metadata"`
		Transcript  string   `json:"transcript"`
		RawResponse string   `json:"raw_response"`
	}{r.fileInfo, r.metadata, r.body, r.raw})
}
