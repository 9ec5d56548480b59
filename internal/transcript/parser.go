package transcript

import (
	"strings"
)

// Section markers the transcription prompt asks the model to emit.
const (
	metadataMarker   = "[METADATA]"
	transcriptMarker = "[TRANSCRIPT]"
)

// Sentinel metadata values for the two fallback reasons. The differing keys
// let a caller tell unstructured model output apart from a mangled structured
// response.
const (
	fallbackNoteKey    = "Note"
	fallbackNoteValue  = "Auto-generated transcript"
	fallbackErrorKey   = "Error"
	fallbackErrorValue = "Failed to parse structure"
)

// Parse converts raw response text into a Record. It never fails: input that
// does not match the structured [METADATA]/[TRANSCRIPT] shape degrades to a
// record carrying the entire text as its body and a single sentinel metadata
// entry. The original text is retained verbatim on the record either way.
func Parse(raw string, info FileInfo) Record {
	mi := strings.Index(raw, metadataMarker)
	ti := strings.Index(raw, transcriptMarker)
	if mi < 0 || ti < 0 || ti < mi {
		// Also covers a reversed marker pair: no attempt at a backwards split.
		return fallback(raw, info, OutcomeMissingMarkers)
	}

	metadata := parseMetadataBlock(raw[mi+len(metadataMarker) : ti])
	if metadata.Len() == 0 {
		// Markers in place but not a single key/value line between them.
		// Metadata must never be empty, so treat this as a mangled response.
		return fallback(raw, info, OutcomeParseError)
	}

	return Record{
		fileInfo: info,
		metadata: metadata,
		body:     strings.TrimSpace(raw[ti+len(transcriptMarker):]),
		raw:      raw,
		outcome:  OutcomeStructured,
	}
}

// parseMetadataBlock splits the block into lines, splitting each on its first
// colon. Lines without a colon are skipped silently.
func parseMetadataBlock(block string) Metadata {
	var md Metadata
	for _, line := range strings.Split(block, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		md.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	return md
}

func fallback(raw string, info FileInfo, why Outcome) Record {
	var md Metadata
	if why == OutcomeParseError {
		md.Set(fallbackErrorKey, fallbackErrorValue)
	} else {
		md.Set(fallbackNoteKey, fallbackNoteValue)
	}
	return Record{
		fileInfo: info,
		metadata: md,
		body:     raw,
		raw:      raw,
		outcome:  why,
	}
}
