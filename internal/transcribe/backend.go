package transcribe

import (
	"context"
)

// Backend is a pluggable transcription service. Transcribe uploads the audio
// file at audioPath and returns the service's raw response text. The text is
// opaque at this layer; the transcript parser decides what to make of it.
type Backend interface {
	Name() string
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
