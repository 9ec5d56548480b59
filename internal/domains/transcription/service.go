package transcription

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"audioscribe/internal/export"
	"audioscribe/internal/transcribe"
	"audioscribe/internal/transcript"
	"audioscribe/pkg/Logger"
)

// Common errors
var (
	ErrEmptyResponse = errors.New("transcription service returned no text")
)

// Service drives the single-file workflow: collaborator call, parse, export.
// A backend failure stops the operation before the parser is ever entered;
// export failures always propagate.
type Service interface {
	ProcessFile(ctx context.Context, audioPath string) (transcript.Record, error)
	Export(rec transcript.Record, formats []string, outputDir string) ([]string, error)
}

type transcriptionService struct {
	backend transcribe.Backend
	logger  *Logger.Logger
}

func New(backend transcribe.Backend, logger *Logger.Logger) Service {
	return &transcriptionService{backend: backend, logger: logger}
}

// ProcessFile implements Service.
func (s *transcriptionService) ProcessFile(ctx context.Context, audioPath string) (transcript.Record, error) {
	info, err := transcript.NewFileInfo(audioPath)
	if err != nil {
		return transcript.Record{}, fmt.Errorf("failed to stat audio file: %w", err)
	}

	raw, err := s.backend.Transcribe(ctx, audioPath)
	if err != nil {
		return transcript.Record{}, fmt.Errorf("%s transcription failed: %w", s.backend.Name(), err)
	}
	if strings.TrimSpace(raw) == "" {
		return transcript.Record{}, ErrEmptyResponse
	}

	rec := transcript.Parse(raw, info)
	if rec.Degraded() {
		s.logger.Warnf("structured parse degraded for %s", info.Filename)
	}
	return rec, nil
}

// Export implements Service. The output file for each format is named after
// the recording; with an empty outputDir the renderer's timestamped default
// name in the working directory is used instead.
func (s *transcriptionService) Export(rec transcript.Record, formats []string, outputDir string) ([]string, error) {
	if len(formats) == 0 {
		formats = []string{export.FormatMarkdown}
	}
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	filename := rec.FileInfo().Filename
	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	written := make([]string, 0, len(formats))
	for _, format := range formats {
		r, err := export.ForFormat(format)
		if err != nil {
			return written, err
		}
		path := ""
		if outputDir != "" {
			path = filepath.Join(outputDir, base+"_transcript"+r.Ext())
		}
		p, err := r.Render(rec, path)
		if err != nil {
			return written, fmt.Errorf("%s export failed: %w", format, err)
		}
		s.logger.Infof("exported %s to: %s", format, p)
		written = append(written, p)
	}
	return written, nil
}
