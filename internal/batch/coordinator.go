package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"audioscribe/internal/domains/transcription"
	"audioscribe/internal/export"
	"audioscribe/pkg/Logger"
)

// Recognized audio extensions, matched case-insensitively.
var audioExtensions = map[string]struct{}{
	".mp3":  {},
	".wav":  {},
	".m4a":  {},
	".flac": {},
	".aac":  {},
	".ogg":  {},
}

// Coordinator walks a directory of recordings and runs the transcription
// workflow once per audio file, sequentially. One file's failure is logged
// and never stops the run; the artifacts present in the output directory
// afterwards are the success ledger.
type Coordinator struct {
	service transcription.Service
	logger  *Logger.Logger
}

func New(service transcription.Service, logger *Logger.Logger) *Coordinator {
	return &Coordinator{service: service, logger: logger}
}

// ProcessDirectory transcribes every recognized audio file directly under
// inputDir and writes a markdown artifact per file into outputDir, creating
// it first if needed. Subdirectories and other file types are skipped. Only
// setup failures (unreadable input dir, uncreatable output dir) return an
// error.
func (c *Coordinator) ProcessDirectory(ctx context.Context, inputDir, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("failed to read input directory: %w", err)
	}

	log := c.logger.WithRun(uuid.NewString())
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := audioExtensions[strings.ToLower(filepath.Ext(entry.Name()))]; !ok {
			continue
		}
		c.processOne(ctx, log, filepath.Join(inputDir, entry.Name()), outputDir)
	}
	return nil
}

func (c *Coordinator) processOne(ctx context.Context, log *Logger.Logger, audioPath, outputDir string) {
	name := filepath.Base(audioPath)
	log.Infof("processing: %s", name)

	rec, err := c.service.ProcessFile(ctx, audioPath)
	if err != nil {
		log.Errorf("error processing %s: %v", name, err)
		return
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	out := filepath.Join(outputDir, base+"_transcript.md")
	if _, err := (export.Markdown{}).Render(rec, out); err != nil {
		log.Errorf("error exporting %s: %v", name, err)
		return
	}
	log.Infof("exported: %s", out)
}
