package transcription

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"audioscribe/pkg/Logger"
)

type stubBackend struct {
	response string
	err      error
	calls    int
}

func (s *stubBackend) Name() string { return "stub" }

func (s *stubBackend) Transcribe(context.Context, string) (string, error) {
	s.calls++
	return s.response, s.err
}

func writeAudioFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "standup.mp3")
	if err := os.WriteFile(path, []byte("fake audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcessFileStructured(t *testing.T) {
	backend := &stubBackend{response: "[METADATA]\nTotal Speakers: 2\n[TRANSCRIPT]\nHello world"}
	svc := New(backend, Logger.New(true))

	rec, err := svc.ProcessFile(context.Background(), writeAudioFixture(t))
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}
	if rec.FileInfo().Filename != "standup.mp3" {
		t.Errorf("Unexpected filename: %q", rec.FileInfo().Filename)
	}
	if rec.FileInfo().FileSize == "" || rec.FileInfo().ProcessedAt.IsZero() {
		t.Errorf("File info not captured: %+v", rec.FileInfo())
	}
	if rec.Body() != "Hello world" {
		t.Errorf("Unexpected body: %q", rec.Body())
	}
}

func TestProcessFileUnstructuredDegrades(t *testing.T) {
	backend := &stubBackend{response: "plain whisper text"}
	svc := New(backend, Logger.New(true))

	rec, err := svc.ProcessFile(context.Background(), writeAudioFixture(t))
	if err != nil {
		t.Fatalf("Degradation is not a failure: %v", err)
	}
	if !rec.Degraded() {
		t.Error("Expected a degraded record for unstructured text")
	}
	if rec.Body() != "plain whisper text" {
		t.Errorf("Unexpected body: %q", rec.Body())
	}
}

func TestProcessFileBackendFailure(t *testing.T) {
	backend := &stubBackend{err: errors.New("upload rejected")}
	svc := New(backend, Logger.New(true))

	if _, err := svc.ProcessFile(context.Background(), writeAudioFixture(t)); err == nil {
		t.Fatal("Expected backend failure to surface")
	}
}

func TestProcessFileEmptyResponse(t *testing.T) {
	backend := &stubBackend{response: "  \n "}
	svc := New(backend, Logger.New(true))

	_, err := svc.ProcessFile(context.Background(), writeAudioFixture(t))
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("Expected ErrEmptyResponse, got %v", err)
	}
}

func TestProcessFileMissingAudio(t *testing.T) {
	backend := &stubBackend{response: "irrelevant"}
	svc := New(backend, Logger.New(true))

	if _, err := svc.ProcessFile(context.Background(), filepath.Join(t.TempDir(), "nope.mp3")); err == nil {
		t.Fatal("Expected error for a missing audio file")
	}
	if backend.calls != 0 {
		t.Error("Backend must not be called for a missing file")
	}
}

func TestExportWritesAllFormats(t *testing.T) {
	backend := &stubBackend{response: "[METADATA]\nAudio Quality: good\n[TRANSCRIPT]\nhi"}
	svc := New(backend, Logger.New(true))

	rec, err := svc.ProcessFile(context.Background(), writeAudioFixture(t))
	if err != nil {
		t.Fatal(err)
	}

	outDir := filepath.Join(t.TempDir(), "exports")
	paths, err := svc.Export(rec, []string{"markdown", "text", "json"}, outDir)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("Expected 3 paths, got %v", paths)
	}
	for _, want := range []string{
		"standup_transcript.md",
		"standup_transcript.txt",
		"standup_transcript.json",
	} {
		if _, err := os.Stat(filepath.Join(outDir, want)); err != nil {
			t.Errorf("Expected export %s: %v", want, err)
		}
	}
}

func TestExportDefaultsToMarkdown(t *testing.T) {
	backend := &stubBackend{response: "[METADATA]\nAudio Quality: good\n[TRANSCRIPT]\nhi"}
	svc := New(backend, Logger.New(true))

	rec, err := svc.ProcessFile(context.Background(), writeAudioFixture(t))
	if err != nil {
		t.Fatal(err)
	}

	outDir := t.TempDir()
	paths, err := svc.Export(rec, nil, outDir)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(paths) != 1 || filepath.Ext(paths[0]) != ".md" {
		t.Errorf("Expected a single markdown export, got %v", paths)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	backend := &stubBackend{response: "[METADATA]\nAudio Quality: good\n[TRANSCRIPT]\nhi"}
	svc := New(backend, Logger.New(true))

	rec, err := svc.ProcessFile(context.Background(), writeAudioFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Export(rec, []string{"docx"}, t.TempDir()); err == nil {
		t.Fatal("Expected error for unknown export format")
	}
}
