package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"audioscribe/internal/config"
	"audioscribe/internal/transcript"
	"audioscribe/pkg/Logger"
)

type fakeService struct {
	fail        bool
	exportPaths []string
	exportErr   error
	gotFormats  []string
}

func (f *fakeService) ProcessFile(_ context.Context, audioPath string) (transcript.Record, error) {
	if f.fail {
		return transcript.Record{}, errors.New("collaborator unavailable")
	}
	info := transcript.FileInfo{
		Filename:    filepath.Base(audioPath),
		FileSize:    "0.01 MB",
		ProcessedAt: time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
	}
	return transcript.Parse("[METADATA]\nTotal Speakers: 1\n[TRANSCRIPT]\nhi there", info), nil
}

func (f *fakeService) Export(_ transcript.Record, formats []string, _ string) ([]string, error) {
	f.gotFormats = formats
	return f.exportPaths, f.exportErr
}

func newTestRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewTranscriptionHandler(svc, config.ExportConfig{OutputDir: "exports"}, Logger.New(true))
	router.GET("/api/v1/health", h.Health)
	router.POST("/api/v1/transcriptions", h.Create)
	return router
}

func multipartAudioBody(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte("fake audio bytes")); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&fakeService{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
}

func TestCreateTranscription(t *testing.T) {
	router := newTestRouter(&fakeService{})
	body, contentType := multipartAudioBody(t, "audio", "standup.mp3")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID     string `json:"id"`
		Record struct {
			Metadata   map[string]string `json:"metadata"`
			Transcript string            `json:"transcript"`
		} `json:"record"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}
	if resp.ID == "" {
		t.Error("Expected a generated id")
	}
	if resp.Record.Transcript != "hi there" {
		t.Errorf("Unexpected transcript: %q", resp.Record.Transcript)
	}
	if resp.Record.Metadata["Total Speakers"] != "1" {
		t.Errorf("Unexpected metadata: %v", resp.Record.Metadata)
	}
}

func TestCreateTranscriptionWithExports(t *testing.T) {
	svc := &fakeService{exportPaths: []string{"exports/standup_transcript.md"}}
	router := newTestRouter(svc)
	body, contentType := multipartAudioBody(t, "audio", "standup.mp3")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions?export=markdown,json", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(svc.gotFormats) != 2 || svc.gotFormats[0] != "markdown" || svc.gotFormats[1] != "json" {
		t.Errorf("Unexpected formats passed to export: %v", svc.gotFormats)
	}

	var resp struct {
		Exports []string `json:"exports"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}
	if len(resp.Exports) != 1 {
		t.Errorf("Expected export paths in response, got %v", resp.Exports)
	}
}

func TestCreateTranscriptionMissingFile(t *testing.T) {
	router := newTestRouter(&fakeService{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
}

func TestCreateTranscriptionBackendFailure(t *testing.T) {
	router := newTestRouter(&fakeService{fail: true})
	body, contentType := multipartAudioBody(t, "audio", "standup.mp3")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("Expected 502, got %d", w.Code)
	}
}

func TestCreateTranscriptionExportFailure(t *testing.T) {
	svc := &fakeService{exportErr: errors.New("disk full")}
	router := newTestRouter(svc)
	body, contentType := multipartAudioBody(t, "audio", "standup.mp3")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions?export=markdown", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Export failure must be loud, got %d", w.Code)
	}
}
