package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"audioscribe/internal/config"
	"audioscribe/internal/domains/transcription"
	"audioscribe/pkg/Logger"
)

type TranscriptionHandler struct {
	service   transcription.Service
	exportCfg config.ExportConfig
	logger    *Logger.Logger
}

func NewTranscriptionHandler(
	service transcription.Service,
	exportCfg config.ExportConfig,
	logger *Logger.Logger,
) *TranscriptionHandler {
	return &TranscriptionHandler{
		service:   service,
		exportCfg: exportCfg,
		logger:    logger,
	}
}

// Create transcribes an uploaded recording and returns the parsed record.
// When the export query parameter lists formats (comma-separated), the
// matching documents are written to the configured output directory and
// their paths returned alongside the record.
func (h *TranscriptionHandler) Create(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "audio file is required",
			Details: err.Error(),
		})
		return
	}

	tmpDir, err := os.MkdirTemp("", "audioscribe-upload-")
	if err != nil {
		h.logger.Errorf("temp dir error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}
	defer os.RemoveAll(tmpDir)

	tmpPath := filepath.Join(tmpDir, filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		h.logger.Errorf("upload save error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	rec, err := h.service.ProcessFile(c.Request.Context(), tmpPath)
	if err != nil {
		h.logger.Errorf("transcription failed: %v", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "transcription failed, try later!"})
		return
	}

	var exports []string
	if raw := c.Query("export"); raw != "" {
		exports, err = h.service.Export(rec, strings.Split(raw, ","), h.exportCfg.OutputDir)
		if err != nil {
			h.logger.Errorf("export failed: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "export failed",
				Details: err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusCreated, TranscriptionResponse{
		ID:      uuid.NewString(),
		Record:  rec,
		Exports: exports,
	})
}

// Health reports service liveness.
func (h *TranscriptionHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
