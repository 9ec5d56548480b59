package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"audioscribe/internal/config"
	"audioscribe/pkg/Logger"
)

const filePollInterval = 2 * time.Second

var audioMIMETypes = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".flac": "audio/flac",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
}

// GeminiBackend transcribes recordings through the Gemini API: upload the
// audio via the Files API, then generate content against it with the
// transcription prompt.
type GeminiBackend struct {
	client      *genai.Client
	model       string
	diarization bool
	logger      *Logger.Logger
}

// NewGemini creates a new GeminiBackend instance.
func NewGemini(cfg config.GeminiConfig, diarization bool, logger *Logger.Logger) (*GeminiBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured")
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini API client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiBackend{
		client:      client,
		model:       model,
		diarization: diarization,
		logger:      logger,
	}, nil
}

func (g *GeminiBackend) Name() string { return "gemini" }

// Transcribe implements Backend.
func (g *GeminiBackend) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	g.logger.Infof("uploading file: %s", audioPath)
	file, err := g.client.UploadFile(ctx, "", f, &genai.UploadFileOptions{
		DisplayName: filepath.Base(audioPath),
		MIMEType:    audioMIMEType(audioPath),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload audio: %w", err)
	}
	defer g.client.DeleteFile(context.Background(), file.Name)

	file, err = g.waitForFile(ctx, file)
	if err != nil {
		return "", err
	}
	g.logger.Info("file uploaded successfully, starting transcription")

	prompt := BasicPrompt
	if g.diarization {
		prompt = DetailedPrompt
	}

	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx,
		genai.Text(prompt),
		genai.FileData{URI: file.URI, MIMEType: file.MIMEType},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := collectText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini returned no text candidates")
	}
	g.logger.Info("transcription completed")
	return text, nil
}

// waitForFile polls until the uploaded file leaves the PROCESSING state.
func (g *GeminiBackend) waitForFile(ctx context.Context, file *genai.File) (*genai.File, error) {
	for file.State == genai.FileStateProcessing {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(filePollInterval):
		}
		var err error
		file, err = g.client.GetFile(ctx, file.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to poll uploaded file: %w", err)
		}
	}
	if file.State != genai.FileStateActive {
		return nil, fmt.Errorf("uploaded file is not usable: state %v", file.State)
	}
	return file, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				b.WriteString(string(txt))
			}
		}
	}
	return b.String()
}

func audioMIMEType(path string) string {
	if mt, ok := audioMIMETypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mt
	}
	return "application/octet-stream"
}
