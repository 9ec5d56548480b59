package transcribe

import (
	"context"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"audioscribe/internal/config"
	"audioscribe/pkg/Logger"
)

// OpenAIBackend transcribes recordings through the Whisper endpoint. Whisper
// returns plain text with no section markers, so its responses land on the
// parser's fallback path.
type OpenAIBackend struct {
	client openai.Client
	model  openai.AudioModel
	logger *Logger.Logger
}

// NewOpenAI creates a new OpenAIBackend instance.
func NewOpenAI(cfg config.OpenAIConfig, logger *Logger.Logger) (*OpenAIBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is not configured")
	}

	model := openai.AudioModel(cfg.Model)
	if cfg.Model == "" {
		model = openai.AudioModelWhisper1
	}

	return &OpenAIBackend{
		client: openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  model,
		logger: logger,
	}, nil
}

func (o *OpenAIBackend) Name() string { return "openai" }

// Transcribe implements Backend.
func (o *OpenAIBackend) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	o.logger.Infof("uploading file: %s", audioPath)
	resp, err := o.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:  f,
		Model: o.model,
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcription failed: %w", err)
	}
	if resp.Text == "" {
		return "", fmt.Errorf("whisper returned an empty transcript")
	}
	o.logger.Info("transcription completed")
	return resp.Text, nil
}
