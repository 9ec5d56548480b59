package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type TranscriberConfig struct {
	// Backend selects the transcription service: "gemini" or "openai".
	Backend     string `mapstructure:"backend"`
	Diarization bool   `mapstructure:"diarization"`
}

type ExportConfig struct {
	OutputDir string   `mapstructure:"output_dir"`
	Formats   []string `mapstructure:"formats"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type Settings struct {
	Gemini      GeminiConfig      `mapstructure:"gemini"`
	OpenAI      OpenAIConfig      `mapstructure:"openai"`
	Transcriber TranscriberConfig `mapstructure:"transcriber"`
	Export      ExportConfig      `mapstructure:"export"`
	Server      ServerConfig      `mapstructure:"server"`
	Env         string            `mapstructure:"env"`
	Debug       bool              `mapstructure:"debug" default:"false"`
}

func Load() (*Settings, error) {
	// Load settings from a configuration file or environment variables
	viper.SetConfigName("config_" + genEnv())
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")

	viper.SetDefault("transcriber.backend", "gemini")
	viper.SetDefault("transcriber.diarization", true)
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("export.output_dir", "transcripts")
	viper.SetDefault("export.formats", []string{"markdown"})
	viper.SetDefault("server.port", 8080)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var settings Settings
	if err := viper.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &settings, nil
}

func genEnv() string {
	env := viper.GetString("ENV")
	if env == "" {
		return "dev"
	}
	return env
}
