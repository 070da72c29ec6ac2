package tts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// GroqTTSConfig holds configuration for the Groq speech backend.
type GroqTTSConfig struct {
	BaseURL string        // default: "https://api.groq.com/openai/v1"
	Timeout time.Duration // default: 60s
}

// GroqTTS synthesizes speech through Groq's OpenAI-compatible audio API.
type GroqTTS struct {
	client *openai.Client
}

// NewGroqTTS creates a client scoped to apiKey.
func NewGroqTTS(apiKey string, cfg GroqTTSConfig) (*GroqTTS, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrInvalidCredential
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	oc := openai.DefaultConfig(apiKey)
	oc.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &GroqTTS{client: openai.NewClientWithConfig(oc)}, nil
}

// NewGroqFactory returns a Factory that builds a fresh GroqTTS per key.
func NewGroqFactory(cfg GroqTTSConfig) Factory {
	return func(apiKey string) (TTSProvider, error) {
		return NewGroqTTS(apiKey, cfg)
	}
}

func (g *GroqTTS) Name() string { return "groq" }

// Synthesize requests audio for req.Input and returns the whole body.
func (g *GroqTTS) Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error) {
	format := req.Format
	if format == "" {
		format = string(openai.SpeechResponseFormatWav)
	}

	resp, err := g.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(req.Model),
		Input:          req.Input,
		Voice:          openai.SpeechVoice(req.Voice),
		ResponseFormat: openai.SpeechResponseFormat(format),
	})
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, ErrEmptyAudio
	}

	return &SynthesisResult{
		Audio:       audio,
		ContentType: contentType(format),
	}, nil
}

// classify folds authentication failures into ErrInvalidCredential and keeps
// the provider's own message for everything else.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if isAuthStatus(apiErr.HTTPStatusCode) {
			return fmt.Errorf("%w: %s", ErrInvalidCredential, apiErr.Message)
		}
		return fmt.Errorf("groq speech (status %d): %s", apiErr.HTTPStatusCode, apiErr.Message)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if isAuthStatus(reqErr.HTTPStatusCode) {
			return fmt.Errorf("%w: status %d", ErrInvalidCredential, reqErr.HTTPStatusCode)
		}
		return fmt.Errorf("groq speech (status %d): %w", reqErr.HTTPStatusCode, reqErr)
	}

	return fmt.Errorf("groq speech: %w", err)
}

func isAuthStatus(code int) bool {
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

func contentType(format string) string {
	switch format {
	case "mp3":
		return "audio/mpeg"
	case "flac":
		return "audio/flac"
	case "opus", "ogg":
		return "audio/ogg"
	default:
		return "audio/wav"
	}
}
