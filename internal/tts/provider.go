package tts

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCredential means the provider refused the caller's API key.
	ErrInvalidCredential = errors.New("invalid api key")
	// ErrEmptyAudio means the provider answered successfully with no audio.
	ErrEmptyAudio = errors.New("provider returned no audio")
)

// SynthesisRequest holds the parameters for text-to-speech generation.
type SynthesisRequest struct {
	Model  string
	Voice  string
	Input  string
	Format string // "wav" unless set
}

// SynthesisResult holds the generated audio and its content type.
type SynthesisResult struct {
	Audio       []byte
	ContentType string
}

// TTSProvider is the interface for text-to-speech backends.
type TTSProvider interface {
	Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error)
	Name() string
}

// Factory builds a provider bound to a single caller-supplied API key.
// Providers are never shared between keys.
type Factory func(apiKey string) (TTSProvider, error)
