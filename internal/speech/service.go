package speech

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/nikhilbhutani/groqtts/internal/observability"
	"github.com/nikhilbhutani/groqtts/internal/tts"
	"github.com/nikhilbhutani/groqtts/internal/voices"
)

// Request is one synthesis request as posted by the caller.
type Request struct {
	Text   string `json:"text"`
	Model  string `json:"model,omitempty"`
	Voice  string `json:"voice,omitempty"`
	APIKey string `json:"api_key"`
}

// LogValue keeps the credential and the text body out of logs.
func (r Request) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("model", r.Model),
		slog.String("voice", r.Voice),
		slog.Int("text_length", utf8.RuneCountInString(r.Text)),
		slog.Bool("has_api_key", r.APIKey != ""),
	)
}

type Options struct {
	DefaultModel  string
	DefaultVoice  string
	MaxTextLength int
	MaxConcurrent int

	// QueueTimeout bounds how long a request waits for a free synthesis slot.
	QueueTimeout time.Duration
	TempDir      string
}

func (o Options) withDefaults() Options {
	if o.DefaultModel == "" {
		o.DefaultModel = voices.DefaultModel
	}
	if o.DefaultVoice == "" {
		o.DefaultVoice = voices.DefaultVoice
	}
	if o.MaxTextLength <= 0 {
		o.MaxTextLength = 10000
	}
	if o.MaxConcurrent <= 0 {
		o.MaxConcurrent = 8
	}
	if o.QueueTimeout <= 0 {
		o.QueueTimeout = 30 * time.Second
	}
	if o.TempDir == "" {
		o.TempDir = os.TempDir()
	}
	return o
}

// Service validates speech requests, calls the provider with the caller's
// own key and stages the returned audio on disk.
type Service struct {
	factory tts.Factory
	opts    Options
	slots   *semaphore.Weighted
	logger  *slog.Logger
}

func NewService(factory tts.Factory, opts Options, logger *slog.Logger) *Service {
	opts = opts.withDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		factory: factory,
		opts:    opts,
		slots:   semaphore.NewWeighted(int64(opts.MaxConcurrent)),
		logger:  logger,
	}
}

// Validate checks the request in the order callers rely on: credential,
// presence of text, then its length.
func (s *Service) Validate(req Request) error {
	if req.APIKey == "" {
		return newError(MissingCredential, "API key is required", nil)
	}
	if req.Text == "" {
		return newError(MissingText, "Text is required", nil)
	}
	if n := utf8.RuneCountInString(req.Text); n > s.opts.MaxTextLength {
		return newError(TextTooLong,
			fmt.Sprintf("Text exceeds %s character limit", groupThousands(s.opts.MaxTextLength)), nil)
	}
	return nil
}

// Generate runs one synthesis. On success the caller must Cleanup the result.
func (s *Service) Generate(ctx context.Context, req Request) (result *Result, err error) {
	defer func() {
		if err != nil {
			observability.RecordOutcome(KindOf(err).String())
			return
		}
		observability.RecordOutcome("success")
	}()

	if err := s.Validate(req); err != nil {
		return nil, err
	}

	if req.Model == "" {
		req.Model = s.opts.DefaultModel
	}
	if req.Voice == "" {
		req.Voice = s.opts.DefaultVoice
	}

	provider, err := s.factory(req.APIKey)
	if err != nil {
		return nil, newError(InvalidCredential, "Invalid API key", err)
	}

	if err := s.acquire(ctx); err != nil {
		s.logger.Warn("no synthesis slot available", "request", req, "error", err)
		return nil, newError(InternalError, "timed out waiting for a synthesis slot", err)
	}
	done := observability.TrackInFlight()

	start := time.Now()
	audio, err := provider.Synthesize(ctx, tts.SynthesisRequest{
		Model:  req.Model,
		Voice:  req.Voice,
		Input:  req.Text,
		Format: "wav",
	})
	elapsed := time.Since(start)

	done()
	s.slots.Release(1)
	observability.RecordProviderCall(req.Model, elapsed)

	if err != nil {
		if errors.Is(err, tts.ErrInvalidCredential) {
			s.logger.Warn("provider rejected api key", "provider", provider.Name(), "request", req)
			return nil, newError(InvalidCredential, "Invalid API key", err)
		}
		s.logger.Error("speech synthesis failed", "provider", provider.Name(), "request", req, "error", err)
		return nil, newError(ProviderError, "Groq API error: "+err.Error(), err)
	}

	result, err = s.persist(audio.Audio)
	if err != nil {
		s.logger.Error("failed to stage audio", "error", err)
		return nil, newError(InternalError, "failed to store generated audio", err)
	}
	result.GenerationTime = elapsed
	result.ContentType = audio.ContentType
	result.Model = req.Model
	result.Voice = req.Voice

	observability.RecordAudioBytes(result.Size)
	s.logger.Info("speech generated",
		"request", req,
		"generation_time", elapsed.Seconds(),
		"size_kb", result.SizeKB(),
	)
	return result, nil
}

// acquire takes an in-flight slot, giving up after QueueTimeout or when ctx ends.
func (s *Service) acquire(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, s.opts.QueueTimeout)
	defer cancel()
	return s.slots.Acquire(waitCtx, 1)
}

// persist writes audio to a fresh file and measures it from disk.
func (s *Service) persist(audio []byte) (*Result, error) {
	path := filepath.Join(s.opts.TempDir, "speech-"+uuid.NewString()+".wav")

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	if _, err := f.Write(audio); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("stat temp file: %w", err)
	}

	return &Result{Path: path, Size: info.Size()}, nil
}

// groupThousands renders 10000 as "10,000".
func groupThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	pre := len(s) % 3
	if pre > 0 {
		out = append(out, s[:pre]...)
	}
	for i := pre; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
