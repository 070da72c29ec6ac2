package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	TTS     TTSConfig
	Log     LogConfig
	Metrics MetricsConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
	MaxBodyBytes   int64
}

// TTSConfig holds provider settings. There is deliberately no API key here:
// every request carries its own.
type TTSConfig struct {
	BaseURL         string
	DefaultModel    string
	DefaultVoice    string
	MaxTextLength   int
	MaxConcurrent   int
	QueueTimeout    time.Duration
	ProviderTimeout time.Duration
	TempDir         string
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json or text
}

type MetricsConfig struct {
	Enabled bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := getEnvInt("SERVER_PORT", 5000)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	maxBody, err := getEnvInt("SERVER_MAX_BODY_BYTES", 1<<20)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_MAX_BODY_BYTES: %w", err)
	}

	maxText, err := getEnvInt("TTS_MAX_TEXT_LENGTH", 10000)
	if err != nil {
		return nil, fmt.Errorf("invalid TTS_MAX_TEXT_LENGTH: %w", err)
	}

	maxConcurrent, err := getEnvInt("TTS_MAX_CONCURRENT", 8)
	if err != nil {
		return nil, fmt.Errorf("invalid TTS_MAX_CONCURRENT: %w", err)
	}

	timeout, err := getEnvDuration("TTS_PROVIDER_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid TTS_PROVIDER_TIMEOUT: %w", err)
	}

	queueTimeout, err := getEnvDuration("TTS_QUEUE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid TTS_QUEUE_TIMEOUT: %w", err)
	}

	metricsEnabled, err := getEnvBool("METRICS_ENABLED", true)
	if err != nil {
		return nil, fmt.Errorf("invalid METRICS_ENABLED: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           port,
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
			MaxBodyBytes:   int64(maxBody),
		},
		TTS: TTSConfig{
			BaseURL:         getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			DefaultModel:    getEnv("TTS_DEFAULT_MODEL", "playai-tts"),
			DefaultVoice:    getEnv("TTS_DEFAULT_VOICE", "Fritz-PlayAI"),
			MaxTextLength:   maxText,
			MaxConcurrent:   maxConcurrent,
			QueueTimeout:    queueTimeout,
			ProviderTimeout: timeout,
			TempDir:         getEnv("TTS_TEMP_DIR", os.TempDir()),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Metrics: MetricsConfig{
			Enabled: metricsEnabled,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) Validate() error {
	var problems []string
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, "SERVER_PORT must be between 1 and 65535")
	}
	if c.Server.MaxBodyBytes < 1 {
		problems = append(problems, "SERVER_MAX_BODY_BYTES must be positive")
	}
	if c.TTS.BaseURL == "" {
		problems = append(problems, "GROQ_BASE_URL must not be empty")
	}
	if c.TTS.MaxTextLength < 1 {
		problems = append(problems, "TTS_MAX_TEXT_LENGTH must be at least 1")
	}
	if c.TTS.MaxConcurrent < 1 {
		problems = append(problems, "TTS_MAX_CONCURRENT must be at least 1")
	}
	if c.TTS.QueueTimeout <= 0 {
		problems = append(problems, "TTS_QUEUE_TIMEOUT must be positive")
	}
	if c.TTS.ProviderTimeout <= 0 {
		problems = append(problems, "TTS_PROVIDER_TIMEOUT must be positive")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, "LOG_LEVEL must be one of: debug, info, warn, error")
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		problems = append(problems, "LOG_FORMAT must be one of: json, text")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseBool(v)
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return time.ParseDuration(v)
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
