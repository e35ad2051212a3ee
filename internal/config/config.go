// Package config provides startup configuration for the server. All values
// are read once at process start and passed down explicitly; nothing reads
// the environment lazily on first use.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jonathan/resume-studio/internal/llm"
)

// Environment variable names.
const (
	EnvAPIKey          = "GEMINI_API_KEY"
	EnvPort            = "PORT"
	EnvTimeoutSeconds  = "GENERATION_TIMEOUT_SECONDS"
	EnvModelStandard   = "MODEL_STANDARD"
	EnvModelLite       = "MODEL_LITE"
	defaultPort        = 8080
	defaultTimeoutSecs = 60
)

// Config holds everything the server needs at startup.
type Config struct {
	Port            int
	APIKey          string
	UpstreamTimeout time.Duration
	LLM             *llm.Config
}

// FromEnv builds a Config from the environment. The API key is required:
// its absence is a startup-fatal condition, not a per-request one.
func FromEnv() (*Config, error) {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable is required", EnvAPIKey)
	}

	port := defaultPort
	if raw := os.Getenv(EnvPort); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 65535 {
			return nil, fmt.Errorf("invalid %s value %q", EnvPort, raw)
		}
		port = parsed
	}

	timeoutSecs := defaultTimeoutSecs
	if raw := os.Getenv(EnvTimeoutSeconds); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid %s value %q", EnvTimeoutSeconds, raw)
		}
		timeoutSecs = parsed
	}

	llmConfig := llm.DefaultConfig()
	if model := os.Getenv(EnvModelStandard); model != "" {
		llmConfig = llmConfig.WithModel(llm.TierStandard, model)
	}
	if model := os.Getenv(EnvModelLite); model != "" {
		llmConfig = llmConfig.WithModel(llm.TierLite, model)
	}

	return &Config{
		Port:            port,
		APIKey:          apiKey,
		UpstreamTimeout: time.Duration(timeoutSecs) * time.Second,
		LLM:             llmConfig,
	}, nil
}
