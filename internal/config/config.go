package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/martinbenit/futbol/internal/constants"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	// Ordered list of Gemini models to try for advisory generation. If
	// omitted, the built-in cascade is used.
	GeminiModels []string `json:"gemini_models"`
	// Optional prompt template for the advisory request. Supported tokens:
	// {{players}}, {{total_players}}, {{team_size}}, {{subs_clause}} and
	// {{extra_instructions}}. If omitted, a built-in prompt is used.
	MatchupPrompt          string `json:"matchup_prompt"`
	AdvisoryTimeoutSeconds int    `json:"advisory_timeout_seconds"`
	RetryDelayMS           int    `json:"retry_delay_ms"`
}

// LoadedConfig contains the server address and advisory tuning.
type LoadedConfig struct {
	ServerAddress string
	GeminiModels  []string
	// Optional matchup prompt template loaded from config.
	MatchupPromptTemplate string
	// Per-model request timeout for advisory calls.
	AdvisoryTimeout time.Duration
	// Pause inserted after a rate-limited advisory attempt before trying
	// the next model.
	RetryDelay time.Duration
}

const (
	defaultAddress         = ":8080"
	defaultAdvisoryTimeout = 30 * time.Second
	defaultRetryDelay      = time.Second
)

// Defaults returns the configuration used when no config file exists. The
// advisory backend is optional, so a missing file is not an error.
func Defaults() *LoadedConfig {
	return &LoadedConfig{
		ServerAddress:   defaultAddress,
		GeminiModels:    constants.DefaultGeminiModels,
		AdvisoryTimeout: defaultAdvisoryTimeout,
		RetryDelay:      defaultRetryDelay,
	}
}

// LoadConfig reads the configuration file at path. A missing file yields the
// defaults; a present-but-invalid file is an error so a typo does not
// silently disable the configured models.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	out := Defaults()
	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if len(rc.GeminiModels) > 0 {
		models := make([]string, 0, len(rc.GeminiModels))
		for _, m := range rc.GeminiModels {
			m = strings.TrimSpace(m)
			if m == "" {
				return nil, fmt.Errorf("config file %s: gemini_models contains an empty entry", path)
			}
			models = append(models, m)
		}
		out.GeminiModels = models
	}
	out.MatchupPromptTemplate = strings.TrimSpace(rc.MatchupPrompt)
	if rc.AdvisoryTimeoutSeconds > 0 {
		out.AdvisoryTimeout = time.Duration(rc.AdvisoryTimeoutSeconds) * time.Second
	}
	if rc.RetryDelayMS > 0 {
		out.RetryDelay = time.Duration(rc.RetryDelayMS) * time.Millisecond
	}
	return out, nil
}
