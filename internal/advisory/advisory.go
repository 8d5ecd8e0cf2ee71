// Package advisory drives the external text-generation backend that can
// enrich a matchup with better prose than the deterministic engine. The
// backend is explicitly unreliable: every failure mode here is absorbed and
// reported as an error the orchestrator turns into a fallback, never a
// caller-visible fault.
package advisory

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/martinbenit/futbol/internal/constants"
	"github.com/martinbenit/futbol/internal/geminiclient"
	"github.com/martinbenit/futbol/internal/logging"
	"github.com/martinbenit/futbol/internal/match"
)

// Request carries one roster and its constraints to the advisory backend.
type Request struct {
	Players           []match.CandidatePlayer `json:"players"`
	TeamSize          int                     `json:"team_size"`
	ExtraInstructions string                  `json:"-"`
}

// generateFunc matches geminiclient.GenerateText; tests swap in fakes.
type generateFunc func(ctx context.Context, model, prompt string) (string, error)

// Annotator tries an ordered list of models until one returns a usable
// matchup. Attempts are sequential: a rate-limited model pauses the chain
// briefly, any other failure moves on immediately.
type Annotator struct {
	models     []string
	timeout    time.Duration
	retryDelay time.Duration
	generate   generateFunc
	sleep      func(time.Duration)
}

// NewAnnotator builds the production annotator backed by the Gemini client.
func NewAnnotator(models []string, timeout, retryDelay time.Duration) *Annotator {
	return &Annotator{
		models:     models,
		timeout:    timeout,
		retryDelay: retryDelay,
		generate:   geminiclient.GenerateText,
		sleep:      time.Sleep,
	}
}

// Configured reports whether an advisory API key is present. When false the
// orchestrator can skip straight to the deterministic engine without burning
// a timeout per model.
func (a *Annotator) Configured() bool {
	return os.Getenv(constants.EnvGoogleAIAPIKey) != ""
}

// Annotate runs the model cascade for the request. On success the returned
// result has already been validated and repaired (see sanitizeOption): every
// player resolved, every contribution non-empty, pizarras synthesized when
// the model omitted them.
func (a *Annotator) Annotate(ctx context.Context, req Request) (*match.BalancingResult, error) {
	prompt := buildPrompt(req)

	var lastErr error
	for _, model := range a.models {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		attemptCtx, cancel := context.WithTimeout(ctx, a.timeout)
		text, err := a.generate(attemptCtx, model, prompt)
		cancel()
		if err != nil {
			lastErr = err
			if geminiclient.RateLimited(err) {
				logging.Warn("advisory model rate limited, trying next", err, logging.Fields{constants.LogFieldModel: model})
				a.sleep(a.retryDelay)
			} else {
				logging.Warn("advisory model failed, trying next", err, logging.Fields{constants.LogFieldModel: model})
			}
			continue
		}

		result, err := decodeResult(text, req)
		if err != nil {
			lastErr = err
			logging.Warn("advisory model returned malformed matchup, trying next", err, logging.Fields{constants.LogFieldModel: model})
			continue
		}
		logging.Info("advisory matchup generated", logging.Fields{constants.LogFieldModel: model})
		return result, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no advisory models configured")
	}
	return nil, fmt.Errorf("all advisory models failed: %w", lastErr)
}
