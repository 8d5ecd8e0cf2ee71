package service

import (
	"context"
	"errors"
	"time"

	"github.com/martinbenit/futbol/internal/advisory"
	"github.com/martinbenit/futbol/internal/balancer"
	"github.com/martinbenit/futbol/internal/constants"
	"github.com/martinbenit/futbol/internal/logging"
	"github.com/martinbenit/futbol/internal/match"
)

var (
	ErrNotEnoughPlayers = errors.New(constants.ErrNotEnoughPlayers)
)

// MatchupAnnotator is the advisory surface required by GenerateMatchup.
// Using a small interface simplifies testing.
type MatchupAnnotator interface {
	Configured() bool
	Annotate(ctx context.Context, req advisory.Request) (*match.BalancingResult, error)
}

type GenerateMatchupRequest struct {
	Players           []match.CandidatePlayer
	TeamSize          int
	ExtraInstructions string
	// Seed drives the deterministic fallback. Zero means "derive from the
	// clock"; tests pass a fixed value.
	Seed int64
}

// GeneratedMatchup carries the pairing options plus which engine produced
// them, so the API can tell the organizer whether the prose is advisory.
type GeneratedMatchup struct {
	Result match.BalancingResult `json:"result"`
	Source string                `json:"source"`
}

// GenerateMatchup produces balanced pairing options for a roster. The
// advisory backend is tried first when configured; any advisory failure is
// logged and absorbed, and the deterministic engine answers instead. The
// only caller-visible error is a roster too small to split.
func GenerateMatchup(ctx context.Context, annotator MatchupAnnotator, req GenerateMatchupRequest) (*GeneratedMatchup, error) {
	if len(req.Players) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	teamSize := req.TeamSize
	if teamSize <= 0 {
		teamSize = len(req.Players) / 2
	}

	if annotator != nil && annotator.Configured() {
		result, err := annotator.Annotate(ctx, advisory.Request{
			Players:           req.Players,
			TeamSize:          teamSize,
			ExtraInstructions: req.ExtraInstructions,
		})
		if err == nil && len(result.Options) > 0 {
			return &GeneratedMatchup{Result: *result, Source: constants.SourceAdvisory}, nil
		}
		logging.Warn("advisory generation failed, using deterministic engine", err, logging.Fields{
			constants.LogFieldPlayers:  len(req.Players),
			constants.LogFieldTeamSize: teamSize,
		})
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixMilli()
	}
	result := balancer.Balance(req.Players, teamSize, seed)
	return &GeneratedMatchup{Result: result, Source: constants.SourceFallback}, nil
}
