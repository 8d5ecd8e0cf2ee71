package api

import (
	"github.com/martinbenit/futbol/internal/service"
	"github.com/martinbenit/futbol/internal/storage"
)

// MatchHandler groups all roster- and match-related HTTP handlers.
type MatchHandler struct {
	repo      storage.Repository
	annotator service.MatchupAnnotator
}

// NewMatchHandler creates a new MatchHandler with the given repository and
// advisory annotator. The annotator may be nil when no backend is wired.
func NewMatchHandler(repo storage.Repository, annotator service.MatchupAnnotator) *MatchHandler {
	return &MatchHandler{repo: repo, annotator: annotator}
}
