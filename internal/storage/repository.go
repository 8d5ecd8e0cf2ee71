package storage

import (
	"github.com/martinbenit/futbol/internal/match"
)

type Repository interface {
	// GetGroupPlayers returns the group roster with per-skill averages
	// (mean across raters, two decimals) already populated.
	GetGroupPlayers(groupID string) ([]match.Player, error)
	GetPlayersByIDs(ids []string) ([]match.Player, error)
	GetPlayerByID(id string) (*match.Player, error)
	CreatePlayer(p *match.Player) error
	// SaveRatings upserts one rater's scores; a rater re-scoring a player
	// replaces their previous row per skill instead of adding another.
	SaveRatings(ratings []match.SkillRating) error

	GetGroupMatches(groupID string) ([]match.Match, error)
	GetMatchByID(id string) (*match.Match, error)
	// CreateMatch freezes a chosen pairing. Any previous upcoming match of
	// the same group is marked replaced, and participation rows are written
	// for the non-guest players in the same transaction.
	CreateMatch(m *match.Match, participations []match.Participation) error
	UpdateMatch(m *match.Match) error
	DeleteMatch(id string) error
}
