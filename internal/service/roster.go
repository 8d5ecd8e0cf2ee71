package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/martinbenit/futbol/internal/constants"
	"github.com/martinbenit/futbol/internal/match"
	"github.com/martinbenit/futbol/internal/skill"
)

var (
	ErrUnknownPlayer     = errors.New("roster references an unknown player")
	ErrInvalidSkillScore = errors.New(constants.ErrInvalidSkillScore)
)

// PlayerRepo is the minimal repository interface required by BuildRoster.
type PlayerRepo interface {
	GetPlayersByIDs(ids []string) ([]match.Player, error)
}

// RosterEntry is one convocado in a generate-match request. It may carry its
// own stats inline, reference a persisted player by id (stored ratings fill
// whatever the entry leaves at zero), or mark a guest who borrows a named
// player's stats via SimilarTo.
type RosterEntry struct {
	PlayerID     string       `json:"id,omitempty"`
	Name         string       `json:"name,omitempty"`
	Scouting     float64      `json:"scouting,omitempty"`
	Skills       skill.Vector `json:"skills,omitempty"`
	IsGuest      bool         `json:"is_guest,omitempty"`
	SimilarTo    string       `json:"similar_to,omitempty"`
	IsGoalkeeper bool         `json:"is_goalkeeper,omitempty"`
}

// BuildRoster resolves request entries into balancing candidates. Inline
// stats win; stored ratings back-fill entries that reference a persisted
// player without carrying their own numbers. An id that resolves nowhere and
// brings no name of its own is an error, as is any inline score outside
// [0,5].
func BuildRoster(repo PlayerRepo, entries []RosterEntry) ([]match.CandidatePlayer, error) {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Scouting < 0 || e.Scouting > 5 || !e.Skills.Valid() {
			return nil, ErrInvalidSkillScore
		}
		if !e.IsGuest && e.PlayerID != "" {
			ids = append(ids, e.PlayerID)
		}
		if e.IsGuest && e.SimilarTo != "" {
			ids = append(ids, e.SimilarTo)
		}
	}
	stored, err := repo.GetPlayersByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]match.Player, len(stored))
	for _, p := range stored {
		byID[p.ID] = p
	}

	out := make([]match.CandidatePlayer, 0, len(entries))
	for _, e := range entries {
		if e.IsGuest {
			c := match.CandidatePlayer{
				ID:           uuid.NewString(),
				Name:         strings.TrimSpace(e.Name),
				Scouting:     e.Scouting,
				Skills:       e.Skills,
				IsGuest:      true,
				IsGoalkeeper: e.IsGoalkeeper,
				SimilarTo:    e.SimilarTo,
			}
			if c.Name == "" {
				c.Name = "Invitado"
			}
			if ref, ok := byID[e.SimilarTo]; ok && c.Scouting == 0 && c.Skills.IsZero() {
				c.Scouting = ref.Scouting
				c.Skills = skillVector(ref.Skills)
			}
			out = append(out, c)
			continue
		}

		c := match.CandidatePlayer{
			ID:           e.PlayerID,
			Name:         strings.TrimSpace(e.Name),
			Scouting:     e.Scouting,
			Skills:       e.Skills,
			IsGoalkeeper: e.IsGoalkeeper,
		}
		if p, ok := byID[e.PlayerID]; ok {
			if c.Name == "" {
				c.Name = p.Name
			}
			if c.Scouting == 0 {
				c.Scouting = p.Scouting
			}
			if c.Skills.IsZero() {
				c.Skills = skillVector(p.Skills)
			}
			c.IsGoalkeeper = c.IsGoalkeeper || p.IsGoalkeeper
		} else if c.Name == "" {
			return nil, ErrUnknownPlayer
		}
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		out = append(out, c)
	}
	return out, nil
}

func skillVector(s match.SkillAverages) skill.Vector {
	return skill.Vector{
		Defense:     s.Defense,
		Speed:       s.Speed,
		Creativity:  s.Creativity,
		Attack:      s.Attack,
		Goalkeeping: s.Goalkeeping,
		Sprint:      s.Sprint,
	}
}
