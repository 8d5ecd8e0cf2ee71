package service

import (
	"encoding/json"
	"errors"

	"github.com/martinbenit/futbol/internal/match"
)

var ErrMatchNotFound = errors.New("match not found")

// MatchUpdater is the minimal repository interface required by UpdateMatch.
type MatchUpdater interface {
	GetMatchByID(id string) (*match.Match, error)
	UpdateMatch(m *match.Match) error
}

// UpdateMatchRequest carries the post-game fields. Nil pointers mean "leave
// as is"; maps replace the stored value when non-nil.
type UpdateMatchRequest struct {
	ScoreA *int `json:"score_a"`
	ScoreB *int `json:"score_b"`
	// Scorers maps player id to goals.
	Scorers map[string]int `json:"scorers"`
	// Awards maps award name to player id.
	Awards map[string]string `json:"awards"`
	MVP    *string           `json:"mvp"`
	Venue  *string           `json:"venue"`
	Status *string           `json:"status"`
}

// UpdateMatch records the result of a played match. Setting both scores
// moves an upcoming match to completed unless the request pins the status
// explicitly.
func UpdateMatch(repo MatchUpdater, matchID string, req UpdateMatchRequest) (*match.Match, error) {
	m, err := repo.GetMatchByID(matchID)
	if err != nil {
		return nil, ErrMatchNotFound
	}

	if req.ScoreA != nil {
		m.ScoreA = req.ScoreA
	}
	if req.ScoreB != nil {
		m.ScoreB = req.ScoreB
	}
	if req.Scorers != nil {
		b, err := json.Marshal(req.Scorers)
		if err != nil {
			return nil, err
		}
		m.ScorersJSON = string(b)
	}
	if req.Awards != nil {
		b, err := json.Marshal(req.Awards)
		if err != nil {
			return nil, err
		}
		m.AwardsJSON = string(b)
	}
	if req.MVP != nil {
		m.MVP = *req.MVP
	}
	if req.Venue != nil {
		m.Venue = *req.Venue
	}

	switch {
	case req.Status != nil:
		m.Status = *req.Status
	case m.ScoreA != nil && m.ScoreB != nil && m.Status == match.StatusUpcoming:
		m.Status = match.StatusCompleted
	}

	if err := repo.UpdateMatch(m); err != nil {
		return nil, err
	}
	return m, nil
}
