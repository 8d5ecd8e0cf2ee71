package service

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/martinbenit/futbol/internal/match"
)

var ErrEmptyPairing = errors.New("pairing has no players")

// MatchWriter is the minimal repository interface required by SaveMatch.
type MatchWriter interface {
	CreateMatch(m *match.Match, participations []match.Participation) error
}

type SaveMatchRequest struct {
	GroupID string
	Option  match.PairingOption
	Date    time.Time
	Kickoff string
	Venue   string
}

// SaveMatch freezes the chosen pairing option as an upcoming match. Rosters
// and commentary are stored as JSON blobs so later rating edits do not
// rewrite the pairing, and participation rows are written for the non-guest
// players so per-player history stays queryable.
func SaveMatch(repo MatchWriter, req SaveMatchRequest) (*match.Match, error) {
	opt := req.Option
	if len(opt.TeamA) == 0 && len(opt.TeamB) == 0 {
		return nil, ErrEmptyPairing
	}

	teamA, err := json.Marshal(opt.TeamA)
	if err != nil {
		return nil, err
	}
	teamB, err := json.Marshal(opt.TeamB)
	if err != nil {
		return nil, err
	}
	contributions, err := json.Marshal(opt.Contributions)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	m := &match.Match{
		ID:                uuid.NewString(),
		GroupID:           req.GroupID,
		TeamAName:         opt.Names.A,
		TeamBName:         opt.Names.B,
		TeamAJSON:         string(teamA),
		TeamBJSON:         string(teamB),
		Justification:     opt.Justification,
		Motivation:        opt.Motivation,
		PizarraA:          opt.PizarraA,
		PizarraB:          opt.PizarraB,
		ContributionsJSON: string(contributions),
		Status:            match.StatusUpcoming,
		Date:              date,
		Kickoff:           req.Kickoff,
		Venue:             req.Venue,
	}

	participations := make([]match.Participation, 0, len(opt.TeamA)+len(opt.TeamB))
	appendTeam := func(players []match.CandidatePlayer, team string) {
		for _, p := range players {
			if p.IsGuest {
				continue
			}
			participations = append(participations, match.Participation{
				ID:       uuid.NewString(),
				MatchID:  m.ID,
				PlayerID: p.ID,
				Team:     team,
			})
		}
	}
	appendTeam(opt.TeamA, "A")
	appendTeam(opt.TeamB, "B")

	if err := repo.CreateMatch(m, participations); err != nil {
		return nil, err
	}
	return m, nil
}
