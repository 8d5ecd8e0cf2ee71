package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/martinbenit/futbol/internal/match"
)

type mockMatchRepo struct {
	created        *match.Match
	participations []match.Participation
	matches        map[string]*match.Match
	updated        *match.Match
}

func (m *mockMatchRepo) CreateMatch(mm *match.Match, parts []match.Participation) error {
	m.created = mm
	m.participations = parts
	return nil
}

func (m *mockMatchRepo) GetMatchByID(id string) (*match.Match, error) {
	if mm, ok := m.matches[id]; ok {
		cp := *mm
		return &cp, nil
	}
	return nil, errors.New("record not found")
}

func (m *mockMatchRepo) UpdateMatch(mm *match.Match) error {
	m.updated = mm
	return nil
}

func pairing() match.PairingOption {
	return match.PairingOption{
		TeamA: []match.CandidatePlayer{
			{ID: "p1", Name: "Martín", Scouting: 4},
			{ID: "g1", Name: "El Primo", IsGuest: true},
		},
		TeamB: []match.CandidatePlayer{
			{ID: "p2", Name: "Diego", Scouting: 4},
		},
		Names:         match.TeamNames{A: "La Banda", B: "Los Pibes"},
		Contributions: map[string]string{"p1": "El Capo. Maneja todo"},
	}
}

func TestSaveMatch_FreezesRosters(t *testing.T) {
	repo := &mockMatchRepo{}
	m, err := SaveMatch(repo, SaveMatchRequest{
		GroupID: "g",
		Option:  pairing(),
		Date:    time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Kickoff: "19:00",
		Venue:   "La Canchita",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == "" || repo.created == nil {
		t.Fatalf("match not persisted")
	}
	if m.Status != match.StatusUpcoming {
		t.Fatalf("expected upcoming status, got %q", m.Status)
	}
	var teamA []match.CandidatePlayer
	if err := json.Unmarshal([]byte(m.TeamAJSON), &teamA); err != nil {
		t.Fatalf("team A blob is not valid JSON: %v", err)
	}
	if len(teamA) != 2 || teamA[0].ID != "p1" {
		t.Fatalf("team A blob wrong: %+v", teamA)
	}
	var contributions map[string]string
	if err := json.Unmarshal([]byte(m.ContributionsJSON), &contributions); err != nil {
		t.Fatalf("contributions blob is not valid JSON: %v", err)
	}
	if contributions["p1"] != "El Capo. Maneja todo" {
		t.Fatalf("contributions not frozen: %v", contributions)
	}
	if m.Venue != "La Canchita" || m.Kickoff != "19:00" {
		t.Fatalf("schedule fields lost: %+v", m)
	}
}

func TestSaveMatch_GuestsSkipParticipations(t *testing.T) {
	repo := &mockMatchRepo{}
	if _, err := SaveMatch(repo, SaveMatchRequest{GroupID: "g", Option: pairing()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.participations) != 2 {
		t.Fatalf("expected 2 participations (guest excluded), got %d", len(repo.participations))
	}
	for _, p := range repo.participations {
		if p.PlayerID == "g1" {
			t.Fatalf("guest must not get a participation row")
		}
		if p.Team != "A" && p.Team != "B" {
			t.Fatalf("bad team marker %q", p.Team)
		}
	}
}

func TestSaveMatch_EmptyPairing(t *testing.T) {
	repo := &mockMatchRepo{}
	if _, err := SaveMatch(repo, SaveMatchRequest{GroupID: "g"}); !errors.Is(err, ErrEmptyPairing) {
		t.Fatalf("expected ErrEmptyPairing, got %v", err)
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func TestUpdateMatch_ScoresCompleteMatch(t *testing.T) {
	repo := &mockMatchRepo{matches: map[string]*match.Match{
		"m1": {ID: "m1", Status: match.StatusUpcoming},
	}}
	m, err := UpdateMatch(repo, "m1", UpdateMatchRequest{
		ScoreA:  intPtr(3),
		ScoreB:  intPtr(2),
		Scorers: map[string]int{"p1": 2, "p2": 1},
		MVP:     strPtr("p1"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Status != match.StatusCompleted {
		t.Fatalf("expected completed, got %q", m.Status)
	}
	if *m.ScoreA != 3 || *m.ScoreB != 2 || m.MVP != "p1" {
		t.Fatalf("result fields wrong: %+v", m)
	}
	var scorers map[string]int
	if err := json.Unmarshal([]byte(m.ScorersJSON), &scorers); err != nil || scorers["p1"] != 2 {
		t.Fatalf("scorers blob wrong: %q (%v)", m.ScorersJSON, err)
	}
	if repo.updated == nil {
		t.Fatalf("update not persisted")
	}
}

func TestUpdateMatch_ExplicitStatusWins(t *testing.T) {
	repo := &mockMatchRepo{matches: map[string]*match.Match{
		"m1": {ID: "m1", Status: match.StatusUpcoming},
	}}
	m, err := UpdateMatch(repo, "m1", UpdateMatchRequest{
		ScoreA: intPtr(1),
		ScoreB: intPtr(1),
		Status: strPtr(match.StatusUpcoming),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Status != match.StatusUpcoming {
		t.Fatalf("explicit status overridden: %q", m.Status)
	}
}

func TestUpdateMatch_NotFound(t *testing.T) {
	repo := &mockMatchRepo{matches: map[string]*match.Match{}}
	if _, err := UpdateMatch(repo, "ghost", UpdateMatchRequest{}); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}
