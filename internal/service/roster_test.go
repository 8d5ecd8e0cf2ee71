package service

import (
	"errors"
	"testing"

	"github.com/martinbenit/futbol/internal/match"
	"github.com/martinbenit/futbol/internal/skill"
)

type mockPlayerRepo struct {
	players map[string]match.Player
}

func (m *mockPlayerRepo) GetPlayersByIDs(ids []string) ([]match.Player, error) {
	var out []match.Player
	seen := map[string]bool{}
	for _, id := range ids {
		if p, ok := m.players[id]; ok && !seen[id] {
			seen[id] = true
			out = append(out, p)
		}
	}
	return out, nil
}

func testRepo() *mockPlayerRepo {
	return &mockPlayerRepo{players: map[string]match.Player{
		"p1": {ID: "p1", Name: "Martín", Scouting: 4.2, Skills: match.SkillAverages{Defense: 4, Attack: 3}},
		"p2": {ID: "p2", Name: "Dibu", IsGoalkeeper: true, Skills: match.SkillAverages{Goalkeeping: 5}},
	}}
}

func TestBuildRoster_PersistedPlayers(t *testing.T) {
	roster, err := BuildRoster(testRepo(), []RosterEntry{
		{PlayerID: "p1"},
		{PlayerID: "p2"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(roster))
	}
	if roster[0].Scouting != 4.2 || roster[0].Skills.Defense != 4 {
		t.Fatalf("stored stats not carried over: %+v", roster[0])
	}
	if !roster[1].IsGoalkeeper {
		t.Fatalf("stored goalkeeper flag lost")
	}
}

func TestBuildRoster_GuestBorrowsStats(t *testing.T) {
	roster, err := BuildRoster(testRepo(), []RosterEntry{
		{PlayerID: "p1"},
		{Name: "El Primo", IsGuest: true, SimilarTo: "p1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	guest := roster[1]
	if !guest.IsGuest || guest.Name != "El Primo" {
		t.Fatalf("guest fields wrong: %+v", guest)
	}
	if guest.ID == "" || guest.ID == "p1" {
		t.Fatalf("guest must get a fresh id, got %q", guest.ID)
	}
	if guest.Scouting != 4.2 || guest.Skills.Defense != 4 {
		t.Fatalf("guest did not borrow stats: %+v", guest)
	}
}

func TestBuildRoster_GuestWithoutReference(t *testing.T) {
	roster, err := BuildRoster(testRepo(), []RosterEntry{
		{IsGuest: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roster[0].Name != "Invitado" {
		t.Fatalf("expected placeholder name, got %q", roster[0].Name)
	}
	if roster[0].Scouting != 0 || !roster[0].Skills.IsZero() {
		t.Fatalf("guest without reference must start unrated: %+v", roster[0])
	}
}

func TestBuildRoster_InlineStatsStandAlone(t *testing.T) {
	roster, err := BuildRoster(testRepo(), []RosterEntry{
		{Name: "Nuevo", Scouting: 3.7, Skills: skill.Vector{Attack: 4}},
	})
	if err != nil {
		t.Fatalf("entries with inline stats must not need persistence: %v", err)
	}
	c := roster[0]
	if c.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if c.Scouting != 3.7 || c.Skills.Attack != 4 {
		t.Fatalf("inline stats lost: %+v", c)
	}
}

func TestBuildRoster_InlineStatsOverrideStored(t *testing.T) {
	roster, err := BuildRoster(testRepo(), []RosterEntry{
		{PlayerID: "p1", Scouting: 2.0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := roster[0]
	if c.Scouting != 2.0 {
		t.Fatalf("inline scouting must win over stored, got %v", c.Scouting)
	}
	if c.Name != "Martín" || c.Skills.Defense != 4 {
		t.Fatalf("stored fields must back-fill the rest: %+v", c)
	}
}

func TestBuildRoster_RejectsOutOfRangeScores(t *testing.T) {
	cases := []struct {
		name  string
		entry RosterEntry
	}{
		{"skill above range", RosterEntry{Name: "Nuevo", Skills: skill.Vector{Defense: 99}}},
		{"skill below range", RosterEntry{Name: "Nuevo", Skills: skill.Vector{Attack: -1}}},
		{"scouting above range", RosterEntry{Name: "Nuevo", Scouting: 5.5}},
		{"scouting below range", RosterEntry{Name: "Nuevo", Scouting: -0.1}},
		{"guest with bad skills", RosterEntry{IsGuest: true, Name: "Primo", Skills: skill.Vector{Sprint: 6}}},
	}
	for _, tc := range cases {
		if _, err := BuildRoster(testRepo(), []RosterEntry{tc.entry}); !errors.Is(err, ErrInvalidSkillScore) {
			t.Fatalf("%s: expected ErrInvalidSkillScore, got %v", tc.name, err)
		}
	}
}

func TestBuildRoster_UnknownPlayer(t *testing.T) {
	_, err := BuildRoster(testRepo(), []RosterEntry{{PlayerID: "ghost"}})
	if !errors.Is(err, ErrUnknownPlayer) {
		t.Fatalf("expected ErrUnknownPlayer, got %v", err)
	}
}

func TestBuildRoster_GoalkeeperOverride(t *testing.T) {
	roster, err := BuildRoster(testRepo(), []RosterEntry{
		{PlayerID: "p1", IsGoalkeeper: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !roster[0].IsGoalkeeper {
		t.Fatalf("request-level goalkeeper override lost")
	}
}
