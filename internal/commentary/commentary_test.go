package commentary

import (
	"strings"
	"testing"

	"github.com/martinbenit/futbol/internal/match"
	"github.com/martinbenit/futbol/internal/skill"
)

func TestContribution_Deterministic(t *testing.T) {
	p := match.CandidatePlayer{ID: "1", Name: "Martín", Scouting: 3.8, Skills: skill.Vector{Creativity: 4}}
	first := Contribution(p, 2)
	for i := 0; i < 10; i++ {
		if got := Contribution(p, 2); got != first {
			t.Fatalf("expected identical output on repeat call, got %q vs %q", got, first)
		}
	}
	if !strings.Contains(first, ". ") {
		t.Fatalf("expected \"<apodo>. <frase>\" shape, got %q", first)
	}
}

func TestContribution_RoleMatchesPool(t *testing.T) {
	gk := match.CandidatePlayer{ID: "1", Name: "Dibu", Skills: skill.Vector{Goalkeeping: 5}}
	line := Contribution(gk, 0)
	found := false
	for _, n := range nicknamesGoalkeeper {
		if strings.HasPrefix(line, n+".") {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected a goalkeeper nickname, got %q", line)
	}
}

func TestContribution_IndexVariesOutput(t *testing.T) {
	p := match.CandidatePlayer{ID: "1", Name: "Carlos", Scouting: 3}
	seen := map[string]bool{}
	for idx := 0; idx < 12; idx++ {
		seen[Contribution(p, idx)] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected index to vary the line, got a single value")
	}
}

func TestPick_NegativeSeedFolds(t *testing.T) {
	pool := []string{"a", "b", "c"}
	if got := pick(pool, -1); got != "c" {
		t.Fatalf("expected negative seed to fold onto pool, got %q", got)
	}
}

func TestTeamBoard_Composition(t *testing.T) {
	team := []match.CandidatePlayer{
		{ID: "1", Name: "Dibu", Scouting: 4, Skills: skill.Vector{Goalkeeping: 5}},
		{ID: "2", Name: "Cuti", Scouting: 4.5, Skills: skill.Vector{Defense: 4.5}},
		{ID: "3", Name: "Enzo", Scouting: 4, Skills: skill.Vector{Creativity: 4}},
		{ID: "4", Name: "Julián", Scouting: 4.2, Skills: skill.Vector{Attack: 4.2}},
	}
	board := TeamBoard(team, "La Banda del Gol", "Los Troncos FC")
	for _, want := range []string{
		"La Banda del Gol se planta con",
		"En el arco, Dibu",
		"La referencia es Cuti",
		"En el fondo, Cuti",
		"En el medio, Enzo",
		"Arriba, Julián",
		"La clave contra Los Troncos FC",
	} {
		if !strings.Contains(board, want) {
			t.Fatalf("board missing %q:\n%s", want, board)
		}
	}
}

func TestTeamBoard_EmptyTeam(t *testing.T) {
	if got := TeamBoard(nil, "A", "B"); got != "" {
		t.Fatalf("expected empty board for empty team, got %q", got)
	}
}

func TestTeamNamePairs_Distinct(t *testing.T) {
	for i, pair := range TeamNamePairs {
		if pair[0] == pair[1] {
			t.Fatalf("pair %d has identical names", i)
		}
	}
}
