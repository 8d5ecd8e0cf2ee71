package balancer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/martinbenit/futbol/internal/match"
	"github.com/martinbenit/futbol/internal/position"
	"github.com/martinbenit/futbol/internal/skill"
)

func roster(scores ...float64) []match.CandidatePlayer {
	players := make([]match.CandidatePlayer, len(scores))
	for i, s := range scores {
		players[i] = match.CandidatePlayer{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Jugador %d", i), Scouting: s}
	}
	return players
}

func idSet(players []match.CandidatePlayer) map[string]bool {
	set := make(map[string]bool, len(players))
	for _, p := range players {
		set[p.ID] = true
	}
	return set
}

func checkPartition(t *testing.T, input []match.CandidatePlayer, opt match.PairingOption) {
	t.Helper()
	seen := map[string]int{}
	for _, id := range opt.PlayerIDs() {
		seen[id]++
	}
	if len(seen) != len(input) {
		t.Fatalf("partition size mismatch: %d ids for %d players", len(seen), len(input))
	}
	for _, p := range input {
		if seen[p.ID] != 1 {
			t.Fatalf("player %s appears %d times", p.ID, seen[p.ID])
		}
	}
}

func TestBalance_PartitionCompleteness(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		players := roster(4.5, 4.1, 3.9, 3.5, 3.2, 3.0, 2.8, 2.1, 1.5)
		res := Balance(players, 0, seed)
		if len(res.Options) != 2 {
			t.Fatalf("expected 2 options, got %d", len(res.Options))
		}
		for _, opt := range res.Options {
			checkPartition(t, players, opt)
		}
	}
}

func TestBalance_CapacityRespected(t *testing.T) {
	for _, n := range []int{4, 5, 6, 7, 10, 11} {
		for _, teamSize := range []int{0, 2, 3, 5} {
			scores := make([]float64, n)
			for i := range scores {
				scores[i] = 1 + float64((i*7)%40)/10
			}
			players := roster(scores...)
			for seed := int64(0); seed < 20; seed++ {
				res := Balance(players, teamSize, seed)
				effective := teamSize
				if effective <= 0 {
					effective = n / 2
				}
				for _, opt := range res.Options {
					if len(opt.TeamA) > effective || len(opt.TeamB) > effective {
						t.Fatalf("n=%d teamSize=%d seed=%d: roster over capacity (%d/%d)",
							n, teamSize, seed, len(opt.TeamA), len(opt.TeamB))
					}
				}
			}
		}
	}
}

func TestBalance_GoalkeeperPerTeam(t *testing.T) {
	players := roster(4.0, 3.8, 3.6, 3.4, 3.2, 3.0)
	players[1].IsGoalkeeper = true
	players[4].Skills = skill.Vector{Goalkeeping: 5}

	for seed := int64(0); seed < 40; seed++ {
		res := Balance(players, 0, seed)
		for _, opt := range res.Options {
			for side, team := range map[string][]match.CandidatePlayer{"A": opt.TeamA, "B": opt.TeamB} {
				found := false
				for _, p := range team {
					if position.Classify(p) == position.Goalkeeper {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("seed=%d: team %s has no goalkeeper", seed, side)
				}
			}
		}
	}
}

func TestBalance_EvenRosterScenario(t *testing.T) {
	// 4 players, all 3.0, no goalkeepers, inferred teamSize 2.
	players := roster(3.0, 3.0, 3.0, 3.0)
	res := Balance(players, 0, 42)
	for _, opt := range res.Options {
		if len(opt.TeamA) != 2 || len(opt.TeamB) != 2 {
			t.Fatalf("expected 2v2, got %dv%d", len(opt.TeamA), len(opt.TeamB))
		}
		if opt.SumA != 6.0 || opt.SumB != 6.0 {
			t.Fatalf("expected sums 6.0 vs 6.0, got %v vs %v", opt.SumA, opt.SumB)
		}
		if opt.Delta != 0.0 {
			t.Fatalf("expected delta 0.0, got %v", opt.Delta)
		}
	}
}

func TestBalance_OddRosterProducesSubstitute(t *testing.T) {
	players := roster(4.0, 3.6, 3.3, 3.0, 2.5)
	for seed := int64(0); seed < 30; seed++ {
		res := Balance(players, 0, seed)
		for _, opt := range res.Options {
			if len(opt.Substitutes) != 1 {
				t.Fatalf("seed=%d: expected exactly 1 substitute, got %d", seed, len(opt.Substitutes))
			}
			sub := opt.Substitutes[0]
			if idSet(opt.TeamA)[sub.ID] || idSet(opt.TeamB)[sub.ID] {
				t.Fatalf("seed=%d: substitute %s also appears in a team", seed, sub.ID)
			}
			line, ok := opt.Contributions[sub.ID]
			if !ok || !strings.HasSuffix(line, "(Suplente)") {
				t.Fatalf("seed=%d: substitute commentary missing suffix: %q", seed, line)
			}
			checkPartition(t, players, opt)
		}
	}
}

func TestBalance_TwoPlayersWithGoalkeeper(t *testing.T) {
	players := roster(3.5, 3.0)
	players[0].IsGoalkeeper = true
	for seed := int64(0); seed < 10; seed++ {
		res := Balance(players, 0, seed)
		for _, opt := range res.Options {
			if len(opt.TeamA) != 1 || len(opt.TeamB) != 1 {
				t.Fatalf("seed=%d: expected 1v1, got %dv%d", seed, len(opt.TeamA), len(opt.TeamB))
			}
			checkPartition(t, players, opt)
		}
	}
}

func TestBalance_OptionsDistinctForLargerRosters(t *testing.T) {
	identical := 0
	const runs = 60
	for seed := int64(0); seed < runs; seed++ {
		players := roster(4.4, 4.2, 4.0, 3.7, 3.5, 3.3, 3.1, 2.9)
		res := Balance(players, 0, seed)
		a, b := res.Options[0], res.Options[1]
		sameNames := a.Names == b.Names
		sameTeams := sameMembers(a.TeamA, b.TeamA) && sameMembers(a.TeamB, b.TeamB)
		if sameNames && sameTeams {
			identical++
		}
		if sameNames {
			t.Fatalf("seed=%d: both options picked the same name pair", seed)
		}
	}
	if identical > 0 {
		t.Fatalf("%d/%d runs produced fully identical options", identical, runs)
	}
}

func TestBalance_Deterministic(t *testing.T) {
	players := roster(4.2, 3.9, 3.6, 3.3, 3.0, 2.7)
	players[2].IsGoalkeeper = true
	first := Balance(players, 0, 99)
	second := Balance(players, 0, 99)
	for i := range first.Options {
		if !sameMembers(first.Options[i].TeamA, second.Options[i].TeamA) ||
			!sameMembers(first.Options[i].TeamB, second.Options[i].TeamB) {
			t.Fatalf("option %d differs across identical seeds", i)
		}
		for id, line := range first.Options[i].Contributions {
			if second.Options[i].Contributions[id] != line {
				t.Fatalf("commentary for %s differs across identical seeds", id)
			}
		}
	}
}

func TestBalance_JustificationMentionsSums(t *testing.T) {
	players := roster(4.0, 3.5, 3.0, 2.5)
	res := Balance(players, 0, 7)
	opt := res.Options[0]
	if !strings.Contains(opt.Justification, "Σ") || !strings.Contains(opt.Justification, "Equipo A:") {
		t.Fatalf("justification missing sums or composition: %q", opt.Justification)
	}
	if opt.PizarraA == "" || opt.PizarraB == "" {
		t.Fatalf("expected pizarras for both teams")
	}
}

func sameMembers(a, b []match.CandidatePlayer) bool {
	if len(a) != len(b) {
		return false
	}
	set := idSet(a)
	for _, p := range b {
		if !set[p.ID] {
			return false
		}
	}
	return true
}
