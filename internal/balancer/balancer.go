// Package balancer implements the deterministic team-splitting engine. It is
// the guaranteed terminal path of matchup generation: given at least two
// players it always produces a well-shaped result, with controlled
// seed-driven variation so repeated runs offer different-but-valid splits.
package balancer

import (
	"fmt"
	"math"
	"sort"

	"github.com/martinbenit/futbol/internal/commentary"
	"github.com/martinbenit/futbol/internal/match"
	"github.com/martinbenit/futbol/internal/position"
	"github.com/martinbenit/futbol/internal/skill"
)

// Tuning constants, preserved from the reference engine; changing them is a
// product decision, not a bug fix.
const (
	// Adjacent players whose score gap is below this may trade positions
	// during the pre-sort shuffle.
	swapScoreWindow = 0.6
	// The seed-derived pseudo-probability must exceed this for a swap.
	swapProbabilityCut = 0.5
	// Seed delta between the first and second generated option.
	optionSeedOffset = 7
	// Commentary index offset for team B so both rosters get distinct lines.
	teamBCommentaryOffset = 100
)

// Balance splits players into two rosters and returns exactly two ranked
// pairing options generated from seed and seed+7. teamSize <= 0 infers
// floor(len/2); players beyond 2*teamSize become substitutes. The mapping
// seed -> outcome is fully deterministic; callers supply a wall-clock seed in
// production and fixed seeds in tests. Requires len(players) >= 2 (enforced
// upstream).
func Balance(players []match.CandidatePlayer, teamSize int, seed int64) match.BalancingResult {
	if teamSize <= 0 {
		teamSize = len(players) / 2
	}

	poolLen := int64(len(commentary.TeamNamePairs))
	nameIdx1 := absMod(seed, poolLen)
	nameIdx2 := (nameIdx1 + 1 + absMod(seed, poolLen-1)) % poolLen
	names1 := commentary.TeamNamePairs[nameIdx1]
	names2 := commentary.TeamNamePairs[nameIdx2]

	opt1 := generateOption(players, teamSize, seed, match.TeamNames{A: names1[0], B: names1[1]})
	opt2 := generateOption(players, teamSize, seed+optionSeedOffset, match.TeamNames{A: names2[0], B: names2[1]})

	opt1.Justification = fmt.Sprintf(
		"Equilibrio calculado por el motor táctico. Σ %.1f vs %.1f (Δ %.1f). Equipo A: %s. Equipo B: %s.",
		opt1.SumA, opt1.SumB, opt1.Delta, position.Analyze(opt1.TeamA).Summary(), position.Analyze(opt1.TeamB).Summary())
	opt1.Motivation = fmt.Sprintf(
		"¡Hoy no se guarda nadie! Los dos equipos están parejos: la Σ difiere en apenas %.1f puntos. El que gane, gana con el corazón. ¡A dejarlo todo en la cancha!",
		opt1.Delta)

	opt2.Justification = fmt.Sprintf(
		"Variante alternativa. Σ %.1f vs %.1f (Δ %.1f). Equipo A: %s. Equipo B: %s.",
		opt2.SumA, opt2.SumB, opt2.Delta, position.Analyze(opt2.TeamA).Summary(), position.Analyze(opt2.TeamB).Summary())
	opt2.Motivation = "¡Acá no hay equipo chico! Los dos tienen gol, marca y cerebro. El que gane, gana con el alma. ¡A la cancha!"

	return match.BalancingResult{Options: []match.PairingOption{opt1, opt2}}
}

// generateOption produces one capacity-capped split for the given seed.
func generateOption(players []match.CandidatePlayer, teamSize int, seed int64, names match.TeamNames) match.PairingOption {
	shuffled := localShuffle(players, seed)
	sortByScoreDesc(shuffled)

	// Force goalkeepers first: with two or more, one per side (seed parity
	// picks the orientation); extras rejoin the ordinary pool.
	var gks, rest []match.CandidatePlayer
	for _, p := range shuffled {
		if position.Classify(p) == position.Goalkeeper {
			gks = append(gks, p)
		} else {
			rest = append(rest, p)
		}
	}

	var teamA, teamB []match.CandidatePlayer
	switch {
	case len(gks) >= 2:
		if seed%2 == 0 {
			teamA = append(teamA, gks[0])
			teamB = append(teamB, gks[1])
		} else {
			teamA = append(teamA, gks[1])
			teamB = append(teamB, gks[0])
		}
		rest = append(rest, gks[2:]...)
	case len(gks) == 1:
		if seed%2 == 0 {
			teamA = append(teamA, gks[0])
		} else {
			teamB = append(teamB, gks[0])
		}
	}

	sortByScoreDesc(rest)
	// Occasionally reverse adjacent pairs so different near-equal players
	// cluster together across options.
	if seed%3 == 1 {
		for i := 0; i+1 < len(rest); i += 2 {
			rest[i], rest[i+1] = rest[i+1], rest[i]
		}
	}

	extra := len(players) - teamSize*2
	if extra < 0 {
		extra = 0
	}
	maxA := teamSize + (extra+1)/2
	maxB := teamSize + extra/2

	sumA := teamSum(teamA)
	sumB := teamSum(teamB)
	for _, p := range rest {
		switch {
		case len(teamA) >= maxA:
			teamB = append(teamB, p)
			sumB += p.Score()
		case len(teamB) >= maxB:
			teamA = append(teamA, p)
			sumA += p.Score()
		case sumA <= sumB:
			teamA = append(teamA, p)
			sumA += p.Score()
		default:
			teamB = append(teamB, p)
			sumB += p.Score()
		}
	}

	// Players beyond teamSize in either roster are explicit substitutes;
	// they stay in the result but leave the balance objective.
	var subs []match.CandidatePlayer
	if len(teamA) > teamSize {
		subs = append(subs, teamA[teamSize:]...)
		teamA = teamA[:teamSize]
	}
	if len(teamB) > teamSize {
		subs = append(subs, teamB[teamSize:]...)
		teamB = teamB[:teamSize]
	}

	opt := match.PairingOption{
		TeamA:         teamA,
		TeamB:         teamB,
		Substitutes:   subs,
		Names:         names,
		SumA:          skill.Round1(teamSum(teamA)),
		SumB:          skill.Round1(teamSum(teamB)),
		Contributions: make(map[string]string, len(players)),
	}
	opt.Delta = skill.Round1(math.Abs(opt.SumA - opt.SumB))

	for i, p := range teamA {
		opt.Contributions[p.ID] = commentary.Contribution(p, i+int(seed%1000))
	}
	for i, p := range teamB {
		opt.Contributions[p.ID] = commentary.Contribution(p, i+int(seed%1000)+teamBCommentaryOffset)
	}
	for i, p := range subs {
		opt.Contributions[p.ID] = commentary.Contribution(p, i+int(seed%1000)) + " (Suplente)"
	}

	opt.PizarraA = commentary.TeamBoard(teamA, names.A, names.B)
	opt.PizarraB = commentary.TeamBoard(teamB, names.B, names.A)
	return opt
}

// localShuffle copies the roster and swaps adjacent near-equal players when
// the seed-derived pseudo-probability clears the cut. Large score gaps never
// swap, so the later sort is only locally perturbed.
func localShuffle(players []match.CandidatePlayer, seed int64) []match.CandidatePlayer {
	out := make([]match.CandidatePlayer, len(players))
	copy(out, players)
	for i := 0; i+1 < len(out); i++ {
		chance := float64(absMod(seed*(int64(i)+7), 100)) / 100.0
		diff := math.Abs(out[i].Score() - out[i+1].Score())
		if chance > swapProbabilityCut && diff < swapScoreWindow {
			out[i], out[i+1] = out[i+1], out[i]
		}
	}
	return out
}

func sortByScoreDesc(players []match.CandidatePlayer) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Score() > players[j].Score()
	})
}

func teamSum(players []match.CandidatePlayer) float64 {
	sum := 0.0
	for _, p := range players {
		sum += p.Score()
	}
	return sum
}

func absMod(v, m int64) int64 {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
