package position

import (
	"fmt"
	"strings"

	"github.com/martinbenit/futbol/internal/match"
)

// Role is the coarse tactical classification of a player. It is always
// recomputed from the skill vector and flags, never stored.
type Role string

const (
	Goalkeeper Role = "arquero"
	Defender   Role = "defensor"
	Midfielder Role = "mediocampista"
	Forward    Role = "delantero"
	Utility    Role = "polivalente"
)

// Classification thresholds. Empirically chosen upstream; treat changes as a
// product decision.
const (
	gkHardThreshold   = 4.0
	specialistCutoff  = 3.5
	midfielderSupport = 3.0
	defenderFloor     = 3.0
)

// Classify maps a player to exactly one role. Rules are priority-ordered and
// the first match wins: goalkeeping is resolved first because it is a hard
// per-team constraint, and defense/creativity are checked before attack so
// forward stays a high-signal residual category.
func Classify(p match.CandidatePlayer) Role {
	s := p.Skills
	switch {
	case p.IsGoalkeeper || s.Goalkeeping >= gkHardThreshold:
		return Goalkeeper
	case s.Goalkeeping >= specialistCutoff && s.Goalkeeping > s.Attack && s.Goalkeeping > s.Creativity:
		return Goalkeeper
	case s.Defense >= specialistCutoff && s.Defense > s.Attack:
		return Defender
	case s.Creativity >= specialistCutoff || (s.Speed >= specialistCutoff && s.Creativity >= midfielderSupport):
		return Midfielder
	case s.Attack >= specialistCutoff || s.Sprint >= specialistCutoff:
		return Forward
	case s.Defense >= defenderFloor:
		return Defender
	default:
		return Utility
	}
}

// Tally counts the roles present in a team.
type Tally struct {
	Goalkeepers int
	Defenders   int
	Midfielders int
	Forwards    int
	Utilities   int
}

// Analyze classifies every player of a team and returns the role counts.
func Analyze(team []match.CandidatePlayer) Tally {
	var t Tally
	for _, p := range team {
		switch Classify(p) {
		case Goalkeeper:
			t.Goalkeepers++
		case Defender:
			t.Defenders++
		case Midfielder:
			t.Midfielders++
		case Forward:
			t.Forwards++
		default:
			t.Utilities++
		}
	}
	return t
}

// Summary renders the tally as the short Spanish phrase used in
// justifications, e.g. "1 arquero, 2 defensores, 1 medio".
func (t Tally) Summary() string {
	parts := make([]string, 0, 5)
	if t.Goalkeepers > 0 {
		parts = append(parts, pluralize(t.Goalkeepers, "arquero", "arqueros"))
	}
	if t.Defenders > 0 {
		parts = append(parts, pluralize(t.Defenders, "defensor", "defensores"))
	}
	if t.Midfielders > 0 {
		parts = append(parts, pluralize(t.Midfielders, "medio", "medios"))
	}
	if t.Forwards > 0 {
		parts = append(parts, pluralize(t.Forwards, "delantero", "delanteros"))
	}
	if t.Utilities > 0 {
		parts = append(parts, pluralize(t.Utilities, "polivalente", "polivalentes"))
	}
	return strings.Join(parts, ", ")
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// ByRole splits a team into role buckets preserving input order.
func ByRole(team []match.CandidatePlayer) map[Role][]match.CandidatePlayer {
	buckets := make(map[Role][]match.CandidatePlayer)
	for _, p := range team {
		r := Classify(p)
		buckets[r] = append(buckets[r], p)
	}
	return buckets
}
