package match

import (
	"github.com/martinbenit/futbol/internal/skill"
)

// DefaultScouting is assumed for players with no rating data at all.
const DefaultScouting = 3.0

// CandidatePlayer is a roster entrant for one balancing run. It is built
// fresh per request and never mutated by the engine.
type CandidatePlayer struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Scouting float64      `json:"scouting"`
	Skills   skill.Vector `json:"skills"`
	// IsGuest marks players whose stats are borrowed (see SimilarTo).
	IsGuest bool `json:"is_guest,omitempty"`
	// IsGoalkeeper is a hard override: the player goes in goal no matter
	// what the skill vector says.
	IsGoalkeeper bool   `json:"is_goalkeeper,omitempty"`
	SimilarTo    string `json:"similar_to,omitempty"`
}

// Score is the scalar used for balancing: the explicit scouting rating when
// present, otherwise the skill-vector aggregate, otherwise DefaultScouting.
func (p CandidatePlayer) Score() float64 {
	if p.Scouting > 0 {
		return p.Scouting
	}
	if agg := skill.AggregateScore(p.Skills); agg > 0 {
		return agg
	}
	return DefaultScouting
}

// TeamNames is the display-name pair for one pairing option.
type TeamNames struct {
	A string `json:"a"`
	B string `json:"b"`
}

// PairingOption is one complete two-team split. TeamA, TeamB and Substitutes
// partition the input roster; substitutes sit outside the balanced core and
// are excluded from the sums.
type PairingOption struct {
	TeamA       []CandidatePlayer `json:"team_a"`
	TeamB       []CandidatePlayer `json:"team_b"`
	Substitutes []CandidatePlayer `json:"substitutes,omitempty"`
	Names       TeamNames         `json:"names"`
	SumA        float64           `json:"sum_a"`
	SumB        float64           `json:"sum_b"`
	// Delta is the absolute difference between the sums, the balance
	// quality metric shown to the organizer.
	Delta         float64           `json:"delta"`
	Justification string            `json:"justification"`
	Motivation    string            `json:"motivation"`
	Contributions map[string]string `json:"contributions"`
	// PizarraA/B carry the long-form tactical prose per team.
	PizarraA string `json:"pizarra_a,omitempty"`
	PizarraB string `json:"pizarra_b,omitempty"`
}

// PlayerIDs returns the ids of every player referenced by the option, teams
// first, then substitutes.
func (o PairingOption) PlayerIDs() []string {
	ids := make([]string, 0, len(o.TeamA)+len(o.TeamB)+len(o.Substitutes))
	for _, p := range o.TeamA {
		ids = append(ids, p.ID)
	}
	for _, p := range o.TeamB {
		ids = append(ids, p.ID)
	}
	for _, p := range o.Substitutes {
		ids = append(ids, p.ID)
	}
	return ids
}

// BalancingResult is the uniform output of the matchup generator: an ordered
// list of alternative pairings (two under normal operation).
type BalancingResult struct {
	Options []PairingOption `json:"options"`
}
