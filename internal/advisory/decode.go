package advisory

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/martinbenit/futbol/internal/commentary"
	"github.com/martinbenit/futbol/internal/constants"
	"github.com/martinbenit/futbol/internal/match"
	"github.com/martinbenit/futbol/internal/skill"
)

// rawResult is the strict schema expected from the advisory backend.
// Contributions values stay raw so non-string garbage is detected per field
// instead of failing the whole response.
type rawResult struct {
	Options []rawOption `json:"options"`
}

type rawOption struct {
	TeamAIDs      []string                   `json:"team_a_ids"`
	TeamBIDs      []string                   `json:"team_b_ids"`
	Names         match.TeamNames            `json:"names"`
	SumA          float64                    `json:"sum_a"`
	SumB          float64                    `json:"sum_b"`
	Justification string                     `json:"justification"`
	Motivation    string                     `json:"motivation"`
	Contributions map[string]json.RawMessage `json:"contributions"`
	PizarraA      string                     `json:"pizarra_a"`
	PizarraB      string                     `json:"pizarra_b"`
}

// decodeResult parses the model text and rebuilds a fully-populated
// BalancingResult against the request roster. Empty or absent options are a
// structural failure; per-field problems are repaired in place.
func decodeResult(text string, req Request) (*match.BalancingResult, error) {
	raw, err := parseJSON(text)
	if err != nil {
		return nil, err
	}
	if len(raw.Options) == 0 {
		return nil, fmt.Errorf("advisory response has no options")
	}

	byID := make(map[string]match.CandidatePlayer, len(req.Players))
	for _, p := range req.Players {
		byID[p.ID] = p
	}

	out := &match.BalancingResult{Options: make([]match.PairingOption, 0, len(raw.Options))}
	for _, ro := range raw.Options {
		out.Options = append(out.Options, sanitizeOption(ro, req, byID))
	}
	return out, nil
}

// parseJSON tolerates markdown fences and leading chatter: it first tries
// the text as-is, then the widest {...} slice it contains.
func parseJSON(text string) (*rawResult, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(text, "```json", ""), "```", ""))

	var raw rawResult
	if err := json.Unmarshal([]byte(cleaned), &raw); err == nil {
		return &raw, nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("advisory response is not JSON")
	}
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("advisory response is not valid JSON: %w", err)
	}
	return &raw, nil
}

// sanitizeOption turns one raw advisory option into a complete pairing:
// - ids that are not in the input roster are dropped silently, and an id
//   listed on both teams stays only where it appeared first;
// - roster players the model left out become substitutes;
// - every placed player gets a non-empty commentary line, regenerating any
//   that are missing, empty, non-string or carry the placeholder marker;
// - missing pizarras are synthesized locally.
func sanitizeOption(ro rawOption, req Request, byID map[string]match.CandidatePlayer) match.PairingOption {
	// placed is shared across both resolve calls so an id the model lists
	// on both teams lands only on the first; the rosters stay disjoint.
	placed := make(map[string]bool, len(req.Players))
	teamA := resolve(ro.TeamAIDs, byID, placed)
	teamB := resolve(ro.TeamBIDs, byID, placed)

	var subs []match.CandidatePlayer
	for _, p := range req.Players {
		if !placed[p.ID] {
			subs = append(subs, p)
		}
	}

	names := ro.Names
	if names.A == "" {
		names.A = "Equipo A"
	}
	if names.B == "" {
		names.B = "Equipo B"
	}

	opt := match.PairingOption{
		TeamA:         teamA,
		TeamB:         teamB,
		Substitutes:   subs,
		Names:         names,
		SumA:          ro.SumA,
		SumB:          ro.SumB,
		Justification: ro.Justification,
		Motivation:    ro.Motivation,
		Contributions: make(map[string]string, len(req.Players)),
		PizarraA:      ro.PizarraA,
		PizarraB:      ro.PizarraB,
	}
	if opt.SumA == 0 && len(teamA) > 0 {
		opt.SumA = skill.Round1(sumScores(teamA))
	}
	if opt.SumB == 0 && len(teamB) > 0 {
		opt.SumB = skill.Round1(sumScores(teamB))
	}
	opt.Delta = skill.Round1(math.Abs(opt.SumA - opt.SumB))

	idx := 0
	for _, p := range append(append([]match.CandidatePlayer{}, teamA...), teamB...) {
		opt.Contributions[p.ID] = safeContribution(ro.Contributions[p.ID], p, idx)
		idx++
	}
	for _, p := range subs {
		line := safeContribution(ro.Contributions[p.ID], p, idx)
		if !strings.HasSuffix(line, "(Suplente)") {
			line += " (Suplente)"
		}
		opt.Contributions[p.ID] = line
		idx++
	}

	if opt.PizarraA == "" {
		opt.PizarraA = commentary.TeamBoard(teamA, names.A, names.B)
	}
	if opt.PizarraB == "" {
		opt.PizarraB = commentary.TeamBoard(teamB, names.B, names.A)
	}
	return opt
}

// safeContribution accepts the supplied commentary only when it is a
// non-empty string without the placeholder-failure marker; anything else is
// replaced with the deterministic generator's line.
func safeContribution(raw json.RawMessage, p match.CandidatePlayer, idx int) string {
	if len(raw) > 0 {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			s = strings.TrimSpace(s)
			if s != "" && !strings.Contains(s, constants.PlaceholderFailureMarker) {
				return s
			}
		}
	}
	return commentary.Contribution(p, idx)
}

func resolve(ids []string, byID map[string]match.CandidatePlayer, seen map[string]bool) []match.CandidatePlayer {
	out := make([]match.CandidatePlayer, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, p)
	}
	return out
}

func sumScores(players []match.CandidatePlayer) float64 {
	sum := 0.0
	for _, p := range players {
		sum += p.Score()
	}
	return sum
}
