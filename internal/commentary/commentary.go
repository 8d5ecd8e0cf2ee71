// Package commentary derives the human-readable texts that accompany a
// pairing: per-player nickname+phrase lines and the long-form "pizarra del
// míster" team summary. Everything here is a pure function of its inputs so
// the deterministic fallback path stays reproducible.
package commentary

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/martinbenit/futbol/internal/match"
	"github.com/martinbenit/futbol/internal/position"
)

// pick selects an element by seed; negative seeds fold onto the pool.
func pick(pool []string, seed int) string {
	if len(pool) == 0 {
		return ""
	}
	idx := seed % len(pool)
	if idx < 0 {
		idx += len(pool)
	}
	return pool[idx]
}

// contributionSeed derives the integer seed for one player's line. The
// constants (7, 13, 11) come straight from the reference engine and are kept
// for output compatibility.
func contributionSeed(name string, idx int, score float64) int {
	nameLen := utf8.RuneCountInString(name)
	if nameLen == 0 {
		nameLen = 5
	}
	return int(math.Round(float64(nameLen*7+idx*13) + score*11))
}

// Contribution builds the "<Apodo>. <Frase>" line for a player. Same
// (name, index, role, score) always gives the same string.
func Contribution(p match.CandidatePlayer, idx int) string {
	role := position.Classify(p)
	seed := contributionSeed(p.Name, idx, p.Score())

	var nicknames, phrases []string
	switch role {
	case position.Goalkeeper:
		nicknames, phrases = nicknamesGoalkeeper, phrasesGoalkeeper
	case position.Defender:
		nicknames, phrases = nicknamesDefender, phrasesDefender
	case position.Midfielder:
		nicknames, phrases = nicknamesMidfielder, phrasesMidfielder
	case position.Forward:
		nicknames, phrases = nicknamesForward, phrasesForward
	default:
		nicknames, phrases = nicknamesUtility, phrasesUtility
	}

	nickname := pick(nicknames, seed)
	phrase := pick(phrases, seed+3)
	if nickname == "" {
		nickname = "El Crack"
	}
	if phrase == "" {
		phrase = "Entrega total en la cancha"
	}
	return nickname + ". " + phrase
}

// TeamBoard composes the long-form tactical summary for one team: headline
// with the role mix, team average, one sentence per occupied role bucket and
// a fixed closing line aimed at the rival.
func TeamBoard(team []match.CandidatePlayer, teamName, rivalName string) string {
	if len(team) == 0 {
		return ""
	}
	tally := position.Analyze(team)
	buckets := position.ByRole(team)

	total := 0.0
	top := team[0]
	for _, p := range team {
		total += p.Score()
		if p.Score() > top.Score() {
			top = p
		}
	}
	avg := total / float64(len(team))

	var b strings.Builder
	fmt.Fprintf(&b, "%s se planta con %s. ", teamName, tally.Summary())
	fmt.Fprintf(&b, "Promedio del equipo: %.2f. ", avg)

	var gk *match.CandidatePlayer
	if gks := buckets[position.Goalkeeper]; len(gks) > 0 {
		gk = &gks[0]
		fmt.Fprintf(&b, "En el arco, %s garantiza seguridad bajo los tres palos. ", gk.Name)
	}
	if gk == nil || top.ID != gk.ID {
		fmt.Fprintf(&b, "La referencia es %s (★%.1f), quien marca la diferencia con su jerarquía. ", top.Name, top.Score())
	}
	if defs := buckets[position.Defender]; len(defs) > 0 {
		fmt.Fprintf(&b, "En el fondo, %s aportan marca y solidez. ", joinNames(defs))
	}
	if mids := buckets[position.Midfielder]; len(mids) > 0 {
		fmt.Fprintf(&b, "En el medio, %s manejan los hilos del juego con creatividad y despliegue. ", joinNames(mids))
	}
	if fwds := buckets[position.Forward]; len(fwds) > 0 {
		fmt.Fprintf(&b, "Arriba, %s tienen el gol y la gambeta para desequilibrar. ", joinNames(fwds))
	}
	if utils := buckets[position.Utility]; len(utils) > 0 {
		fmt.Fprintf(&b, "Como cartas todoterreno, %s aportan versatilidad y sacrificio donde haga falta. ", joinNames(utils))
	}
	fmt.Fprintf(&b, "La clave contra %s será no darles espacio en el medio y aprovechar las transiciones.", rivalName)
	return b.String()
}

func joinNames(players []match.CandidatePlayer) string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " y " + names[len(names)-1]
}
