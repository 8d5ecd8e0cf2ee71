package advisory

import (
	"encoding/json"
	"fmt"
	"strings"
)

// matchupPromptTemplate can be set at application startup to customize the
// advisory prompt. Supported tokens: {{players}}, {{total_players}},
// {{team_size}}, {{subs_clause}}, {{extra_instructions}}.
var matchupPromptTemplate string

// SetMatchupPromptTemplate sets a custom prompt template for matchup
// generation. Call from main after loading configuration.
func SetMatchupPromptTemplate(t string) {
	matchupPromptTemplate = strings.TrimSpace(t)
}

const defaultMatchupPrompt = `Sos un DT de barrio argentino, apasionado y con ojo táctico de potrero.
Tu misión es armar el fulbito más parejo y competitivo de todos.

HABILIDADES DE CADA JUGADOR (1 a 5):
- defense: muralla, capacidad defensiva
- speed: motor, garra y despliegue
- creativity: cerebro, visión y pase
- attack: picante, definición y gol
- goalkeeping: manos, reflejos bajo los 3 palos
- sprint: rayo, pique corto y explosión
- scouting: promedio general

JUGADORES CONVOCADOS ({{total_players}} en total, partido {{team_size}} vs {{team_size}}):
{{players}}

{{subs_clause}}

REGLAS CRÍTICAS:
1. Σ scouting de cada equipo lo más pareja posible (diferencia ideal < 0.5, máximo 1.0).
2. Variedad en cada equipo: defensa, medio y ataque bien repartidos.
3. is_guest: true usa stats de "similar_to", tratalos como normales.
4. is_goalkeeper: true VA AL ARCO obligatoriamente. Repartí un arquero por equipo.
5. Cada equipo necesita: seguridad en el arco, solidez defensiva, creatividad en medio, peligro en ataque.

GENERÁ EXACTAMENTE 2 OPCIONES DE VERSUS DIFERENTES (equipos distintos entre sí).

Para cada opción:
- NOMBRES: Estilo barrio argentino bien de potrero. Ej: "Los Mismos de Siempre", "La Pesada del Barrio", "El Rejunte Letal"
- CONTRIBUTIONS: Un objeto con { "idJugador": "Apodo personalizado. Frase descriptiva única" }
  IMPORTANTE: Cada jugador DEBE tener un apodo ÚNICO y una frase PERSONALIZADA según sus skills.
  NO repetir frases entre jugadores.
- JUSTIFICATION: Análisis táctico de por qué están parejos. Mencioná sumas y distribución defensa/medio/ataque.
- MOTIVATION: Frase motivacional de barrio + mini-análisis del versus.
- PIZARRA_A: "La Pizarra del Míster" para el equipo A, un párrafo táctico estilo crónica deportiva.
- PIZARRA_B: Lo mismo para el equipo B.

DEVOLVER ÚNICAMENTE JSON VÁLIDO:
{
  "options": [
    {
      "team_a_ids": ["id1", "id2"],
      "team_b_ids": ["id3", "id4"],
      "names": { "a": "Nombre A", "b": "Nombre B" },
      "sum_a": 25.3,
      "sum_b": 24.8,
      "justification": "...",
      "motivation": "...",
      "contributions": { "id1": "Apodo. Frase personalizada", "id2": "..." },
      "pizarra_a": "Párrafo táctico equipo A...",
      "pizarra_b": "Párrafo táctico equipo B..."
    },
    { ... segunda opción ... }
  ]
}
{{extra_instructions}}
NO incluir ` + "```json ni ```" + `. Solo el JSON puro.`

// buildPrompt renders the advisory prompt for a request, substituting roster
// data into the configured (or default) template.
func buildPrompt(req Request) string {
	playerJSON, err := json.MarshalIndent(req.Players, "", "  ")
	if err != nil {
		playerJSON = []byte("[]")
	}

	subs := len(req.Players) - req.TeamSize*2
	subsClause := ""
	if subs > 0 {
		subsClause = fmt.Sprintf("Hay %d jugador(es) que sobra(n), repartilos como suplentes. En contributions agregales \"(Suplente)\" al final.", subs)
	}

	extra := ""
	if strings.TrimSpace(req.ExtraInstructions) != "" {
		extra = fmt.Sprintf("\nINSTRUCCIONES EXTRA DEL ORGANIZADOR:\n%s\n", req.ExtraInstructions)
	}

	tpl := matchupPromptTemplate
	if tpl == "" {
		tpl = defaultMatchupPrompt
	}
	out := strings.ReplaceAll(tpl, "{{players}}", string(playerJSON))
	out = strings.ReplaceAll(out, "{{total_players}}", fmt.Sprintf("%d", len(req.Players)))
	out = strings.ReplaceAll(out, "{{team_size}}", fmt.Sprintf("%d", req.TeamSize))
	out = strings.ReplaceAll(out, "{{subs_clause}}", subsClause)
	out = strings.ReplaceAll(out, "{{extra_instructions}}", extra)
	return out
}
