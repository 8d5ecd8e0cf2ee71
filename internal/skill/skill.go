package skill

import "math"

// ID identifies one of the six rated skill dimensions.
type ID string

const (
	Defense     ID = "defense"
	Speed       ID = "speed"
	Creativity  ID = "creativity"
	Attack      ID = "attack"
	Goalkeeping ID = "goalkeeping"
	Sprint      ID = "sprint"
)

// Def describes a skill dimension as shown to raters. The Instruction text
// is the question presented when scoring players (1..5).
type Def struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"desc"`
	Instruction string `json:"instruction"`
}

// Skills is the fixed table of rated dimensions. Order matters for display.
var Skills = []Def{
	{ID: Defense, Name: "LA MURALLA", Emoji: "🛡️", Description: "Defensa", Instruction: "Puntúa la habilidad defensiva de cada jugador (1 = Un colador, 5 = Muralla tipo \"Cuti\")"},
	{ID: Speed, Name: "EL MOTOR", Emoji: "⚡", Description: "Aguerrido / Físico", Instruction: "Puntúa la garra y el despliegue (1 = Juega parado, 5 = Un tractor, corre todo)"},
	{ID: Creativity, Name: "EL CEREBRO", Emoji: "🧠", Description: "Creatividad / Pase", Instruction: "Puntúa la claridad y la visión de juego (1 = La revienta, 5 = Pone pases tipo \"El Bocha\")"},
	{ID: Attack, Name: "EL PICANTE", Emoji: "🔥", Description: "Ataque / Definición", Instruction: "Puntúa la peligrosidad en ataque (1 = Le erra al arco, 5 = La clava en el ángulo)"},
	{ID: Goalkeeping, Name: "VOY AL ARCO", Emoji: "🧤", Description: "Arquero", Instruction: "Puntúa qué tan bien ataja cada uno (1 = Manos de manteca, 5 = Nivel \"Dibu\")"},
	{ID: Sprint, Name: "EL RAYO", Emoji: "💨", Description: "Velocidad Pura", Instruction: "Puntúa la velocidad final del jugador (el pique corto, la explosión)"},
}

// Vector holds one score per dimension. Zero means unrated.
type Vector struct {
	Defense     float64 `json:"defense"`
	Speed       float64 `json:"speed"`
	Creativity  float64 `json:"creativity"`
	Attack      float64 `json:"attack"`
	Goalkeeping float64 `json:"goalkeeping"`
	Sprint      float64 `json:"sprint"`
}

// Empty returns a vector with every dimension unrated.
func Empty() Vector { return Vector{} }

// Values returns the scores in table order.
func (v Vector) Values() []float64 {
	return []float64{v.Defense, v.Speed, v.Creativity, v.Attack, v.Goalkeeping, v.Sprint}
}

// Get returns the score for a dimension (0 for an unknown id).
func (v Vector) Get(id ID) float64 {
	switch id {
	case Defense:
		return v.Defense
	case Speed:
		return v.Speed
	case Creativity:
		return v.Creativity
	case Attack:
		return v.Attack
	case Goalkeeping:
		return v.Goalkeeping
	case Sprint:
		return v.Sprint
	}
	return 0
}

// Set assigns the score for a dimension. Unknown ids are ignored.
func (v *Vector) Set(id ID, score float64) {
	switch id {
	case Defense:
		v.Defense = score
	case Speed:
		v.Speed = score
	case Creativity:
		v.Creativity = score
	case Attack:
		v.Attack = score
	case Goalkeeping:
		v.Goalkeeping = score
	case Sprint:
		v.Sprint = score
	}
}

// IsZero reports whether every dimension is unrated.
func (v Vector) IsZero() bool { return v == Vector{} }

// Valid reports whether every score lies in [0,5].
func (v Vector) Valid() bool {
	for _, s := range v.Values() {
		if s < 0 || s > 5 {
			return false
		}
	}
	return true
}

// AggregateScore is the mean of the dimensions with a score above zero, so
// players with sparse ratings are not dragged down by unrated dimensions.
// Returns 0 when nothing is rated. Unrounded; use Round1 for display.
func AggregateScore(v Vector) float64 {
	sum := 0.0
	n := 0
	for _, s := range v.Values() {
		if s > 0 {
			sum += s
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Round1 rounds a score to one decimal place for display.
func Round1(f float64) float64 { return math.Round(f*10) / 10 }
