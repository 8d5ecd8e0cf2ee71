package match

import (
	"time"
)

// Match status values.
const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
	StatusReplaced  = "replaced"
)

// Player is a persisted roster member of a group. The Skills field is
// derived from SkillRating rows at read time and is not stored on the row
// itself (mark it gorm:"-" so GORM ignores it for schema purposes).
type Player struct {
	ID      string `json:"id" gorm:"primaryKey"`
	GroupID string `json:"group_id" gorm:"index"`
	Name    string `json:"name"`
	// Scouting is the organizer-set overall rating. Zero means "derive it
	// from the skill ratings" (see CandidatePlayer.Score).
	Scouting     float64 `json:"scouting"`
	IsGoalkeeper bool    `json:"is_goalkeeper"`
	PhotoURL     string  `json:"photo_url,omitempty"`

	Skills SkillAverages `json:"skills" gorm:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SkillAverages mirrors skill.Vector with per-dimension means across raters,
// rounded to two decimals the way the roster screen shows them.
type SkillAverages struct {
	Defense     float64 `json:"defense"`
	Speed       float64 `json:"speed"`
	Creativity  float64 `json:"creativity"`
	Attack      float64 `json:"attack"`
	Goalkeeping float64 `json:"goalkeeping"`
	Sprint      float64 `json:"sprint"`
}

// SkillRating is one rater's score for one player on one skill dimension.
type SkillRating struct {
	ID       string  `json:"id" gorm:"primaryKey"`
	GroupID  string  `json:"group_id" gorm:"index"`
	PlayerID string  `json:"player_id" gorm:"index"`
	RaterID  string  `json:"rater_id"`
	SkillID  string  `json:"skill_id"`
	Score    float64 `json:"score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Match is a frozen pairing chosen by the organizer. Rosters are stored as
// opaque JSON blobs exactly as the generator produced them so later skill
// edits do not rewrite history.
type Match struct {
	ID        string `json:"id" gorm:"primaryKey"`
	GroupID   string `json:"group_id" gorm:"index"`
	TeamAName string `json:"team_a_name"`
	TeamBName string `json:"team_b_name"`
	TeamAJSON string `json:"team_a_json"`
	TeamBJSON string `json:"team_b_json"`

	ScoreA *int `json:"score_a"`
	ScoreB *int `json:"score_b"`

	Justification string `json:"justification"`
	Motivation    string `json:"motivation"`
	PizarraA      string `json:"pizarra_a"`
	PizarraB      string `json:"pizarra_b"`
	// ContributionsJSON is the player-id -> commentary map, frozen as JSON.
	ContributionsJSON string `json:"contributions_json"`

	// Result extras recorded after the final whistle.
	ScorersJSON string `json:"scorers_json"`
	AwardsJSON  string `json:"awards_json"`
	MVP         string `json:"mvp"`

	Status  string    `json:"status" gorm:"index"`
	Date    time.Time `json:"date"`
	Kickoff string    `json:"kickoff"`
	Venue   string    `json:"venue"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Participation links a persisted (non-guest) player to a match roster so
// per-player history survives roster-blob freezing.
type Participation struct {
	ID       string `json:"id" gorm:"primaryKey"`
	MatchID  string `json:"match_id" gorm:"index"`
	PlayerID string `json:"player_id" gorm:"index"`
	// Team is "A" or "B".
	Team string `json:"team"`

	CreatedAt time.Time `json:"created_at"`
}
