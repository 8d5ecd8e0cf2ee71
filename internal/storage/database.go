package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/martinbenit/futbol/internal/match"
)

func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&match.Player{}, &match.SkillRating{}, &match.Match{}, &match.Participation{})
	if err != nil {
		return nil, err
	}

	// One score per (player, rater, skill). An explicit UNIQUE index lets
	// SaveRatings upsert instead of piling up duplicate rows when a rater
	// re-scores the same player.
	if execErr := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_skill_ratings_player_rater_skill ON skill_ratings(player_id, rater_id, skill_id);").Error; execErr != nil {
		return nil, execErr
	}
	return db, nil
}
