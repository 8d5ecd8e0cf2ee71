package storage

import (
	"math"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/martinbenit/futbol/internal/match"
	"github.com/martinbenit/futbol/internal/skill"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetGroupPlayers(groupID string) ([]match.Player, error) {
	var players []match.Player
	if err := r.db.Where("group_id = ?", groupID).Order("name asc").Find(&players).Error; err != nil {
		return nil, err
	}
	var ratings []match.SkillRating
	if err := r.db.Where("group_id = ?", groupID).Find(&ratings).Error; err != nil {
		return nil, err
	}
	fillSkillAverages(players, ratings)
	return players, nil
}

func (r *sqliteRepository) GetPlayersByIDs(ids []string) ([]match.Player, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var players []match.Player
	if err := r.db.Where("id IN ?", ids).Find(&players).Error; err != nil {
		return nil, err
	}
	var ratings []match.SkillRating
	if err := r.db.Where("player_id IN ?", ids).Find(&ratings).Error; err != nil {
		return nil, err
	}
	fillSkillAverages(players, ratings)
	return players, nil
}

func (r *sqliteRepository) GetPlayerByID(id string) (*match.Player, error) {
	players, err := r.GetPlayersByIDs([]string{id})
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &players[0], nil
}

func (r *sqliteRepository) CreatePlayer(p *match.Player) error {
	return r.db.Create(p).Error
}

func (r *sqliteRepository) SaveRatings(ratings []match.SkillRating) error {
	if len(ratings) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}, {Name: "rater_id"}, {Name: "skill_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(&ratings).Error
}

func (r *sqliteRepository) GetGroupMatches(groupID string) ([]match.Match, error) {
	var matches []match.Match
	if err := r.db.Where("group_id = ?", groupID).Order("date desc, created_at desc").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *sqliteRepository) GetMatchByID(id string) (*match.Match, error) {
	var m match.Match
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *sqliteRepository) CreateMatch(m *match.Match, participations []match.Participation) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Model(&match.Match{}).
		Where("group_id = ? AND status = ?", m.GroupID, match.StatusUpcoming).
		Updates(map[string]interface{}{"status": match.StatusReplaced, "updated_at": time.Now()}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Create(m).Error; err != nil {
		tx.Rollback()
		return err
	}
	if len(participations) > 0 {
		if err := tx.Create(&participations).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit().Error
}

func (r *sqliteRepository) UpdateMatch(m *match.Match) error {
	return r.db.Save(m).Error
}

func (r *sqliteRepository) DeleteMatch(id string) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Where("match_id = ?", id).Delete(&match.Participation{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&match.Match{}, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// fillSkillAverages populates each player's Skills field with the mean of
// all rater scores per dimension, rounded to two decimals. Unrated
// dimensions stay at zero.
func fillSkillAverages(players []match.Player, ratings []match.SkillRating) {
	type acc struct {
		sum   float64
		count int
	}
	byPlayer := make(map[string]map[skill.ID]*acc)
	for _, rt := range ratings {
		dims, ok := byPlayer[rt.PlayerID]
		if !ok {
			dims = make(map[skill.ID]*acc)
			byPlayer[rt.PlayerID] = dims
		}
		id := skill.ID(rt.SkillID)
		a, ok := dims[id]
		if !ok {
			a = &acc{}
			dims[id] = a
		}
		a.sum += rt.Score
		a.count++
	}

	for i := range players {
		dims, ok := byPlayer[players[i].ID]
		if !ok {
			continue
		}
		avg := func(id skill.ID) float64 {
			a, ok := dims[id]
			if !ok || a.count == 0 {
				return 0
			}
			return round2(a.sum / float64(a.count))
		}
		players[i].Skills = match.SkillAverages{
			Defense:     avg(skill.Defense),
			Speed:       avg(skill.Speed),
			Creativity:  avg(skill.Creativity),
			Attack:      avg(skill.Attack),
			Goalkeeping: avg(skill.Goalkeeping),
			Sprint:      avg(skill.Sprint),
		}
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
