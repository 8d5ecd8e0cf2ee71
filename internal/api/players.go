package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/martinbenit/futbol/internal/constants"
	"github.com/martinbenit/futbol/internal/logging"
	"github.com/martinbenit/futbol/internal/match"
	"github.com/martinbenit/futbol/internal/skill"
)

// ListPlayers returns the group roster with per-skill averages populated.
func (h *MatchHandler) ListPlayers(c *gin.Context) {
	groupID := c.Query("group_id")
	if groupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrGroupIDRequired})
		return
	}
	players, err := h.repo.GetGroupPlayers(groupID)
	if err != nil {
		logging.Error("failed to fetch group players", err, logging.Fields{constants.LogFieldGroupID: groupID})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchPlayers})
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": players})
}

type CreatePlayerRequest struct {
	GroupID      string  `json:"group_id"`
	Name         string  `json:"name"`
	Scouting     float64 `json:"scouting"`
	IsGoalkeeper bool    `json:"is_goalkeeper"`
	PhotoURL     string  `json:"photo_url"`
}

// CreatePlayer adds a player to a group roster.
func (h *MatchHandler) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.GroupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrGroupIDRequired})
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerNameRequired})
		return
	}
	if req.Scouting < 0 || req.Scouting > 5 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSkillScore})
		return
	}

	p := &match.Player{
		ID:           uuid.NewString(),
		GroupID:      req.GroupID,
		Name:         name,
		Scouting:     req.Scouting,
		IsGoalkeeper: req.IsGoalkeeper,
		PhotoURL:     req.PhotoURL,
	}
	if err := h.repo.CreatePlayer(p); err != nil {
		logging.Error("failed to create player", err, logging.Fields{constants.LogFieldGroupID: req.GroupID})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreatePlayer})
		return
	}
	c.JSON(http.StatusCreated, p)
}

type SaveRatingsRequest struct {
	GroupID string             `json:"group_id"`
	RaterID string             `json:"rater_id"`
	Scores  map[string]float64 `json:"scores"`
}

// SaveRatings records one rater's six-skill scores for a player. A rater
// re-scoring the same player replaces their previous scores.
func (h *MatchHandler) SaveRatings(c *gin.Context) {
	playerID := c.Param("playerID")
	var req SaveRatingsRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Scores) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	known := make(map[string]bool, len(skill.Skills))
	for _, def := range skill.Skills {
		known[string(def.ID)] = true
	}
	for id, score := range req.Scores {
		if !known[id] {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSkillID})
			return
		}
		if score < 0 || score > 5 {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSkillScore})
			return
		}
	}

	player, err := h.repo.GetPlayerByID(playerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPlayerNotFound})
		return
	}

	ratings := make([]match.SkillRating, 0, len(req.Scores))
	for id, score := range req.Scores {
		ratings = append(ratings, match.SkillRating{
			ID:       uuid.NewString(),
			GroupID:  player.GroupID,
			PlayerID: player.ID,
			RaterID:  req.RaterID,
			SkillID:  id,
			Score:    score,
		})
	}
	if err := h.repo.SaveRatings(ratings); err != nil {
		logging.Error("failed to save ratings", err, logging.Fields{constants.LogFieldPlayerID: playerID})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveRatings})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Ratings saved"})
}

// ListSkills returns the fixed table of rated skill dimensions, in display
// order, so clients render the rating screens from the backend's table.
func ListSkills(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"skills": skill.Skills})
}
