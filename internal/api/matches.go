package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/martinbenit/futbol/internal/constants"
	"github.com/martinbenit/futbol/internal/logging"
	"github.com/martinbenit/futbol/internal/match"
	"github.com/martinbenit/futbol/internal/service"
)

// ListMatches returns a group's matches, newest first.
func (h *MatchHandler) ListMatches(c *gin.Context) {
	groupID := c.Query("group_id")
	if groupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrGroupIDRequired})
		return
	}
	matches, err := h.repo.GetGroupMatches(groupID)
	if err != nil {
		logging.Error("failed to fetch matches", err, logging.Fields{constants.LogFieldGroupID: groupID})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatches})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

type SaveMatchRequest struct {
	GroupID string              `json:"group_id"`
	Option  match.PairingOption `json:"option"`
	Date    time.Time           `json:"date"`
	Kickoff string              `json:"kickoff"`
	Venue   string              `json:"venue"`
}

// SaveMatch freezes a chosen pairing option as the group's upcoming match.
// Any previous upcoming match is marked replaced.
func (h *MatchHandler) SaveMatch(c *gin.Context) {
	var req SaveMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.GroupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrGroupIDRequired})
		return
	}

	m, err := service.SaveMatch(h.repo, service.SaveMatchRequest{
		GroupID: req.GroupID,
		Option:  req.Option,
		Date:    req.Date,
		Kickoff: req.Kickoff,
		Venue:   req.Venue,
	})
	if err != nil {
		if err == service.ErrEmptyPairing {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
		logging.Error("failed to save match", err, logging.Fields{constants.LogFieldGroupID: req.GroupID})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveMatch})
		return
	}
	logging.Info("match saved", logging.Fields{constants.LogFieldGroupID: req.GroupID, constants.LogFieldMatchID: m.ID})
	c.JSON(http.StatusCreated, m)
}

// UpdateMatch records scores, scorers, awards and status changes.
func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	matchID := c.Param("matchID")
	var req service.UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	m, err := service.UpdateMatch(h.repo, matchID, req)
	if err != nil {
		if err == service.ErrMatchNotFound {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
			return
		}
		logging.Error("failed to update match", err, logging.Fields{constants.LogFieldMatchID: matchID})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateMatch})
		return
	}
	c.JSON(http.StatusOK, m)
}

// DeleteMatch removes a match and its participation rows.
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	matchID := c.Param("matchID")
	if _, err := h.repo.GetMatchByID(matchID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}
	if err := h.repo.DeleteMatch(matchID); err != nil {
		logging.Error("failed to delete match", err, logging.Fields{constants.LogFieldMatchID: matchID})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedDeleteMatch})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Match deleted"})
}
