package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/martinbenit/futbol/internal/constants"
	"github.com/martinbenit/futbol/internal/dedupe"
	"github.com/martinbenit/futbol/internal/keys"
	"github.com/martinbenit/futbol/internal/logging"
	"github.com/martinbenit/futbol/internal/service"
)

type GenerateMatchRequest struct {
	GroupID           string                `json:"group_id"`
	Players           []service.RosterEntry `json:"players"`
	TeamSize          int                   `json:"team_size"`
	ExtraInstructions string                `json:"extra_instructions"`
}

// generateTimeout bounds one full generation round: the advisory cascade at
// worst tries every model before the deterministic engine answers.
const generateTimeout = 3 * time.Minute

// GenerateMatch produces balanced pairing options for a call-up. Identical
// concurrent requests (same roster, same team size) are collapsed into one
// generation via singleflight, so button-mashing organizers share a single
// advisory round-trip.
func (h *MatchHandler) GenerateMatch(c *gin.Context) {
	var req GenerateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if len(req.Players) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrNotEnoughPlayers})
		return
	}

	key := keys.RosterKey(entryKeys(req.Players), req.TeamSize)
	ch := dedupe.MatchupGroup.DoChan(key, func() (interface{}, error) {
		roster, err := service.BuildRoster(h.repo, req.Players)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()
		return service.GenerateMatchup(ctx, h.annotator, service.GenerateMatchupRequest{
			Players:           roster,
			TeamSize:          req.TeamSize,
			ExtraInstructions: req.ExtraInstructions,
		})
	})

	select {
	case r := <-ch:
		if r.Err != nil {
			switch r.Err {
			case service.ErrNotEnoughPlayers:
				c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrNotEnoughPlayers})
			case service.ErrUnknownPlayer:
				c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerNotFound})
			case service.ErrInvalidSkillScore:
				c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSkillScore})
			default:
				logging.Error("matchup generation failed", r.Err, logging.Fields{constants.LogFieldKey: key})
				c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedGenerate})
			}
			return
		}
		out, ok := r.Val.(*service.GeneratedMatchup)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedGenerate})
			return
		}
		logging.Info("matchup generated", logging.Fields{
			constants.LogFieldGroupID: req.GroupID,
			constants.LogFieldPlayers: len(req.Players),
			constants.LogFieldSource:  out.Source,
		})
		c.JSON(http.StatusOK, gin.H{
			"options": out.Result.Options,
			"source":  out.Source,
		})
	case <-c.Request.Context().Done():
		c.Status(http.StatusRequestTimeout)
	}
}

// entryKeys maps request entries to stable identifiers for deduplication.
// Guests have no persisted id, so their name stands in.
func entryKeys(entries []service.RosterEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		switch {
		case e.IsGuest:
			out = append(out, "guest:"+strings.ToLower(strings.TrimSpace(e.Name)))
		case e.PlayerID == "":
			out = append(out, "name:"+strings.ToLower(strings.TrimSpace(e.Name)))
		default:
			out = append(out, e.PlayerID)
		}
	}
	return out
}
