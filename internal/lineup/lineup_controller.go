package lineup

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tamaula/leaguehub/internal/middleware"
	"github.com/tamaula/leaguehub/pkg/responses"
)

type LineupController struct {
	repo LineupRepository
}

func NewLineupController(repo LineupRepository) *LineupController {
	return &LineupController{repo: repo}
}

// LineupEntryRequest is one player slot in a submitted squad list.
type LineupEntryRequest struct {
	PlayerID uint   `json:"player_id" binding:"required"`
	Position string `json:"position"`
}

// SaveLineupRequest replaces a club's squad list for a competition.
type SaveLineupRequest struct {
	CompetitionID uint                 `json:"competition_id" binding:"required"`
	Entries       []LineupEntryRequest `json:"entries" binding:"required"`
}

// Save godoc
// @Summary Replace the authenticated club's lineup for a competition
// @Tags lineups
// @Accept json
// @Produce json
// @Param request body SaveLineupRequest true "Lineup entries"
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse
// @Router /clubs/me/lineup [put]
func (ctl *LineupController) Save(c *gin.Context) {
	var req SaveLineupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Competition id and lineup entries are required")
		return
	}
	clubID := middleware.PrincipalID(c)

	lineups := make([]Lineup, 0, len(req.Entries))
	for _, entry := range req.Entries {
		lineups = append(lineups, Lineup{PlayerID: entry.PlayerID, Position: entry.Position})
	}
	if err := ctl.repo.ReplaceLineup(clubID, req.CompetitionID, lineups); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Lineup saved successfully", nil)
}

// MyLineup godoc
// @Summary Get the authenticated club's lineup for a competition
// @Tags lineups
// @Produce json
// @Param competition_id query int true "Competition ID"
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse
// @Router /clubs/me/lineup [get]
func (ctl *LineupController) MyLineup(c *gin.Context) {
	competitionID, err := strconv.ParseUint(c.Query("competition_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "competition_id query parameter is required")
		return
	}
	clubID := middleware.PrincipalID(c)

	entries, err := ctl.repo.GetForClub(clubID, uint(competitionID))
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Lineup retrieved successfully", entries)
}

// ByCompetition godoc
// @Summary Get every club's lineup for a competition
// @Tags lineups
// @Produce json
// @Param competition_id path int true "Competition ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /competitions/{competition_id}/lineups [get]
func (ctl *LineupController) ByCompetition(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("competition_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid competition_id")
		return
	}

	lineups, err := ctl.repo.GetByCompetition(uint(id))
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Lineups retrieved successfully", lineups)
}
