package match

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tamaula/leaguehub/pkg/responses"
)

type MatchController struct {
	repo MatchRepository
}

func NewMatchController(repo MatchRepository) *MatchController {
	return &MatchController{repo: repo}
}

// CreateMatchRequest schedules a fixture between two distinct clubs.
type CreateMatchRequest struct {
	CompetitionID uint   `json:"competition_id" binding:"required"`
	HomeClubID    uint   `json:"home_club_id" binding:"required"`
	AwayClubID    uint   `json:"away_club_id" binding:"required"`
	MatchDate     string `json:"match_date" binding:"required"`
	MatchTime     string `json:"match_time"`
	Location      string `json:"location"`
}

// Create godoc
// @Summary Schedule a match
// @Tags matches
// @Accept json
// @Produce json
// @Param request body CreateMatchRequest true "Match details"
// @Security BearerAuth
// @Success 201 {object} responses.SuccessResponse
// @Router /admin/matches [post]
func (ctl *MatchController) Create(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Competition, both clubs and a match date are required")
		return
	}
	if req.HomeClubID == req.AwayClubID {
		responses.BadRequest(c, "A club cannot play against itself")
		return
	}
	matchDate, err := time.Parse("2006-01-02", req.MatchDate)
	if err != nil {
		responses.BadRequest(c, "match_date must be a valid date (YYYY-MM-DD)")
		return
	}

	match := Match{
		CompetitionID: req.CompetitionID,
		HomeClubID:    req.HomeClubID,
		AwayClubID:    req.AwayClubID,
		MatchDate:     matchDate,
		MatchTime:     req.MatchTime,
		Location:      req.Location,
	}
	if err := ctl.repo.CreateMatch(&match); err != nil {
		log.Error().Err(err).Msg("failed to create match")
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match scheduled successfully", match)
}

// List godoc
// @Summary List matches
// @Tags matches
// @Produce json
// @Param competition_id query int false "Filter by competition"
// @Success 200 {object} responses.SuccessResponse
// @Router /matches [get]
func (ctl *MatchController) List(c *gin.Context) {
	var competitionID uint
	if raw := c.Query("competition_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			responses.BadRequest(c, "Invalid competition_id")
			return
		}
		competitionID = uint(id)
	}

	records, err := ctl.repo.GetMatches(competitionID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Matches retrieved successfully", records)
}

// Detail godoc
// @Summary Get a match with its event log
// @Tags matches
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /matches/{match_id} [get]
func (ctl *MatchController) Detail(c *gin.Context) {
	id, ok := matchPathID(c, "match_id")
	if !ok {
		return
	}
	detail, err := ctl.repo.GetMatchDetail(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if detail == nil {
		responses.NotFound(c, "Match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match retrieved successfully", detail)
}

// UpdateMatchRequest carries a score and status update.
type UpdateMatchRequest struct {
	HomeScore *int        `json:"home_score" binding:"required"`
	AwayScore *int        `json:"away_score" binding:"required"`
	Status    MatchStatus `json:"status" binding:"required,oneof=scheduled ongoing completed cancelled"`
}

// Update godoc
// @Summary Update a match score and status
// @Tags matches
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param request body UpdateMatchRequest true "Score and status"
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/matches/{match_id} [put]
func (ctl *MatchController) Update(c *gin.Context) {
	id, ok := matchPathID(c, "match_id")
	if !ok {
		return
	}
	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Both scores and a valid status are required")
		return
	}
	if *req.HomeScore < 0 || *req.AwayScore < 0 {
		responses.BadRequest(c, "Scores cannot be negative")
		return
	}

	match, err := ctl.repo.UpdateMatch(id, *req.HomeScore, *req.AwayScore, req.Status)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match updated successfully", match)
}

// Delete godoc
// @Summary Delete a match and its events
// @Tags matches
// @Produce json
// @Param match_id path int true "Match ID"
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/matches/{match_id} [delete]
func (ctl *MatchController) Delete(c *gin.Context) {
	id, ok := matchPathID(c, "match_id")
	if !ok {
		return
	}
	if err := ctl.repo.DeleteMatch(id); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match deleted successfully", nil)
}

// AddEventRequest attributes an in-match incident to a player.
type AddEventRequest struct {
	PlayerID    uint   `json:"player_id" binding:"required"`
	EventType   string `json:"event_type" binding:"required"`
	Minute      *int   `json:"minute" binding:"required"`
	Description string `json:"description"`
}

// AddEvent godoc
// @Summary Record a match event
// @Description Records the event and updates the player's career counters
// @Description for goal, assist, yellow_card and red_card events.
// @Tags matches
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param request body AddEventRequest true "Event details"
// @Security BearerAuth
// @Success 201 {object} responses.SuccessResponse
// @Router /admin/matches/{match_id}/events [post]
func (ctl *MatchController) AddEvent(c *gin.Context) {
	id, ok := matchPathID(c, "match_id")
	if !ok {
		return
	}
	var req AddEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Player, event type and minute are required")
		return
	}

	event := MatchEvent{
		MatchID:     id,
		PlayerID:    req.PlayerID,
		EventType:   req.EventType,
		Minute:      *req.Minute,
		Description: req.Description,
	}
	if err := ctl.repo.AddEvent(&event); err != nil {
		log.Error().Err(err).Uint("match_id", id).Msg("failed to record match event")
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Event recorded successfully", event)
}

// DeleteEvent godoc
// @Summary Delete a match event
// @Description Removes the event and rolls back the counter it contributed.
// @Tags matches
// @Produce json
// @Param event_id path int true "Event ID"
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/match-events/{event_id} [delete]
func (ctl *MatchController) DeleteEvent(c *gin.Context) {
	id, ok := matchPathID(c, "event_id")
	if !ok {
		return
	}
	if err := ctl.repo.DeleteEvent(id); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Event deleted successfully", nil)
}

func matchPathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}
