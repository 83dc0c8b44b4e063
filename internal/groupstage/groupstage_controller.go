package groupstage

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tamaula/leaguehub/pkg/responses"
)

type GroupStageController struct {
	repo GroupStageRepository
}

func NewGroupStageController(repo GroupStageRepository) *GroupStageController {
	return &GroupStageController{repo: repo}
}

// CreateGroupRequest names a new group inside a competition.
type CreateGroupRequest struct {
	CompetitionID uint   `json:"competition_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
}

// CreateGroup godoc
// @Summary Create a competition group
// @Tags groups
// @Accept json
// @Produce json
// @Param request body CreateGroupRequest true "Group details"
// @Security BearerAuth
// @Success 201 {object} responses.SuccessResponse
// @Router /admin/groups [post]
func (ctl *GroupStageController) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Competition id and group name are required")
		return
	}

	group, err := ctl.repo.CreateGroup(req.CompetitionID, req.Name)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Group created successfully", group)
}

// DeleteGroup godoc
// @Summary Delete a group with its assignments, standings and fixtures
// @Tags groups
// @Produce json
// @Param group_id path int true "Group ID"
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/groups/{group_id} [delete]
func (ctl *GroupStageController) DeleteGroup(c *gin.Context) {
	id, ok := pathID(c, "group_id")
	if !ok {
		return
	}
	if err := ctl.repo.DeleteGroup(id); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Group deleted successfully", nil)
}

// AssignClubRequest places a club into a group.
type AssignClubRequest struct {
	ClubID uint `json:"club_id" binding:"required"`
}

// AssignClub godoc
// @Summary Assign a club to a group
// @Tags groups
// @Accept json
// @Produce json
// @Param group_id path int true "Group ID"
// @Param request body AssignClubRequest true "Club to assign"
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/groups/{group_id}/clubs [post]
func (ctl *GroupStageController) AssignClub(c *gin.Context) {
	id, ok := pathID(c, "group_id")
	if !ok {
		return
	}
	var req AssignClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Club id is required")
		return
	}

	group, err := ctl.repo.GetGroupByID(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if group == nil {
		responses.NotFound(c, "Group")
		return
	}

	if err := ctl.repo.AssignClub(group.CompetitionID, id, req.ClubID); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Club assigned to group", nil)
}

// RemoveClub godoc
// @Summary Remove a club from a group
// @Tags groups
// @Produce json
// @Param group_id path int true "Group ID"
// @Param club_id path int true "Club ID"
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/groups/{group_id}/clubs/{club_id} [delete]
func (ctl *GroupStageController) RemoveClub(c *gin.Context) {
	groupID, ok := pathID(c, "group_id")
	if !ok {
		return
	}
	clubID, ok := pathID(c, "club_id")
	if !ok {
		return
	}
	if err := ctl.repo.RemoveClub(groupID, clubID); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Club removed from group", nil)
}

// CreateGroupMatchRequest schedules a fixture inside a group.
type CreateGroupMatchRequest struct {
	GroupID    uint   `json:"group_id" binding:"required"`
	HomeClubID uint   `json:"home_club_id" binding:"required"`
	AwayClubID uint   `json:"away_club_id" binding:"required"`
	MatchDate  string `json:"match_date" binding:"required"`
	MatchTime  string `json:"match_time"`
	Location   string `json:"location"`
}

// CreateGroupMatch godoc
// @Summary Schedule a group fixture
// @Tags groups
// @Accept json
// @Produce json
// @Param request body CreateGroupMatchRequest true "Fixture details"
// @Security BearerAuth
// @Success 201 {object} responses.SuccessResponse
// @Router /admin/group-matches [post]
func (ctl *GroupStageController) CreateGroupMatch(c *gin.Context) {
	var req CreateGroupMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Group, both clubs and a match date are required")
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

	match := GroupMatch{
		GroupID:    req.GroupID,
		HomeClubID: req.HomeClubID,
		AwayClubID: req.AwayClubID,
		MatchDate:  matchDate,
		MatchTime:  req.MatchTime,
		Location:   req.Location,
	}
	if err := ctl.repo.CreateGroupMatch(&match); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Group match scheduled successfully", match)
}

// RecordScoreRequest carries a fixture's score and resulting status.
type RecordScoreRequest struct {
	HomeScore *int             `json:"home_score" binding:"required"`
	AwayScore *int             `json:"away_score" binding:"required"`
	Status    GroupMatchStatus `json:"status" binding:"required,oneof=scheduled ongoing completed cancelled"`
}

// RecordScore godoc
// @Summary Record a group fixture score
// @Description Updates the fixture and, when it completes, folds the result
// @Description into both clubs' standings.
// @Tags groups
// @Accept json
// @Produce json
// @Param match_id path int true "Group match ID"
// @Param request body RecordScoreRequest true "Score and status"
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/group-matches/{match_id}/score [post]
func (ctl *GroupStageController) RecordScore(c *gin.Context) {
	id, ok := pathID(c, "match_id")
	if !ok {
		return
	}
	var req RecordScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Both scores and a valid status are required")
		return
	}
	if *req.HomeScore < 0 || *req.AwayScore < 0 {
		responses.BadRequest(c, "Scores cannot be negative")
		return
	}

	match, err := ctl.repo.RecordScore(id, *req.HomeScore, *req.AwayScore, req.Status)
	if err != nil {
		log.Error().Err(err).Uint("match_id", id).Msg("failed to record group match score")
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Score recorded successfully", match)
}

// Standings godoc
// @Summary Get a group's standings table
// @Tags groups
// @Produce json
// @Param group_id path int true "Group ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /groups/{group_id}/standings [get]
func (ctl *GroupStageController) Standings(c *gin.Context) {
	id, ok := pathID(c, "group_id")
	if !ok {
		return
	}
	rows, err := ctl.repo.GetStandings(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Standings retrieved successfully", rows)
}

// UpdateStandingStatusRequest marks a club eliminated or qualified.
type UpdateStandingStatusRequest struct {
	ClubID uint           `json:"club_id" binding:"required"`
	Status StandingStatus `json:"status" binding:"required,oneof=active eliminated qualified"`
}

// UpdateStandingStatus godoc
// @Summary Update a club's elimination status within a group
// @Tags groups
// @Accept json
// @Produce json
// @Param group_id path int true "Group ID"
// @Param request body UpdateStandingStatusRequest true "Club and status"
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/groups/{group_id}/status [post]
func (ctl *GroupStageController) UpdateStandingStatus(c *gin.Context) {
	id, ok := pathID(c, "group_id")
	if !ok {
		return
	}
	var req UpdateStandingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Club id and a valid status are required")
		return
	}
	if err := ctl.repo.UpdateStandingStatus(id, req.ClubID, req.Status); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Standing status updated", nil)
}

// CompetitionGroups godoc
// @Summary Get a competition's groups with standings and fixtures
// @Tags groups
// @Produce json
// @Param competition_id path int true "Competition ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /competitions/{competition_id}/groups [get]
func (ctl *GroupStageController) CompetitionGroups(c *gin.Context) {
	id, ok := pathID(c, "competition_id")
	if !ok {
		return
	}
	views, err := ctl.repo.GetGroupViews(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Groups retrieved successfully", views)
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}
