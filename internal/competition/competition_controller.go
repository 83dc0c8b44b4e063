package competition

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tamaula/leaguehub/internal/middleware"
	"github.com/tamaula/leaguehub/pkg/apperr"
	"github.com/tamaula/leaguehub/pkg/responses"
)

type CompetitionController struct {
	repo CompetitionRepository
}

func NewCompetitionController(repo CompetitionRepository) *CompetitionController {
	return &CompetitionController{repo: repo}
}

// CreateCompetitionRequest is the payload for creating a competition.
type CreateCompetitionRequest struct {
	Name                 string `json:"name" binding:"required"`
	Description          string `json:"description"`
	StartDate            string `json:"start_date" binding:"required"`
	EndDate              string `json:"end_date" binding:"required"`
	RegistrationDeadline string `json:"registration_deadline"`
}

// Create godoc
// @Summary Create a competition
// @Tags competitions
// @Accept json
// @Produce json
// @Param request body CreateCompetitionRequest true "Competition details"
// @Security BearerAuth
// @Success 201 {object} responses.SuccessResponse
// @Router /admin/competitions [post]
func (ctl *CompetitionController) Create(c *gin.Context) {
	var req CreateCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload")
		return
	}

	var v apperr.Validation
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		v.Add("start_date", "must be a valid date (YYYY-MM-DD)")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		v.Add("end_date", "must be a valid date (YYYY-MM-DD)")
	} else if !start.IsZero() && end.Before(start) {
		v.Add("end_date", "must not be before the start date")
	}
	var deadline time.Time
	if req.RegistrationDeadline != "" {
		deadline, err = time.Parse("2006-01-02", req.RegistrationDeadline)
		if err != nil {
			v.Add("registration_deadline", "must be a valid date (YYYY-MM-DD)")
		}
	} else {
		deadline = start
	}
	if err := v.Err(); err != nil {
		responses.FromError(c, err)
		return
	}

	existing, err := ctl.repo.GetCompetitionByName(req.Name)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if existing != nil {
		responses.FromError(c, apperr.Duplicate("competition name"))
		return
	}

	comp := Competition{
		Name:                 req.Name,
		Description:          req.Description,
		StartDate:            start,
		EndDate:              end,
		RegistrationDeadline: deadline,
		IsActive:             true,
	}
	if err := ctl.repo.CreateCompetition(&comp); err != nil {
		log.Error().Err(err).Msg("failed to create competition")
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Competition created successfully", comp)
}

// UpdateCompetitionRequest carries the editable competition fields; absent
// fields keep their stored values.
type UpdateCompetitionRequest struct {
	Name                 string  `json:"name"`
	Description          *string `json:"description"`
	StartDate            string  `json:"start_date"`
	EndDate              string  `json:"end_date"`
	RegistrationDeadline string  `json:"registration_deadline"`
	IsActive             *bool   `json:"is_active"`
}

// Update godoc
// @Summary Update a competition
// @Tags competitions
// @Accept json
// @Produce json
// @Param competition_id path int true "Competition ID"
// @Param request body UpdateCompetitionRequest true "Fields to change"
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/competitions/{competition_id} [put]
func (ctl *CompetitionController) Update(c *gin.Context) {
	id, ok := paramID(c, "competition_id")
	if !ok {
		return
	}
	var req UpdateCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload")
		return
	}

	comp, err := ctl.repo.GetCompetitionByID(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if comp == nil {
		responses.NotFound(c, "Competition")
		return
	}

	if req.Name != "" && req.Name != comp.Name {
		existing, err := ctl.repo.GetCompetitionByName(req.Name)
		if err != nil {
			responses.FromError(c, err)
			return
		}
		if existing != nil {
			responses.FromError(c, apperr.Duplicate("competition name"))
			return
		}
		comp.Name = req.Name
	}
	if req.Description != nil {
		comp.Description = *req.Description
	}

	var v apperr.Validation
	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			v.Add("start_date", "must be a valid date (YYYY-MM-DD)")
		} else {
			comp.StartDate = start
		}
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			v.Add("end_date", "must be a valid date (YYYY-MM-DD)")
		} else {
			comp.EndDate = end
		}
	}
	if req.RegistrationDeadline != "" {
		deadline, err := time.Parse("2006-01-02", req.RegistrationDeadline)
		if err != nil {
			v.Add("registration_deadline", "must be a valid date (YYYY-MM-DD)")
		} else {
			comp.RegistrationDeadline = deadline
		}
	}
	if comp.EndDate.Before(comp.StartDate) {
		v.Add("end_date", "must not be before the start date")
	}
	if err := v.Err(); err != nil {
		responses.FromError(c, err)
		return
	}

	if req.IsActive != nil {
		comp.IsActive = *req.IsActive
	}

	if err := ctl.repo.UpdateCompetition(comp); err != nil {
		log.Error().Err(err).Uint("competition_id", id).Msg("failed to update competition")
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Competition updated successfully", comp)
}

// List godoc
// @Summary List competitions
// @Tags competitions
// @Produce json
// @Param all query bool false "Include inactive competitions"
// @Success 200 {object} responses.SuccessResponse
// @Router /competitions [get]
func (ctl *CompetitionController) List(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	comps, err := ctl.repo.GetCompetitions(activeOnly)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Competitions retrieved successfully", comps)
}

// Get godoc
// @Summary Get a competition by id
// @Tags competitions
// @Produce json
// @Param competition_id path int true "Competition ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /competitions/{competition_id} [get]
func (ctl *CompetitionController) Get(c *gin.Context) {
	id, ok := paramID(c, "competition_id")
	if !ok {
		return
	}
	comp, err := ctl.repo.GetCompetitionByID(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if comp == nil {
		responses.NotFound(c, "Competition")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Competition retrieved successfully", comp)
}

// RegisterMyClub godoc
// @Summary Register the authenticated club for a competition
// @Tags competitions
// @Produce json
// @Param competition_id path int true "Competition ID"
// @Security BearerAuth
// @Success 201 {object} responses.SuccessResponse
// @Router /competitions/{competition_id}/register [post]
func (ctl *CompetitionController) RegisterMyClub(c *gin.Context) {
	id, ok := paramID(c, "competition_id")
	if !ok {
		return
	}
	clubID := middleware.PrincipalID(c)

	reg, err := ctl.repo.RegisterClub(clubID, id)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Registration submitted. Awaiting admin approval.", reg)
}

// MyRegistrations godoc
// @Summary List the authenticated club's competition registrations
// @Tags competitions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse
// @Router /clubs/me/registrations [get]
func (ctl *CompetitionController) MyRegistrations(c *gin.Context) {
	clubID := middleware.PrincipalID(c)
	records, err := ctl.repo.GetRegistrationsForClub(clubID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Registrations retrieved successfully", records)
}

// ListRegistrations godoc
// @Summary List competition registrations
// @Tags competitions
// @Produce json
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/registrations [get]
func (ctl *CompetitionController) ListRegistrations(c *gin.Context) {
	status := RegistrationStatus(c.Query("status"))
	records, err := ctl.repo.GetRegistrationRecords(status)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Registrations retrieved successfully", records)
}

// DecideRegistrationRequest carries optional reviewer notes.
type DecideRegistrationRequest struct {
	Notes string `json:"notes"`
}

// ApproveRegistration godoc
// @Summary Approve a club's competition registration
// @Tags competitions
// @Produce json
// @Param registration_id path int true "Registration ID"
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/registrations/{registration_id}/approve [post]
func (ctl *CompetitionController) ApproveRegistration(c *gin.Context) {
	ctl.decideRegistration(c, RegistrationApproved, "Registration approved successfully")
}

// RejectRegistration godoc
// @Summary Reject a club's competition registration
// @Tags competitions
// @Produce json
// @Param registration_id path int true "Registration ID"
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/registrations/{registration_id}/reject [post]
func (ctl *CompetitionController) RejectRegistration(c *gin.Context) {
	ctl.decideRegistration(c, RegistrationRejected, "Registration rejected")
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func (ctl *CompetitionController) decideRegistration(c *gin.Context, status RegistrationStatus, message string) {
	id, ok := paramID(c, "registration_id")
	if !ok {
		return
	}
	var req DecideRegistrationRequest
	_ = c.ShouldBindJSON(&req)

	adminID := middleware.PrincipalID(c)
	if err := ctl.repo.DecideRegistration(id, status, adminID, req.Notes); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, message, nil)
}
