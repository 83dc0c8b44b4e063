package club

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tamaula/leaguehub/config"
	"github.com/tamaula/leaguehub/internal/middleware"
	"github.com/tamaula/leaguehub/pkg/responses"
	"github.com/tamaula/leaguehub/pkg/uploads"
	"github.com/tamaula/leaguehub/pkg/utils"
)

// ClubController handles club registration, the admin approval lifecycle and
// public club lookups.
type ClubController struct {
	repo   ClubRepository
	store  *uploads.Store
	config *config.Config
}

// NewClubController creates a new ClubController.
func NewClubController(repo ClubRepository, store *uploads.Store, cfg *config.Config) *ClubController {
	return &ClubController{repo: repo, store: store, config: cfg}
}

// --- DTOs ---

type RegisterClubRequest struct {
	Name     string `form:"name" binding:"required,min=2,max=120"`
	Region   string `form:"region" binding:"required,max=120"`
	Email    string `form:"email" binding:"required,email"`
	Phone    string `form:"phone" binding:"omitempty,max=30"`
	Password string `form:"password" binding:"required,min=6"`
}

type UpdateClubDetailsRequest struct {
	Email           string `form:"email" binding:"omitempty,email"`
	Phone           string `form:"phone" binding:"omitempty,max=30"`
	CurrentPassword string `form:"current_password" binding:"required"`
	NewPassword     string `form:"new_password" binding:"omitempty,min=6"`
}

// Register godoc
// @Summary Register a new club
// @Description Self-registration; the club stays pending until an admin approves it.
// @Tags Clubs
// @Accept mpfd
// @Produce json
// @Param name formData string true "Club name"
// @Param region formData string true "Region the club plays in"
// @Param email formData string true "Contact email"
// @Param phone formData string false "Contact phone"
// @Param password formData string true "Password (min 6 characters)"
// @Param logo formData file false "Club logo image"
// @Success 201 {object} responses.SuccessResponse
// @Failure 409 {object} responses.ErrorResponse "Club name or email already exists"
// @Router /clubs/register [post]
func (cc *ClubController) Register(c *gin.Context) {
	var req RegisterClubRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	exists, err := cc.repo.ExistsByNameOrEmail(req.Name, req.Email)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if exists {
		responses.SendError(c, http.StatusConflict, "Club name or email already exists")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Error hashing password")
		return
	}

	logo := ""
	if file, err := c.FormFile("logo"); err == nil {
		logo = cc.store.Save(c, file, "club-logos")
	}

	newClub := &Club{
		Name:     req.Name,
		Region:   req.Region,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hashed,
		Logo:     logo,
		Approved: false,
	}
	if err := cc.repo.CreateClub(newClub); err != nil {
		responses.FromError(c, err)
		return
	}

	log.Info().Uint("club_id", newClub.ID).Str("name", newClub.Name).Msg("club registered, pending approval")
	responses.SendSuccess(c, http.StatusCreated, "Registration submitted! Your club is pending admin approval.", newClub.Summary())
}

// GetPendingClubs lists clubs awaiting admin approval.
func (cc *ClubController) GetPendingClubs(c *gin.Context) {
	clubs, err := cc.repo.GetPendingClubs()
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", clubs)
}

// Approve godoc
// @Summary Approve a pending club
// @Tags Admin
// @Produce json
// @Param club_id path int true "Club ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/clubs/{club_id}/approve [post]
// @Security BearerAuth
func (cc *ClubController) Approve(c *gin.Context) {
	cc.setApproval(c, true, "Club approved successfully")
}

// Reject permanently deletes a pending club. There is no audit row left behind.
func (cc *ClubController) Reject(c *gin.Context) {
	id, ok := clubIDParam(c)
	if !ok {
		return
	}
	existing, err := cc.repo.GetClubByID(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if existing == nil {
		responses.NotFound(c, "Club")
		return
	}
	if err := cc.repo.DeleteClub(id); err != nil {
		responses.FromError(c, err)
		return
	}
	log.Info().Uint("club_id", id).Str("name", existing.Name).Msg("club rejected and removed")
	responses.SendSuccess(c, http.StatusOK, "Club \""+existing.Name+"\" rejected and removed.", nil)
}

// Deactivate flips an approved club back to unapproved.
func (cc *ClubController) Deactivate(c *gin.Context) {
	cc.setApproval(c, false, "Club deactivated")
}

// Activate re-approves a deactivated club.
func (cc *ClubController) Activate(c *gin.Context) {
	cc.setApproval(c, true, "Club activated")
}

// Delete removes a club and all data that references it.
func (cc *ClubController) Delete(c *gin.Context) {
	id, ok := clubIDParam(c)
	if !ok {
		return
	}
	existing, err := cc.repo.GetClubByID(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if existing == nil {
		responses.NotFound(c, "Club")
		return
	}
	if err := cc.repo.DeleteClubCascade(id); err != nil {
		responses.FromError(c, err)
		return
	}
	log.Info().Uint("club_id", id).Str("name", existing.Name).Msg("club and associated data deleted")
	responses.SendSuccess(c, http.StatusOK, "Club \""+existing.Name+"\" and all associated data have been deleted.", nil)
}

// ListApproved godoc
// @Summary List approved clubs
// @Tags Clubs
// @Produce json
// @Param region query string false "Filter by region"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} responses.PaginatedResponse{data=[]Summary}
// @Router /clubs [get]
func (cc *ClubController) ListApproved(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	clubs, total, err := cc.repo.GetApprovedClubs(c.Query("region"), page, limit)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	summaries := make([]Summary, 0, len(clubs))
	for i := range clubs {
		summaries = append(summaries, clubs[i].Summary())
	}
	responses.SendPaginated(c, http.StatusOK, "", summaries, total, page, limit)
}

// ClubsInRegion returns approved club names in a region, used by the player
// registration form.
func (cc *ClubController) ClubsInRegion(c *gin.Context) {
	region := c.Param("region")
	clubs, _, err := cc.repo.GetApprovedClubs(region, 1, 500)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	summaries := make([]Summary, 0, len(clubs))
	for i := range clubs {
		summaries = append(summaries, clubs[i].Summary())
	}
	responses.SendSuccess(c, http.StatusOK, "", summaries)
}

// GetMe returns the authenticated club's own record.
func (cc *ClubController) GetMe(c *gin.Context) {
	clubID := middleware.PrincipalID(c)
	existing, err := cc.repo.GetClubByID(clubID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if existing == nil {
		responses.NotFound(c, "Club")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", existing)
}

// UpdateMe lets a club change its contact details, password and logo.
func (cc *ClubController) UpdateMe(c *gin.Context) {
	var req UpdateClubDetailsRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	clubID := middleware.PrincipalID(c)
	existing, err := cc.repo.GetClubByID(clubID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if existing == nil {
		responses.NotFound(c, "Club")
		return
	}
	if !utils.CheckPassword(existing.Password, req.CurrentPassword) {
		responses.Forbidden(c, "Current password is incorrect")
		return
	}

	if req.Email != "" {
		existing.Email = req.Email
	}
	if req.Phone != "" {
		existing.Phone = req.Phone
	}
	if req.NewPassword != "" {
		hashed, err := utils.HashPassword(req.NewPassword)
		if err != nil {
			responses.SendError(c, http.StatusInternalServerError, "Error hashing password")
			return
		}
		existing.Password = hashed
	}
	if file, err := c.FormFile("logo"); err == nil {
		if url := cc.store.Save(c, file, "club-logos"); url != "" {
			existing.Logo = url
		}
	}

	if err := cc.repo.UpdateClub(existing); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Club details updated successfully", existing.Summary())
}

func (cc *ClubController) setApproval(c *gin.Context, approved bool, message string) {
	id, ok := clubIDParam(c)
	if !ok {
		return
	}
	existing, err := cc.repo.GetClubByID(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if existing == nil {
		responses.NotFound(c, "Club")
		return
	}
	if err := cc.repo.SetApproved(id, approved); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, message, nil)
}

func clubIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid club id")
		return 0, false
	}
	return uint(id), true
}
