package player

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tamaula/leaguehub/config"
	"github.com/tamaula/leaguehub/internal/club"
	"github.com/tamaula/leaguehub/internal/middleware"
	"github.com/tamaula/leaguehub/internal/transfer"
	"github.com/tamaula/leaguehub/pkg/responses"
	"github.com/tamaula/leaguehub/pkg/uploads"
	"github.com/tamaula/leaguehub/pkg/utils"
)

// PlayerController handles player self-registration, profile management and
// the club-side roster approvals.
type PlayerController struct {
	repo      PlayerRepository
	clubRepo  club.ClubRepository
	transfers transfer.TransferRepository
	store     *uploads.Store
	config    *config.Config
}

func NewPlayerController(repo PlayerRepository, clubRepo club.ClubRepository, transfers transfer.TransferRepository, store *uploads.Store, cfg *config.Config) *PlayerController {
	return &PlayerController{
		repo:      repo,
		clubRepo:  clubRepo,
		transfers: transfers,
		store:     store,
		config:    cfg,
	}
}

// Register godoc
// @Summary Register a new player
// @Description Self-registration against an approved club in a region; the player stays pending until the club approves.
// @Tags Players
// @Accept mpfd
// @Produce json
// @Param full_name formData string true "Full name"
// @Param username formData string true "Unique username"
// @Param email formData string true "Unique email"
// @Param phone formData string false "Phone"
// @Param date_of_birth formData string true "Date of birth (YYYY-MM-DD)"
// @Param jersey_number formData int false "Jersey number"
// @Param gender formData string false "Gender"
// @Param region formData string true "Region of the club"
// @Param club formData string true "Club name within the region"
// @Param password formData string true "Password (min 6 characters)"
// @Param profile_picture formData file false "Profile picture"
// @Success 201 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse "Validation failed; fields map lists every problem"
// @Failure 409 {object} responses.ErrorResponse "Username or email already exists"
// @Router /players/register [post]
func (pc *PlayerController) Register(c *gin.Context) {
	picture := ""
	if file, err := c.FormFile("profile_picture"); err == nil {
		picture = pc.store.Save(c, file, "player-profiles")
	}

	in := RegisterInput{
		FullName:       c.PostForm("full_name"),
		Username:       c.PostForm("username"),
		Email:          c.PostForm("email"),
		Phone:          c.PostForm("phone"),
		DateOfBirth:    c.PostForm("date_of_birth"),
		JerseyNumber:   c.PostForm("jersey_number"),
		Gender:         c.PostForm("gender"),
		Region:         c.PostForm("region"),
		ClubName:       c.PostForm("club"),
		Password:       c.PostForm("password"),
		ProfilePicture: picture,
	}

	p, err := Register(pc.repo, pc.clubRepo, in)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	log.Info().Uint("player_id", p.ID).Str("username", p.Username).Msg("player registered, pending club approval")
	responses.SendSuccess(c, http.StatusCreated, "Registration submitted successfully! Please wait for club approval.", gin.H{
		"id":       p.ID,
		"username": p.Username,
		"status":   p.Status,
	})
}

// GetMe returns the player's own record together with any open transfers.
func (pc *PlayerController) GetMe(c *gin.Context) {
	playerID := middleware.PrincipalID(c)
	p, err := pc.repo.GetPlayerByID(playerID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	pending, err := pc.transfers.GetOpenRecordsForPlayer(playerID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"player":            p,
		"age":               p.Age(),
		"pending_transfers": pending,
	})
}

// UpdateMe edits the player profile. Selecting a different club does not move
// the player; it opens a transfer request and leaves the roster untouched
// until both clubs have approved.
func (pc *PlayerController) UpdateMe(c *gin.Context) {
	playerID := middleware.PrincipalID(c)
	p, err := pc.repo.GetPlayerByID(playerID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	if !utils.CheckPassword(p.Password, c.PostForm("current_password")) {
		responses.Forbidden(c, "Current password is incorrect")
		return
	}

	username := c.DefaultPostForm("username", p.Username)
	email := c.DefaultPostForm("email", p.Email)
	taken, err := pc.repo.ExistsByUsernameOrEmail(username, email, p.ID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if taken {
		responses.SendError(c, http.StatusConflict, "Username or email already exists")
		return
	}

	p.FullName = c.DefaultPostForm("full_name", p.FullName)
	p.Username = username
	p.Email = email
	p.Phone = c.DefaultPostForm("phone", p.Phone)
	p.Gender = c.DefaultPostForm("gender", p.Gender)

	if dob := c.PostForm("date_of_birth"); dob != "" {
		birth, err := time.Parse("2006-01-02", dob)
		if err != nil {
			responses.BadRequest(c, "Please enter a valid date of birth")
			return
		}
		p.DateOfBirth = birth
	}
	if jersey := c.PostForm("jersey_number"); jersey != "" {
		n, err := strconv.Atoi(jersey)
		if err != nil {
			responses.BadRequest(c, "Jersey number must be a whole number")
			return
		}
		p.JerseyNumber = &n
	}
	if newPassword := c.PostForm("new_password"); newPassword != "" {
		if len(newPassword) < 6 {
			responses.BadRequest(c, "Password must be at least 6 characters long")
			return
		}
		hashed, err := utils.HashPassword(newPassword)
		if err != nil {
			responses.SendError(c, http.StatusInternalServerError, "Error hashing password")
			return
		}
		p.Password = hashed
	}
	if file, err := c.FormFile("profile_picture"); err == nil {
		if url := pc.store.Save(c, file, "player-profiles"); url != "" {
			p.ProfilePicture = url
		}
	}

	// A different selected club opens a transfer instead of moving the player.
	var transferReq *transfer.TransferRequest
	if rawClubID := c.PostForm("club_id"); rawClubID != "" {
		requestedClubID, err := strconv.ParseUint(rawClubID, 10, 32)
		if err != nil {
			responses.BadRequest(c, "Invalid club id")
			return
		}
		switch {
		case p.ClubID == nil:
			clubID := uint(requestedClubID)
			p.ClubID = &clubID
		case *p.ClubID != uint(requestedClubID):
			open, err := pc.transfers.GetOpenRequestForPlayer(p.ID)
			if err != nil {
				responses.FromError(c, err)
				return
			}
			if open != nil {
				responses.SendError(c, http.StatusConflict, "A transfer request is already open for this player")
				return
			}
			transferReq = &transfer.TransferRequest{
				PlayerID:   p.ID,
				FromClubID: *p.ClubID,
				ToClubID:   uint(requestedClubID),
				Reason:     c.PostForm("transfer_reason"),
				Status:     transfer.StatusPending,
			}
		}
	}

	if err := pc.repo.SaveProfile(p, transferReq); err != nil {
		responses.FromError(c, err)
		return
	}

	if transferReq != nil {
		log.Info().Uint("player_id", p.ID).Uint("from_club", transferReq.FromClubID).Uint("to_club", transferReq.ToClubID).Msg("transfer request opened")
		responses.SendSuccess(c, http.StatusOK, "Transfer request submitted! Waiting for approval from both clubs.", p)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile updated successfully!", p)
}

// DeleteMe removes the player's own account.
func (pc *PlayerController) DeleteMe(c *gin.Context) {
	playerID := middleware.PrincipalID(c)
	if err := pc.repo.DeletePlayer(playerID); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Account deleted", nil)
}

// Roster lists the club's approved players plus the pending queue.
func (pc *PlayerController) Roster(c *gin.Context) {
	clubID := middleware.PrincipalID(c)
	approved, err := pc.repo.GetPlayersByClubAndStatus(clubID, StatusApproved)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	pending, err := pc.repo.GetPlayersByClubAndStatus(clubID, StatusPending)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"approved": approved,
		"pending":  pending,
	})
}

// ApprovePlayer accepts a pending registration onto the club's roster.
func (pc *PlayerController) ApprovePlayer(c *gin.Context) {
	pc.decidePlayer(c, StatusApproved, "Player approved successfully!")
}

// RejectPlayer declines a pending registration. The row is retained.
func (pc *PlayerController) RejectPlayer(c *gin.Context) {
	pc.decidePlayer(c, StatusRejected, "Player rejected")
}

func (pc *PlayerController) decidePlayer(c *gin.Context, status PlayerStatus, message string) {
	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player id")
		return
	}
	clubID := middleware.PrincipalID(c)

	p, err := pc.repo.GetPlayerByID(uint(playerID))
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if p == nil || p.ClubID == nil || *p.ClubID != clubID {
		responses.Forbidden(c, "Player not found or you do not have permission to act on this player")
		return
	}

	if err := pc.repo.SetStatus(p.ID, status); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, message, nil)
}

// List is the public player listing with club names.
func (pc *PlayerController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	listings, total, err := pc.repo.GetApprovedListings(page, limit)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", listings, total, page, limit)
}
