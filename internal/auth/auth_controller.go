package auth

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tamaula/leaguehub/config"
	"github.com/tamaula/leaguehub/internal/club"
	"github.com/tamaula/leaguehub/internal/player"
	"github.com/tamaula/leaguehub/pkg/responses"
	"github.com/tamaula/leaguehub/pkg/token"
	"github.com/tamaula/leaguehub/pkg/utils"
)

// AuthController handles the shared login endpoint for the three principals.
type AuthController struct {
	repo       AuthRepository
	clubRepo   club.ClubRepository
	playerRepo player.PlayerRepository
	config     *config.Config
}

func NewAuthController(repo AuthRepository, clubRepo club.ClubRepository, playerRepo player.PlayerRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:       repo,
		clubRepo:   clubRepo,
		playerRepo: playerRepo,
		config:     cfg,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"user_type" binding:"required,oneof=admin club player"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserType string `json:"user_type"`
	UserID   uint   `json:"user_id"`
	Name     string `json:"name"`
}

// Login godoc
// @Summary Log in as admin, club or player
// @Description Players authenticate by username, clubs by club name, admins by username. Unapproved principals are refused.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} responses.SuccessResponse{data=LoginResponse}
// @Failure 401 {object} responses.ErrorResponse "Invalid credentials"
// @Failure 403 {object} responses.ErrorResponse "Account pending approval"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	var (
		principalID uint
		displayName string
	)

	switch req.UserType {
	case token.RolePlayer:
		p, err := ac.playerRepo.GetPlayerByUsername(req.Username)
		if err != nil {
			responses.FromError(c, err)
			return
		}
		if p == nil || !utils.CheckPassword(p.Password, req.Password) {
			responses.Unauthorized(c, "Invalid credentials. Please try again.")
			return
		}
		if p.Status != player.StatusApproved {
			responses.Forbidden(c, "Your account is pending approval from your club.")
			return
		}
		principalID, displayName = p.ID, p.Username

	case token.RoleClub:
		cl, err := ac.clubRepo.GetClubByName(req.Username)
		if err != nil {
			responses.FromError(c, err)
			return
		}
		if cl == nil || !utils.CheckPassword(cl.Password, req.Password) {
			responses.Unauthorized(c, "Invalid credentials. Please try again.")
			return
		}
		if !cl.Approved {
			responses.Forbidden(c, "Your club registration is pending admin approval.")
			return
		}
		principalID, displayName = cl.ID, cl.Name

	case token.RoleAdmin:
		admin, err := ac.repo.GetAdminByUsername(req.Username)
		if err != nil {
			responses.FromError(c, err)
			return
		}
		if admin == nil || !utils.CheckPassword(admin.Password, req.Password) {
			responses.Unauthorized(c, "Invalid credentials. Please try again.")
			return
		}
		principalID, displayName = admin.ID, admin.Username
	}

	signed, err := token.GenerateJWT(principalID, req.UserType, ac.config.JWT.Secret, ac.config.JWT.ExpiryMinutes)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Token generation failed")
		return
	}

	log.Info().Str("role", req.UserType).Uint("principal_id", principalID).Msg("login")
	responses.SendSuccess(c, http.StatusOK, "Login successful", LoginResponse{
		Token:    signed,
		UserType: req.UserType,
		UserID:   principalID,
		Name:     displayName,
	})
}

// EnsureDefaultAdmin seeds the first admin account so a fresh deployment can
// be administered. Credentials come from the environment.
func EnsureDefaultAdmin(db *gorm.DB) error {
	repo := NewAuthRepository(db)
	count, err := repo.CountAdmins()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	username := getenvDefault("ADMIN_USERNAME", "admin")
	password := getenvDefault("ADMIN_PASSWORD", "admin123")
	email := getenvDefault("ADMIN_EMAIL", "admin@leaguehub.local")

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	if err := repo.CreateAdmin(&Admin{Username: username, Email: email, Password: hashed}); err != nil {
		return err
	}
	log.Info().Str("username", username).Msg("seeded default admin account")
	return nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
