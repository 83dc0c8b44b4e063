package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tamaula/leaguehub/config"
	"github.com/tamaula/leaguehub/internal/auth"
	"github.com/tamaula/leaguehub/internal/club"
	"github.com/tamaula/leaguehub/internal/player"
	"github.com/tamaula/leaguehub/pkg/token"
	"github.com/tamaula/leaguehub/pkg/utils"
)

func loginTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_fk=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&auth.Admin{}, &club.Club{}, &player.Player{}))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.Close()
	})

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiryMinutes = 60

	r := gin.New()
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, cfg)
	return r, db
}

func postLogin(t *testing.T, r *gin.Engine, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	return hashed
}

func TestAdminLoginIssuesToken(t *testing.T) {
	r, db := loginTestRouter(t)
	require.NoError(t, db.Create(&auth.Admin{
		Username: "admin", Email: "admin@example.com", Password: mustHash(t, "admin123"),
	}).Error)

	w := postLogin(t, r, map[string]string{
		"username": "admin", "password": "admin123", "user_type": "admin",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data auth.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "admin", body.Data.UserType)
	require.NotEmpty(t, body.Data.Token)

	claims, err := token.ValidateJWT(body.Data.Token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, token.RoleAdmin, claims.Role)
}

func TestClubLoginRequiresApproval(t *testing.T) {
	r, db := loginTestRouter(t)
	require.NoError(t, db.Create(&club.Club{
		Name: "Harbor FC", Region: "North", Email: "harbor@example.com",
		Password: mustHash(t, "club-pass"), Approved: false,
	}).Error)

	w := postLogin(t, r, map[string]string{
		"username": "Harbor FC", "password": "club-pass", "user_type": "club",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	require.NoError(t, db.Model(&club.Club{}).Where("name = ?", "Harbor FC").
		Update("approved", true).Error)
	w = postLogin(t, r, map[string]string{
		"username": "Harbor FC", "password": "club-pass", "user_type": "club",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestPlayerLoginRequiresClubApproval(t *testing.T) {
	r, db := loginTestRouter(t)
	require.NoError(t, db.Create(&player.Player{
		FullName: "Jordan Doe", Username: "jdoe", Email: "jdoe@example.com",
		DateOfBirth: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		Password:    mustHash(t, "player-pass"), Status: player.StatusPending,
	}).Error)

	w := postLogin(t, r, map[string]string{
		"username": "jdoe", "password": "player-pass", "user_type": "player",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	require.NoError(t, db.Model(&player.Player{}).Where("username = ?", "jdoe").
		Update("status", player.StatusApproved).Error)
	w = postLogin(t, r, map[string]string{
		"username": "jdoe", "password": "player-pass", "user_type": "player",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, db := loginTestRouter(t)
	require.NoError(t, db.Create(&auth.Admin{
		Username: "admin", Email: "admin@example.com", Password: mustHash(t, "admin123"),
	}).Error)

	w := postLogin(t, r, map[string]string{
		"username": "admin", "password": "wrong", "user_type": "admin",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = postLogin(t, r, map[string]string{
		"username": "ghost", "password": "whatever", "user_type": "admin",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown user_type fails request binding.
	w = postLogin(t, r, map[string]string{
		"username": "admin", "password": "admin123", "user_type": "wizard",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEnsureDefaultAdminSeedsOnce(t *testing.T) {
	_, db := loginTestRouter(t)

	require.NoError(t, auth.EnsureDefaultAdmin(db))
	require.NoError(t, auth.EnsureDefaultAdmin(db))

	var count int64
	require.NoError(t, db.Model(&auth.Admin{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}
