package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tamaula/leaguehub/config"
	"github.com/tamaula/leaguehub/internal/club"
	"github.com/tamaula/leaguehub/internal/player"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewAuthRepository(db)
	controller := NewAuthController(repo, club.NewClubRepository(db), player.NewPlayerRepository(db), appConfig)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", controller.Login)
	}
}
