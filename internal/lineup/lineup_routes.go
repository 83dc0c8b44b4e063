package lineup

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tamaula/leaguehub/config"
	mw "github.com/tamaula/leaguehub/internal/middleware"
)

func RegisterLineupRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewLineupRepository(db)
	controller := NewLineupController(repo)

	router.GET("/competitions/:competition_id/lineups", controller.ByCompetition)

	me := router.Group("/clubs/me")
	me.Use(mw.AuthMiddleware(appConfig.JWT.Secret), mw.ClubOnly())
	{
		me.GET("/lineup", controller.MyLineup)
		me.PUT("/lineup", controller.Save)
	}
}
