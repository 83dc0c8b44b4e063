package groupstage

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tamaula/leaguehub/config"
	mw "github.com/tamaula/leaguehub/internal/middleware"
)

func RegisterGroupStageRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewGroupStageRepository(db)
	controller := NewGroupStageController(repo)

	router.GET("/groups/:group_id/standings", controller.Standings)
	router.GET("/competitions/:competition_id/groups", controller.CompetitionGroups)

	admin := router.Group("/admin")
	admin.Use(mw.AuthMiddleware(appConfig.JWT.Secret), mw.AdminOnly())
	{
		admin.POST("/groups", controller.CreateGroup)
		admin.DELETE("/groups/:group_id", controller.DeleteGroup)
		admin.POST("/groups/:group_id/clubs", controller.AssignClub)
		admin.DELETE("/groups/:group_id/clubs/:club_id", controller.RemoveClub)
		admin.POST("/groups/:group_id/status", controller.UpdateStandingStatus)
		admin.POST("/group-matches", controller.CreateGroupMatch)
		admin.POST("/group-matches/:match_id/score", controller.RecordScore)
	}
}
