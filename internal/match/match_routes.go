package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tamaula/leaguehub/config"
	mw "github.com/tamaula/leaguehub/internal/middleware"
)

func RegisterMatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewMatchRepository(db)
	controller := NewMatchController(repo)

	public := router.Group("/matches")
	{
		public.GET("", controller.List)
		public.GET("/:match_id", controller.Detail)
	}

	admin := router.Group("/admin")
	admin.Use(mw.AuthMiddleware(appConfig.JWT.Secret), mw.AdminOnly())
	{
		admin.POST("/matches", controller.Create)
		admin.PUT("/matches/:match_id", controller.Update)
		admin.DELETE("/matches/:match_id", controller.Delete)
		admin.POST("/matches/:match_id/events", controller.AddEvent)
		admin.DELETE("/match-events/:event_id", controller.DeleteEvent)
	}
}
