package club

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tamaula/leaguehub/config"
	mw "github.com/tamaula/leaguehub/internal/middleware"
	"github.com/tamaula/leaguehub/pkg/uploads"
)

func RegisterClubRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, store *uploads.Store) {
	repo := NewClubRepository(db)
	controller := NewClubController(repo, store, appConfig)

	public := router.Group("/clubs")
	{
		public.POST("/register", controller.Register)
		public.GET("", controller.ListApproved)
		public.GET("/region/:region", controller.ClubsInRegion)
	}

	authenticated := router.Group("/")
	authenticated.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		me := authenticated.Group("/clubs/me")
		me.Use(mw.ClubOnly())
		{
			me.GET("", controller.GetMe)
			me.PUT("", controller.UpdateMe)
		}

		admin := authenticated.Group("/admin/clubs")
		admin.Use(mw.AdminOnly())
		{
			admin.GET("/pending", controller.GetPendingClubs)
			admin.POST("/:club_id/approve", controller.Approve)
			admin.POST("/:club_id/reject", controller.Reject)
			admin.POST("/:club_id/deactivate", controller.Deactivate)
			admin.POST("/:club_id/activate", controller.Activate)
			admin.DELETE("/:club_id", controller.Delete)
		}
	}
}
