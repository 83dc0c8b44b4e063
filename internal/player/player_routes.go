package player

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tamaula/leaguehub/config"
	"github.com/tamaula/leaguehub/internal/club"
	mw "github.com/tamaula/leaguehub/internal/middleware"
	"github.com/tamaula/leaguehub/internal/transfer"
	"github.com/tamaula/leaguehub/pkg/uploads"
)

func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, store *uploads.Store) {
	repo := NewPlayerRepository(db)
	clubRepo := club.NewClubRepository(db)
	transferRepo := transfer.NewTransferRepository(db)
	controller := NewPlayerController(repo, clubRepo, transferRepo, store, appConfig)

	public := router.Group("/players")
	{
		public.POST("/register", controller.Register)
		public.GET("", controller.List)
	}

	authenticated := router.Group("/")
	authenticated.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		me := authenticated.Group("/players/me")
		me.Use(mw.PlayerOnly())
		{
			me.GET("", controller.GetMe)
			me.PUT("", controller.UpdateMe)
			me.DELETE("", controller.DeleteMe)
		}

		roster := authenticated.Group("/clubs/me/players")
		roster.Use(mw.ClubOnly())
		{
			roster.GET("", controller.Roster)
			roster.POST("/:player_id/approve", controller.ApprovePlayer)
			roster.POST("/:player_id/reject", controller.RejectPlayer)
		}
	}
}
