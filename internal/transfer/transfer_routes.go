package transfer

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tamaula/leaguehub/config"
	mw "github.com/tamaula/leaguehub/internal/middleware"
)

func RegisterTransferRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewTransferRepository(db)
	controller := NewTransferController(repo)

	router.GET("/transfers", controller.History)

	authenticated := router.Group("/transfers")
	authenticated.Use(mw.AuthMiddleware(appConfig.JWT.Secret), mw.ClubOnly())
	{
		authenticated.POST("/:transfer_id/approve", controller.Approve)
		authenticated.POST("/:transfer_id/reject", controller.Reject)
	}

	clubTransfers := router.Group("/clubs/me/transfers")
	clubTransfers.Use(mw.AuthMiddleware(appConfig.JWT.Secret), mw.ClubOnly())
	{
		clubTransfers.GET("", controller.ListForClub)
	}
}
