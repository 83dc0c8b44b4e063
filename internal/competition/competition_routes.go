package competition

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tamaula/leaguehub/config"
	mw "github.com/tamaula/leaguehub/internal/middleware"
)

func RegisterCompetitionRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewCompetitionRepository(db)
	controller := NewCompetitionController(repo)

	public := router.Group("/competitions")
	{
		public.GET("", controller.List)
		public.GET("/:competition_id", controller.Get)
	}

	authenticated := router.Group("/")
	authenticated.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		clubs := authenticated.Group("/")
		clubs.Use(mw.ClubOnly())
		{
			clubs.POST("/competitions/:competition_id/register", controller.RegisterMyClub)
			clubs.GET("/clubs/me/registrations", controller.MyRegistrations)
		}

		admin := authenticated.Group("/admin")
		admin.Use(mw.AdminOnly())
		{
			admin.POST("/competitions", controller.Create)
			admin.PUT("/competitions/:competition_id", controller.Update)
			admin.GET("/registrations", controller.ListRegistrations)
			admin.POST("/registrations/:registration_id/approve", controller.ApproveRegistration)
			admin.POST("/registrations/:registration_id/reject", controller.RejectRegistration)
		}
	}
}
