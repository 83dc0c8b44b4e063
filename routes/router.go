package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/tamaula/leaguehub/config"
	"github.com/tamaula/leaguehub/internal/auth"
	"github.com/tamaula/leaguehub/internal/club"
	"github.com/tamaula/leaguehub/internal/competition"
	"github.com/tamaula/leaguehub/internal/groupstage"
	"github.com/tamaula/leaguehub/internal/lineup"
	"github.com/tamaula/leaguehub/internal/match"
	mw "github.com/tamaula/leaguehub/internal/middleware"
	"github.com/tamaula/leaguehub/internal/player"
	"github.com/tamaula/leaguehub/internal/transfer"
	"github.com/tamaula/leaguehub/pkg/uploads"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config, store *uploads.Store) *gin.Engine {
	if appConfig.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), mw.RequestLogger())
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	r.Static("/public", "./public")

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "leaguehub", "docs": "/swagger/index.html"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	club.RegisterClubRoutes(api, db, appConfig, store)
	player.RegisterPlayerRoutes(api, db, appConfig, store)
	transfer.RegisterTransferRoutes(api, db, appConfig)
	competition.RegisterCompetitionRoutes(api, db, appConfig)
	groupstage.RegisterGroupStageRoutes(api, db, appConfig)
	match.RegisterMatchRoutes(api, db, appConfig)
	lineup.RegisterLineupRoutes(api, db, appConfig)

	return r
}
