package main

import (
	"log"

	"github.com/tamaula/leaguehub/config"
	_ "github.com/tamaula/leaguehub/docs"
	"github.com/tamaula/leaguehub/internal/auth"
	"github.com/tamaula/leaguehub/internal/club"
	"github.com/tamaula/leaguehub/internal/competition"
	"github.com/tamaula/leaguehub/internal/groupstage"
	"github.com/tamaula/leaguehub/internal/lineup"
	"github.com/tamaula/leaguehub/internal/match"
	"github.com/tamaula/leaguehub/internal/player"
	"github.com/tamaula/leaguehub/internal/transfer"
	"github.com/tamaula/leaguehub/pkg/uploads"
	"github.com/tamaula/leaguehub/routes"
)

// @title LeagueHub REST API
// @version 1.0
// @description Regional football league management: clubs, players, competitions, transfers and standings.
// @host localhost:8090
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&auth.Admin{}, &club.Club{}, &player.Player{},
		&competition.Competition{}, &competition.Registration{},
		&groupstage.CompetitionGroup{}, &groupstage.GroupAssignment{},
		&groupstage.GroupMatch{}, &groupstage.GroupStanding{},
		&match.Match{}, &match.MatchEvent{},
		&transfer.TransferRequest{}, &lineup.Lineup{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	if err := auth.EnsureDefaultAdmin(config.DB); err != nil {
		log.Fatalf("Failed to seed default admin: %v", err)
	}

	store := uploads.NewStore(cfg.App.UploadDir, cfg.App.PublicURL)
	r := routes.SetupRoutes(config.DB, cfg, store)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
