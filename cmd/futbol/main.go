package main

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/martinbenit/futbol/internal/advisory"
	"github.com/martinbenit/futbol/internal/api"
	"github.com/martinbenit/futbol/internal/config"
	"github.com/martinbenit/futbol/internal/constants"
	"github.com/martinbenit/futbol/internal/logging"
	"github.com/martinbenit/futbol/internal/storage"
)

func main() {
	// Best-effort .env loading for local development; real deployments set
	// the environment directly.
	_ = godotenv.Load()

	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./futbol_config.json"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Invalid configuration file", err, logging.Fields{"config_path": configPath})
	}
	if cfg.MatchupPromptTemplate != "" {
		advisory.SetMatchupPromptTemplate(cfg.MatchupPromptTemplate)
	}

	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/futbol.db"
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logging.Fatal("Failed to create database directory", err, logging.Fields{"dir": dir})
		}
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)
	annotator := advisory.NewAnnotator(cfg.GeminiModels, cfg.AdvisoryTimeout, cfg.RetryDelay)
	if annotator.Configured() {
		logging.Info("Advisory backend enabled", logging.Fields{"models": cfg.GeminiModels})
	} else {
		logging.Info("No advisory API key set, deterministic engine only", nil)
	}
	handler := api.NewMatchHandler(repo, annotator)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.POST(constants.RouteGenerateMatch, handler.GenerateMatch)
		apiRoutes.GET(constants.RoutePlayers, handler.ListPlayers)
		apiRoutes.POST(constants.RoutePlayers, handler.CreatePlayer)
		apiRoutes.POST(constants.RoutePlayerRatings, handler.SaveRatings)
		apiRoutes.GET(constants.RouteMatches, handler.ListMatches)
		apiRoutes.POST(constants.RouteMatches, handler.SaveMatch)
		apiRoutes.PATCH(constants.RouteMatchByID, handler.UpdateMatch)
		apiRoutes.DELETE(constants.RouteMatchByID, handler.DeleteMatch)
		apiRoutes.GET(constants.RouteSkills, api.ListSkills)
		apiRoutes.GET(constants.RouteVersion, api.Version)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
