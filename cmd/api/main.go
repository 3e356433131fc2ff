package main

import (
	"github.com/mchellal/studia/internal/bootstrap"
	"github.com/mchellal/studia/internal/pkg/logger"
	"github.com/mchellal/studia/internal/server"
)

func main() {
	cfg, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	database, err := bootstrap.SetupDatabase(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to set up database")
	}
	defer database.Close()

	deps, err := bootstrap.BuildDependencies(cfg, database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build dependencies")
	}

	router := bootstrap.SetupRouter(deps)

	srv := server.New(cfg, router)
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server exited with error")
	}
}
