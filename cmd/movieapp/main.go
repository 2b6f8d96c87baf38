package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/avstanoeva/movienotes/internal/config"
	"github.com/avstanoeva/movienotes/internal/logger"
	"github.com/avstanoeva/movienotes/internal/movies/handler"
	"github.com/avstanoeva/movienotes/internal/movies/service"
	"github.com/avstanoeva/movienotes/internal/movies/store"
	"github.com/avstanoeva/movienotes/internal/server"
	"github.com/avstanoeva/movienotes/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("movieapp")
	cfg, err := config.GetStructuredConfig(os.Args[1:], config.StructuredConfig{
		App: config.App{
			TokenIssuer:   "movieapp",
			TokenDuration: 72 * time.Hour,
		},
		Storage: config.Storage{
			Backend: config.BackendPostgres,
		},
		Server: config.Server{
			HTTPAddress: ":8080",
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, *cfg, log)
	tokens := utils.NewTokenManager(cfg.App.TokenSignKey, cfg.App.TokenIssuer)

	h := handler.NewHandler(services, tokens, log)
	srv := server.NewServer(h.Init(), cfg.Server, log)

	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
