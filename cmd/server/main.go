package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/agenthands/cocograph/internal/config"
	"github.com/agenthands/cocograph/internal/core"
	"github.com/agenthands/cocograph/internal/driver"
	"github.com/agenthands/cocograph/internal/logging"
	"github.com/agenthands/cocograph/internal/server"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.LoadOrDefault(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logging.Default().Fatal().Err(err).Msg("failed to load configuration")
	}
	if err := cfg.ApplyEnv(); err != nil {
		logging.Default().Fatal().Err(err).Msg("invalid environment")
	}

	log := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	logging.SetDefault(log)
	if envErr != nil {
		log.Info().Msg("no .env file found, using defaults")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ctx := context.Background()
	d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to memgraph")
	}
	defer d.Close(ctx)
	if err := d.BuildIndices(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to build indices")
	}

	campaign, err := core.NewCampaign(d, nil, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start campaign")
	}
	if err := campaign.LoadRelations(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load relation graph")
	}

	srv := server.NewServer(campaign, log)
	r := srv.SetupRouter()

	log.Info().Str("port", port).Str("campaign_id", campaign.ID).Msg("starting server")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
