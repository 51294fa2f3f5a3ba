package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"filmgraph/internal/logging"
	"filmgraph/internal/store"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stdout,
	})

	db, err := openDatabase(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	dataStore := store.New(db)

	if err := ensureReferenceData(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("bootstrap reference data")
	}

	handler := newHTTPHandler(cfg, dataStore)

	log.Info().Str("addr", cfg.Addr()).Msg("API server listening")
	if err := http.ListenAndServe(cfg.Addr(), handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
