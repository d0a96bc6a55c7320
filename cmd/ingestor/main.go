package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"gymfinder/internal/adapters/gymsource"
	"gymfinder/internal/adapters/observability"
	redisad "gymfinder/internal/adapters/redis"
	"gymfinder/internal/app"
	"gymfinder/internal/shared"
	mysqlrepo "gymfinder/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.GymSourceBase).
		Int("workers", cfg.Workers).
		Int("gyms", len(cfg.IngestIDs)).
		Msg("ingestor starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	catalog := mysqlrepo.New(db)

	client, err := gymsource.New(cfg.GymSourceBase, cfg.GymSourceKey, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize gymsource client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	ing := app.NewIngestionService(client, catalog, cache)
	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, id := range cfg.IngestIDs {
		id := id

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(gymID int64) {
			defer wg.Done()
			defer sem.Release(int64(1))

			if err := ing.IngestGym(ctx, gymID); err != nil {
				log.Warn().Int64("id", gymID).Err(err).Msg("ingest failed")
				return
			}
			log.Info().Int64("id", gymID).Msg("ingest ok")
		}(id)
	}

	wg.Wait()
	log.Info().Msg("ingestion completed")
}
