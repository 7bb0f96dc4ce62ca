package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_catalog/internal/adapters/extractor"
	"hotel_catalog/internal/adapters/observability"
	redisad "hotel_catalog/internal/adapters/redis"
	"hotel_catalog/internal/app"
	"hotel_catalog/internal/convert"
	"hotel_catalog/internal/shared"
	mysqlrepo "hotel_catalog/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.ExtractBase).
		Int("workers", cfg.Workers).
		Int("batch", cfg.PendingBatch).
		Msg("converter starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	client, err := extractor.New(cfg.ExtractBase, cfg.ExtractKey, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize extractor client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	svc := app.NewConversionService(client, convert.New(), repo, cache)

	pending, err := client.ListPending(ctx, cfg.PendingBatch)
	if err != nil {
		log.Fatal().Err(err).Msg("listing pending records failed")
	}
	log.Info().Int("count", len(pending)).Msg("pending records fetched")

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, id := range pending {
		id := id

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(recordID string) {
			defer wg.Done()
			defer sem.Release(int64(1))

			if err := svc.ConvertRecord(ctx, recordID); err != nil {
				log.Warn().Str("record", recordID).Err(err).Msg("conversion failed")
				return
			}
			log.Info().Str("record", recordID).Msg("conversion ok")
		}(id)
	}

	wg.Wait()
	log.Info().Msg("conversion run completed")
}
