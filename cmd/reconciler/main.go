package main

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"hotel_concierge/internal/adapters/blob"
	"hotel_concierge/internal/adapters/observability"
	"hotel_concierge/internal/shared"
	mysqlrepo "hotel_concierge/internal/storage/mysql"
)

// The reconciler sweeps blob intents that never got a matching asset
// record: each one is a blob write that was started but whose upload
// transaction did not finish. Old enough intents get their blob removed
// and the marker cleared.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	if !cfg.Configured() {
		log.Fatal().Msg("MYSQL_DSN and BLOB_BUCKET are required")
	}

	log.Info().
		Int("workers", cfg.Workers).
		Dur("min_age", cfg.SweepAge).
		Msg("reconciler starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	gcs, err := storage.NewClient(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("blob client init failed")
	}

	repo := mysqlrepo.New(db)
	blobs := blob.NewGCS(gcs, cfg.BlobBucket)

	stale, err := repo.ListBlobIntents(ctx, time.Now().Add(-cfg.SweepAge))
	if err != nil {
		log.Fatal().Err(err).Msg("list intents failed")
	}
	if len(stale) == 0 {
		log.Info().Msg("nothing to sweep")
		return
	}

	// Bucket deletes are throttled so a large backlog cannot hammer the
	// storage API.
	limiter := rate.NewLimiter(rate.Limit(20), 5)
	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	swept := 0
	var mu sync.Mutex

	for _, path := range stale {
		path := path

		if err := limiter.Wait(ctx); err != nil {
			log.Fatal().Err(err).Msg("rate limiter wait failed")
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := blobs.Remove(ctx, path); err != nil {
				log.Warn().Str("path", path).Err(err).Msg("blob remove failed")
				return
			}
			if err := repo.DeleteBlobIntent(ctx, path); err != nil {
				log.Warn().Str("path", path).Err(err).Msg("intent delete failed")
				return
			}
			mu.Lock()
			swept++
			mu.Unlock()
			log.Info().Str("path", path).Msg("orphaned blob swept")
		}()
	}

	wg.Wait()
	log.Info().Int("stale", len(stale)).Int("swept", swept).Msg("sweep completed")
}
