package main

import (
	"context"
	"database/sql"
	"net/http"

	"cloud.google.com/go/storage"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"hotel_concierge/internal/adapters/blob"
	server "hotel_concierge/internal/adapters/http_server"
	"hotel_concierge/internal/adapters/observability"
	redisad "hotel_concierge/internal/adapters/redis"
	"hotel_concierge/internal/adapters/session"
	"hotel_concierge/internal/app"
	"hotel_concierge/internal/shared"
	mysqlrepo "hotel_concierge/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	sm, err := session.NewManager([]byte(cfg.SessionHash), blockKey(cfg.SessionKey), cfg.AppEnv != "dev")
	if err != nil {
		log.Fatal().Err(err).Msg("session manager init failed")
	}

	h := &server.Handlers{Sessions: sm, Configured: cfg.Configured(), PublicRPS: cfg.PublicRPS}

	if cfg.Configured() {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")

		gcs, err := storage.NewClient(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("blob client init failed")
		}

		repo := mysqlrepo.New(db)
		blobs := blob.NewGCS(gcs, cfg.BlobBucket)
		cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

		h.Pages = app.NewPageService(repo, repo, repo, blobs, cache, cfg.CacheTTL)
		h.Content = app.NewContentService(repo, repo, cache)
		h.Assets = app.NewAssetService(repo, repo, repo, blobs, cache)
		h.Auth = app.NewAuthService(repo)
	}

	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(h)

	log.Info().Str("addr", cfg.HTTPAddr).Bool("configured", cfg.Configured()).Msg("web listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

func blockKey(s string) []byte {
	if s == "" {
		return nil
	}
	return []byte(s)
}
