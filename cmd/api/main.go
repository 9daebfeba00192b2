package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"orion_concierge/internal/adapters/cohere"
	server "orion_concierge/internal/adapters/http_server"
	"orion_concierge/internal/adapters/observability"
	redisad "orion_concierge/internal/adapters/redis"
	"orion_concierge/internal/app"
	"orion_concierge/internal/domain"
	"orion_concierge/internal/secrets"
	"orion_concierge/internal/shared"
	mysqlstore "orion_concierge/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "api")

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	store := mysqlstore.New(db)
	bag := secretsBag(cfg)
	llm := cohere.New(cohere.WithBaseURL(cfg.CohereBase))
	dispatcher := app.New(bag, store, store, store, llm,
		app.WithTTSEndpoint(cfg.CohereBase+"/generate"))

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{D: dispatcher})

	log.Info().Str("addr", cfg.HTTPAddr).Str("secrets", cfg.SecretsBackend).Msg("concierge API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

func secretsBag(cfg shared.Config) domain.Secrets {
	if cfg.SecretsBackend == "redis" {
		return redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}
	return secrets.NewMemory(map[string]string{
		domain.SecretCohereAPIKey:   cfg.CohereAPIKey,
		domain.SecretSheetID:        cfg.SheetID,
		domain.SecretFirebaseConfig: cfg.FirebaseConfig,
	})
}
