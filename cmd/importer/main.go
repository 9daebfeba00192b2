package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"orion_concierge/internal/adapters/observability"
	"orion_concierge/internal/domain"
	"orion_concierge/internal/shared"
	mysqlstore "orion_concierge/internal/storage/mysql"
)

// importer bulk-loads guest profiles from a JSON array file, upserting each
// row with a bounded worker pool. Racing upserts of the same guest id can
// leave duplicate rows; the store's first-match-wins read makes that benign.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, "importer")

	log.Info().
		Str("file", cfg.GuestsFile).
		Int("workers", cfg.ImportWorkers).
		Msg("importer starting")

	raw, err := os.ReadFile(cfg.GuestsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("read guests file failed")
	}
	var guests []domain.GuestProfile
	if err := json.Unmarshal(raw, &guests); err != nil {
		log.Fatal().Err(err).Msg("parse guests file failed")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	store := mysqlstore.New(db)
	sem := semaphore.NewWeighted(int64(cfg.ImportWorkers))
	var wg sync.WaitGroup

	imported := 0
	var mu sync.Mutex

	for _, g := range guests {
		g := g
		if g.GuestID == "" {
			log.Warn().Str("name", g.GuestName).Msg("skipping guest without id")
			continue
		}

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			g.Normalize()
			if err := store.Upsert(ctx, g); err != nil {
				log.Warn().Str("guest_id", g.GuestID).Err(err).Msg("import failed")
				return
			}
			mu.Lock()
			imported++
			mu.Unlock()
			log.Info().Str("guest_id", g.GuestID).Msg("import ok")
		}()
	}

	wg.Wait()
	log.Info().Int("imported", imported).Int("total", len(guests)).Msg("import completed")
}
