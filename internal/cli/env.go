package cli

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/mmynk/giftshuffler/internal/auth"
	"github.com/mmynk/giftshuffler/internal/config"
	"github.com/mmynk/giftshuffler/internal/edition"
	"github.com/mmynk/giftshuffler/internal/shuffle"
	"github.com/mmynk/giftshuffler/internal/storage"
	"github.com/mmynk/giftshuffler/internal/storage/memory"
	"github.com/mmynk/giftshuffler/internal/storage/sqlite"
)

// openStore opens the backend named by cfg.Store.
func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	var (
		store storage.Store
		err   error
	)
	switch cfg.Store {
	case config.StoreMemory:
		store = memory.New()
	default:
		store, err = sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, err
		}
	}
	if err := store.Ping(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("ping %s store: %w", cfg.Store, err)
	}
	slog.Info("Storage initialized", "store", cfg.Store, "database", cfg.DBPath)
	return store, nil
}

func newShuffler(cfg config.Config, store storage.Store) *edition.Shuffler {
	return edition.NewShuffler(store, shuffle.NewGenerator(
		shuffle.WithMaxAttempts(cfg.MaxAttempts),
		shuffle.WithFeasibilityCheck(cfg.FeasibilityCheck),
	))
}

// newJWTManager falls back to a random per-process secret when none is
// configured. Tokens then stop validating after a restart.
func newJWTManager(cfg config.Config) (*auth.JWTManager, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("generate jwt secret: %w", err)
		}
		secret = hex.EncodeToString(buf)
		slog.Warn("GIFTSHUFFLER_JWT_SECRET not set, using a random secret for this process")
	}
	return auth.NewJWTManager(secret, cfg.TokenTTL), nil
}
