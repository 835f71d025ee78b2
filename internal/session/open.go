package session

import (
	"context"
	"fmt"

	"github.com/khedmalink/khedma/internal/config"
	"github.com/khedmalink/khedma/internal/database"
)

// Open builds the Session selected by cfg.Backend
func Open(ctx context.Context, cfg config.SessionConfig, dataDir string) (*Session, error) {
	switch cfg.Backend {
	case config.BackendSQLite, "":
		db, err := database.InitDB(ctx, dataDir)
		if err != nil {
			return nil, fmt.Errorf("open session db: %w", err)
		}
		return New(NewSQLiteStore(db)), nil
	case config.BackendRedis:
		store, err := ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return New(store), nil
	case config.BackendMemory:
		return New(NewMemoryStore()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
