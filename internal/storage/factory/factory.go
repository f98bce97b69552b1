package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/in2post/internal/storage"
	"github.com/DjordjeVuckovic/in2post/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/in2post/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/in2post/pkg/server"
)

// Backend bundles a history store with its health checker and a cleanup
// function releasing its resources.
type Backend struct {
	History       storage.History
	HealthChecker pkgserver.HealthChecker
	Close         func()
}

// NewHistory creates the calculation history selected by cfg.
func NewHistory(ctx context.Context, cfg StorageConfig) (*Backend, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		if err := pg.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}

		slog.Info("Using PostgreSQL calculation history")
		return &Backend{
			History:       pg.NewHistoryStorer(pool),
			HealthChecker: pg.NewHealthChecker(pool),
			Close:         pool.Close,
		}, nil

	case storage.InMem:
		slog.Info("Using in-memory calculation history")
		return &Backend{
			History:       in_mem.NewInMemStorer(),
			HealthChecker: pkgserver.NewOkHealthChecker(),
			Close:         func() {},
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", storage.ErrUnsupportedStorer, cfg.Type)
	}
}
