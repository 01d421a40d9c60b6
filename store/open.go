package store

import (
	"context"
	"fmt"

	"github.com/sentineltools/commentcode/config"
	"github.com/sentineltools/commentcode/store/mssql"
	"github.com/sentineltools/commentcode/store/postgres"
)

// Open wires cfg.Store into a concrete IssueStore, per §4.11's
// backend selection. An empty or "none" backend yields Noop{}.
func Open(ctx context.Context, cfg config.StoreConfig) (IssueStore, error) {
	switch cfg.Backend {
	case "", "none":
		return Noop{}, nil
	case "postgres":
		return postgres.Open(ctx, cfg.Connection)
	case "mssql":
		return mssql.Open(ctx, cfg.Connection)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend)
	}
}
