package store

import (
	"context"

	"github.com/sentineltools/commentcode"
)

// Noop discards every issue it is given; it is wired in when
// config.StoreConfig.Backend is "" or "none" (§4.11).
type Noop struct{}

func (Noop) Save(context.Context, commentcode.RunMetadata, []commentcode.Issue) error { return nil }

func (Noop) Recent(context.Context, int) ([]StoredIssue, error) { return nil, nil }

func (Noop) Close() error { return nil }
