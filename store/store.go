// Package store persists detector findings (§4.10), mirroring the
// teacher's DSN-driven multi-backend database layer generalized from
// SQL execution to findings persistence.
package store

import (
	"context"
	"time"

	"github.com/sentineltools/commentcode"
)

// StoredIssue is an Issue as read back from a backend, with its run
// correlation and persistence timestamp attached.
type StoredIssue struct {
	RunID     string
	Issue     commentcode.Issue
	CreatedAt time.Time
}

// IssueStore is the persistence sink named in §4.10: a run's issues
// are written once, after the scan completes, and can be read back for
// trend reporting.
type IssueStore interface {
	Save(ctx context.Context, run commentcode.RunMetadata, issues []commentcode.Issue) error
	Recent(ctx context.Context, n int) ([]StoredIssue, error)
	Close() error
}

// CreateTableSQL is the schema shared by every backend's
// commentcode_issues table (§4.10).
const CreateTableSQL = `
CREATE TABLE IF NOT EXISTS commentcode_issues (
	run_id     TEXT NOT NULL,
	rule_key   TEXT NOT NULL,
	file       TEXT NOT NULL,
	start_line INT NOT NULL,
	start_col  INT NOT NULL,
	end_line   INT NOT NULL,
	end_col    INT NOT NULL,
	message    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
)`
