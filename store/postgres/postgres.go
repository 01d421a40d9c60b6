// Package postgres is an IssueStore backend for teams running a
// Postgres-based findings warehouse (§4.10).
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sentineltools/commentcode"
	"github.com/sentineltools/commentcode/store"
)

// Store writes issues to a commentcode_issues table via a pooled pgx
// connection.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to connString and ensures the commentcode_issues table
// exists.
func Open(ctx context.Context, connString string) (*Store, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("store/postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, store.CreateTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store/postgres: create table: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Save writes every issue from one run in a single transaction.
func (s *Store) Save(ctx context.Context, run commentcode.RunMetadata, issues []commentcode.Issue) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("store/postgres: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, iss := range issues {
		_, err := tx.Exec(ctx, `
			INSERT INTO commentcode_issues
				(run_id, rule_key, file, start_line, start_col, end_line, end_col, message, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())`,
			run.ID.String(), iss.RuleKey, iss.File,
			iss.Span.StartLine, iss.Span.StartCol, iss.Span.EndLine, iss.Span.EndCol,
			iss.Message,
		)
		if err != nil {
			return fmt.Errorf("store/postgres: insert: %w", err)
		}
	}
	return tx.Commit(ctx)
}

// Recent returns the n most recently created issues across all runs.
func (s *Store) Recent(ctx context.Context, n int) ([]store.StoredIssue, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT run_id, rule_key, file, start_line, start_col, end_line, end_col, message, created_at
		FROM commentcode_issues
		ORDER BY created_at DESC
		LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("store/postgres: query: %w", err)
	}
	defer rows.Close()

	var out []store.StoredIssue
	for rows.Next() {
		var si store.StoredIssue
		var ruleKey, file, message string
		if err := rows.Scan(&si.RunID, &ruleKey, &file,
			&si.Issue.Span.StartLine, &si.Issue.Span.StartCol,
			&si.Issue.Span.EndLine, &si.Issue.Span.EndCol,
			&message, &si.CreatedAt); err != nil {
			return nil, fmt.Errorf("store/postgres: scan: %w", err)
		}
		si.Issue.RuleKey = ruleKey
		si.Issue.File = file
		si.Issue.Message = message
		out = append(out, si)
	}
	return out, rows.Err()
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
