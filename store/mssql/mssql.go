// Package mssql is an IssueStore backend for teams standardized on SQL
// Server (§4.10): a DSN-prefix-dispatched connector (password login vs
// Azure AD) with an optional SOCKS5 proxy dialer.
package mssql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	mssql "github.com/microsoft/go-mssqldb"
	"github.com/microsoft/go-mssqldb/azuread"
	"golang.org/x/net/proxy"

	"github.com/sentineltools/commentcode"
	"github.com/sentineltools/commentcode/store"
)

// Store writes issues to a commentcode_issues table via database/sql
// over go-mssqldb.
type Store struct {
	db *sql.DB
}

// openSocks5 dispatches on the DSN's URI scheme — sqlserver:// for
// password login, azuresql:// for Azure AD login — and, when
// $COMMENTCODE_SOCKS is set, routes the connection through a SOCKS5
// proxy.
func openSocks5(dsn string) (*sql.DB, error) {
	var connector *mssql.Connector
	var err error

	switch {
	case strings.HasPrefix(dsn, "azuresql://"):
		connector, err = azuread.NewConnector(dsn)
	case strings.HasPrefix(dsn, "sqlserver://"):
		connector, err = mssql.NewConnector(dsn)
	default:
		return nil, errors.New("store/mssql: expected URI-style dsn; sqlserver:// for password login or azuresql:// for AD login")
	}
	if err != nil {
		return nil, fmt.Errorf("store/mssql: %w", err)
	}

	if socksAddr := os.Getenv("COMMENTCODE_SOCKS"); socksAddr != "" {
		dialer, err := proxy.SOCKS5("tcp", socksAddr, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("store/mssql: could not connect with SOCKS5 to %s: %w", socksAddr, err)
		}
		connector.Dialer = dialer.(proxy.ContextDialer)
	}

	return sql.OpenDB(connector), nil
}

// Open connects to connString and ensures the commentcode_issues table
// exists.
func Open(ctx context.Context, connString string) (*Store, error) {
	db, err := openSocks5(connString)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, mssqlCreateTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("store/mssql: create table: %w", err)
	}
	return &Store{db: db}, nil
}

// mssqlCreateTableSQL mirrors store.CreateTableSQL in T-SQL: DATETIME2
// in place of TIMESTAMP, and an explicit IF NOT EXISTS guard since
// SQL Server lacks CREATE TABLE IF NOT EXISTS.
const mssqlCreateTableSQL = `
IF NOT EXISTS (SELECT * FROM sysobjects WHERE name='commentcode_issues' AND xtype='U')
CREATE TABLE commentcode_issues (
	run_id     NVARCHAR(64) NOT NULL,
	rule_key   NVARCHAR(32) NOT NULL,
	file       NVARCHAR(1024) NOT NULL,
	start_line INT NOT NULL,
	start_col  INT NOT NULL,
	end_line   INT NOT NULL,
	end_col    INT NOT NULL,
	message    NVARCHAR(MAX) NOT NULL,
	created_at DATETIME2 NOT NULL
)`

// Save writes every issue from one run inside a single transaction.
func (s *Store) Save(ctx context.Context, run commentcode.RunMetadata, issues []commentcode.Issue) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store/mssql: %w", err)
	}
	defer tx.Rollback()

	for _, iss := range issues {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO commentcode_issues
				(run_id, rule_key, file, start_line, start_col, end_line, end_col, message, created_at)
			VALUES (@p1, @p2, @p3, @p4, @p5, @p6, @p7, @p8, SYSUTCDATETIME())`,
			run.ID.String(), iss.RuleKey, iss.File,
			iss.Span.StartLine, iss.Span.StartCol, iss.Span.EndLine, iss.Span.EndCol,
			iss.Message,
		)
		if err != nil {
			return fmt.Errorf("store/mssql: insert: %w", err)
		}
	}
	return tx.Commit()
}

// Recent returns the n most recently created issues across all runs.
func (s *Store) Recent(ctx context.Context, n int) ([]store.StoredIssue, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT TOP (@p1) run_id, rule_key, file, start_line, start_col, end_line, end_col, message, created_at
		FROM commentcode_issues
		ORDER BY created_at DESC`, n)
	if err != nil {
		return nil, fmt.Errorf("store/mssql: query: %w", err)
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
			return nil, fmt.Errorf("store/mssql: scan: %w", err)
		}
		si.Issue.RuleKey = ruleKey
		si.Issue.File = file
		si.Issue.Message = message
		out = append(out, si)
	}
	return out, rows.Err()
}

// Close releases the underlying *sql.DB.
func (s *Store) Close() error {
	return s.db.Close()
}
