//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// tables that survive ResetDB: the atlas revision table and the seeded settings row
var preserved = []string{"atlas_schema_revisions", "settings"}

var (
	truncateOnce sync.Once
	truncateSQL  string
	truncateErr  error
)

// ResetDB empties every ledger table, leaving the seeded settings in place.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	truncateOnce.Do(func() {
		truncateSQL, truncateErr = buildTruncate(ctx, pool)
	})
	if truncateErr != nil {
		return truncateErr
	}
	if truncateSQL == "" {
		return nil
	}
	_, err := pool.Exec(ctx, truncateSQL)
	return err
}

func buildTruncate(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	rows, err := pool.Query(ctx, `
		SELECT 'public.' || quote_ident(tablename)
		FROM pg_tables
		WHERE schemaname = 'public' AND NOT (tablename = ANY($1))`, preserved)
	if err != nil {
		return "", fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return "", err
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}
	if len(tables) == 0 {
		return "", nil
	}
	return "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE", nil
}

func CountRows(t *testing.T, db DBLike, table string, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// OutboxKinds lists event kinds in insertion order.
func OutboxKinds(t *testing.T, db DBLike) []string {
	t.Helper()

	rows, err := db.Query(context.Background(), "SELECT kind FROM outbox_events ORDER BY created_at, id")
	require.NoError(t, err)
	defer rows.Close()

	var kinds []string
	for rows.Next() {
		var k string
		require.NoError(t, rows.Scan(&k))
		kinds = append(kinds, k)
	}
	require.NoError(t, rows.Err())
	return kinds
}

// PayoutSum totals the wei booked under one reference.
func PayoutSum(t *testing.T, db DBLike, reference string) string {
	t.Helper()

	var total string
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(SUM(amount), 0)::text FROM payouts WHERE reference = $1",
		reference).Scan(&total)
	require.NoError(t, err)
	return total
}
