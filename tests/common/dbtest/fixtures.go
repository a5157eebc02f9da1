//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Querier is satisfied by a pool or a transaction, so fixtures can be
// inserted inside a test's rolled-back transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestTemplate(t *testing.T, db Querier, name, layoutJSON string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO layout_templates (name, layout) VALUES ($1, $2::jsonb) RETURNING id",
		name, layoutJSON).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestStore(t *testing.T, db Querier, name string, active bool, templateID *uuid.UUID) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO stores (name, logo_url, is_active, template_id) VALUES ($1, $2, $3, $4) RETURNING id",
		name, "https://cdn.example.com/logo.png", active, templateID).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestCategory(t *testing.T, db Querier, storeID uuid.UUID, name string, sortOrder int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO categories (store_id, name, sort_order) VALUES ($1, $2, $3) RETURNING id",
		storeID, name, sortOrder).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestMenuItem(t *testing.T, db Querier, storeID uuid.UUID, name string, priceCents int64, sortOrder int, active bool) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO menu_items (store_id, name, price_cents, sort_order, is_active, tags) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
		storeID, name, priceCents, sortOrder, active, []string{}).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestPromotion(t *testing.T, db Querier, storeID uuid.UUID, title string, start, end time.Time, percentOff float64, active bool) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO promotions (store_id, title, start_time, end_time, discount_type, discount_value, is_active)
		 VALUES ($1, $2, $3, $4, 'percentage', $5, $6) RETURNING id`,
		storeID, title, start, end, percentOff, active).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestPlaylist(t *testing.T, db Querier, storeID uuid.UUID, name, slidesJSON string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO playlists (store_id, name, slides) VALUES ($1, $2, $3::jsonb) RETURNING id",
		storeID, name, slidesJSON).Scan(&id)
	require.NoError(t, err)
	return id
}

func SetDefaultPlaylist(t *testing.T, db Querier, storeID, playlistID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE stores SET default_playlist_id = $2 WHERE id = $1", storeID, playlistID)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO layout_templates (name, layout) VALUES
		    ('Default', '{}'::jsonb)
		ON CONFLICT DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
