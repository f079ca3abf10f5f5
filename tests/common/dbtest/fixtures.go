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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestBrand(t *testing.T, db DBLike, userID uuid.UUID, name, category string) uuid.UUID {
	t.Helper()

	brandID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO brands (id, user_id, name, category) VALUES ($1, $2, $3, $4) ON CONFLICT (user_id, name) DO NOTHING",
		brandID, userID, name, category)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM brands WHERE user_id = $1 AND name = $2", userID, name).Scan(&brandID)
	}

	return brandID
}

func CreateTestDeal(t *testing.T, db DBLike, userID, brandID uuid.UUID, title string) uuid.UUID {
	t.Helper()

	dealID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO deals (id, user_id, brand_id, title, status, amount_cents, currency) VALUES ($1, $2, $3, $4, 'AGREED', 100000, 'USD')",
		dealID, userID, brandID, title)
	require.NoError(t, err)

	return dealID
}

func SetDealExclusivity(t *testing.T, db DBLike, dealID uuid.UUID, scope, category string, start, end time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`UPDATE deals SET exclusivity_scope = $2, exclusivity_category = NULLIF($3, ''),
		 exclusivity_start_date = $4, exclusivity_end_date = $5 WHERE id = $1`,
		dealID, scope, category, start, end)
	require.NoError(t, err)
}

func CreateTestDeliverable(t *testing.T, db DBLike, dealID uuid.UUID, title string, scheduledAt *time.Time) uuid.UUID {
	t.Helper()

	deliverableID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO deliverables (id, deal_id, title, scheduled_at) VALUES ($1, $2, $3, $4)",
		deliverableID, dealID, title, scheduledAt)
	require.NoError(t, err)

	return deliverableID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
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

	return nil
}
