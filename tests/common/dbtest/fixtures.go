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

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, role) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		userID, email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestActivity(t *testing.T, db DBLike, coachID uuid.UUID, title string) uuid.UUID {
	t.Helper()

	activityID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO activities (id, coach_id, title) VALUES ($1, $2, $3)",
		activityID, coachID, title)
	require.NoError(t, err)

	return activityID
}

// CreateTestReservation inserts a row directly in the given status, skipping the state machine.
func CreateTestReservation(t *testing.T, db DBLike, memberID, activityID uuid.UUID, status string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	now := time.Now()
	_, err := db.Exec(context.Background(), `
		INSERT INTO reservations (id, member_id, activity_id, day_of_week, date, start_time, end_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, 'monday', DATE '2025-03-03', '10:00', '11:00', $4, $5, $5)`,
		reservationID, memberID, activityID, status, now)
	require.NoError(t, err)

	return reservationID
}

// SeedReferenceData inserts the admin that receives contact and review alerts.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, email, role) VALUES
		    (gen_random_uuid(), 'admin@example.com', 'admin')
		ON CONFLICT (email) DO NOTHING;
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
