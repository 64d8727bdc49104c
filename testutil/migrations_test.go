package testutil_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/migrations"
	"github.com/pkordes/trip-planner/backend/testutil"
)

// TestMigrations runs the schema up, checks the table, its index and its
// constraints, then rolls everything back and checks the table is gone.
func TestMigrations(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := context.Background()

	provider, err := migrations.NewProvider(db)
	require.NoError(t, err, "create goose provider")

	// Another package's TestMain may already have migrated this database.
	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "initial reset")

	applied, err := migrations.Up(ctx, db)
	require.NoError(t, err, "goose up")
	assert.Equal(t, []int64{1}, applied)

	assert.True(t, exists(t, db, `SELECT 1 FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name = $1`, "trip_plans"))
	assert.True(t, exists(t, db, `SELECT 1 FROM pg_indexes
		WHERE schemaname = 'public' AND indexname = $1`, "trip_plans_created_at_idx"))

	t.Run("constraints reject out of bounds rows", func(t *testing.T) {
		for _, row := range []struct {
			name        string
			title, dest string
			days        int
			budget      float64
		}{
			{"days zero", "Goa", "Goa", 0, 1},
			{"days over a year", "Goa", "Goa", 366, 1},
			{"negative budget", "Goa", "Goa", 5, -1},
			{"empty title", "", "Goa", 5, 1},
		} {
			_, err := db.ExecContext(ctx,
				`INSERT INTO trip_plans (title, destination, days, budget) VALUES ($1, $2, $3, $4)`,
				row.title, row.dest, row.days, row.budget)
			assert.Error(t, err, row.name)
		}
	})

	// Running Up again is a no-op.
	applied, err = migrations.Up(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, applied)

	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "goose down-to 0")
	assert.False(t, exists(t, db, `SELECT 1 FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name = $1`, "trip_plans"))

	// Leave the schema in place for any package that runs after this one.
	_, err = migrations.Up(ctx, db)
	require.NoError(t, err)
}

func exists(t *testing.T, db *sql.DB, query, arg string) bool {
	t.Helper()
	var found bool
	err := db.QueryRowContext(context.Background(), "SELECT EXISTS ("+query+")", arg).Scan(&found)
	require.NoError(t, err)
	return found
}
