package migrationpg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/muhammadchandra19/orderflow/pkg/logger"
	mockPg "github.com/muhammadchandra19/orderflow/pkg/postgresql/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx records commit and rollback; other pgx.Tx methods are not used.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rolledBack = true
	return nil
}

func writeMigrations(t *testing.T) string {
	dir := t.TempDir()
	files := map[string]string{
		"001_venues.up.sql":     "CREATE TABLE venues (venue_id TEXT PRIMARY KEY);",
		"001_venues.down.sql":   "DROP TABLE venues;",
		"002_listings.up.sql":   "CREATE TABLE listings (symbol TEXT);",
		"002_listings.down.sql": "DROP TABLE listings;",
		"README.md":             "ignored",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func TestRunner_LoadMigrations(t *testing.T) {
	r := NewRunner(nil, logger.NewNop(), Config{MigrationDir: writeMigrations(t)})

	migrations, err := r.LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, Migration{
		ID:      "001_venues",
		Name:    "venues",
		UpSQL:   "CREATE TABLE venues (venue_id TEXT PRIMARY KEY);",
		DownSQL: "DROP TABLE venues;",
	}, migrations[0])
	assert.Equal(t, "002_listings", migrations[1].ID)
}

func TestRunner_MigrateUp(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := mockPg.NewMockPostgreSQLClient(ctrl)
	rows := mockPg.NewMockRowsInterface(ctrl)
	tx := &fakeTx{}

	db.EXPECT().Query(ctx, "SELECT id FROM public.schema_migrations ORDER BY applied_at").Return(rows, nil)
	gomock.InOrder(
		rows.EXPECT().Next().Return(true),
		rows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
			*dest[0].(*string) = "001_venues"
			return nil
		}),
		rows.EXPECT().Next().Return(false),
	)
	rows.EXPECT().Err().Return(nil)
	rows.EXPECT().Close()

	db.EXPECT().Begin(ctx).Return(tx, nil)
	db.EXPECT().Exec(gomock.Any(), "CREATE TABLE listings (symbol TEXT);").Return(pgconn.CommandTag{}, nil)
	db.EXPECT().Exec(gomock.Any(),
		"INSERT INTO public.schema_migrations (id, name, applied_at) VALUES ($1, $2, NOW())",
		"002_listings", "listings",
	).Return(pgconn.CommandTag{}, nil)

	r := NewRunner(db, logger.NewNop(), Config{MigrationDir: writeMigrations(t)})
	require.NoError(t, r.MigrateUp(ctx, 0))
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestRunner_MigrateDownRequiresSteps(t *testing.T) {
	r := NewRunner(nil, logger.NewNop(), Config{})
	assert.Error(t, r.MigrateDown(context.Background(), 0))
}
