package sqlite_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatingPositionRepository_SaveAndGet(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "drawerpane.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewFloatingPositionRepository(db)

	missing, err := repo.Get(ctx, "terminal")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Save(ctx, entity.NewFloatingPosition("terminal", entity.Point{X: 10.5, Y: 20})))

	got, err := repo.Get(ctx, "terminal")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.ItemID("terminal"), got.ItemID)
	assert.Equal(t, entity.Point{X: 10.5, Y: 20}, got.Point())
	assert.WithinDuration(t, time.Now(), got.UpdatedAt, time.Minute)
}

func TestFloatingPositionRepository_SaveReplaces(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "drawerpane.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewFloatingPositionRepository(db)
	require.NoError(t, repo.Save(ctx, entity.NewFloatingPosition("terminal", entity.Point{X: 1, Y: 1})))
	require.NoError(t, repo.Save(ctx, entity.NewFloatingPosition("terminal", entity.Point{X: 7, Y: 8})))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, entity.Point{X: 7, Y: 8}, all[0].Point())
}

func TestFloatingPositionRepository_SaveNil(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "drawerpane.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	err = sqlite.NewFloatingPositionRepository(db).Save(ctx, nil)
	require.ErrorIs(t, err, entity.ErrIllegalArgument)
}

func TestFloatingPositionRepository_GetAllOrderedAndDelete(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "drawerpane.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewFloatingPositionRepository(db)
	for _, id := range []entity.ItemID{"outline", "console", "problems"} {
		require.NoError(t, repo.Save(ctx, entity.NewFloatingPosition(id, entity.Point{X: 1, Y: 2})))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, entity.ItemID("console"), all[0].ItemID)
	assert.Equal(t, entity.ItemID("outline"), all[1].ItemID)
	assert.Equal(t, entity.ItemID("problems"), all[2].ItemID)

	require.NoError(t, repo.Delete(ctx, "outline"))
	require.NoError(t, repo.Delete(ctx, "never-saved"))
	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.DeleteAll(ctx))
	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMigrations_AreIdempotent(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "drawerpane.sqlite")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	version, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
	require.NoError(t, db.Close())

	db, err = sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.RunMigrations(ctx, db))

	version, err = sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestNewConnection_UsesWAL(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "nested", "drawerpane.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var mode string
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	require.Error(t, err)
}
