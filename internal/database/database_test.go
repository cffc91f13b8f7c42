package database_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/ahara/backend/config"
	"github.com/pageza/ahara/backend/internal/database"
	"github.com/pageza/ahara/backend/internal/logger"
	"github.com/pageza/ahara/backend/internal/models"
	"github.com/pageza/ahara/backend/internal/testhelpers"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	cfg := config.DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "ahara.db")}
	db, err := database.Open(cfg, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.RunMigrations(context.Background(), db, "", logger.NewNop()))
	for _, m := range database.Models() {
		assert.True(t, db.Migrator().HasTable(m))
	}
	assert.NoError(t, database.Ping(context.Background(), db))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := database.Open(config.DatabaseConfig{Driver: "mysql"}, logger.NewNop())
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestMigratorFilesSkipsRollbacks(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"000002_create_foods.sql",
		"000001_create_health_profiles.sql",
		"000001_create_health_profiles_rollback.sql",
		"README.md",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- noop"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.sql"), 0o700))

	files, err := database.NewMigrator(nil, dir, logger.NewNop()).Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_create_health_profiles.sql", "000002_create_foods.sql"}, files)
}

func TestMigratorFilesMissingDir(t *testing.T) {
	_, err := database.NewMigrator(nil, filepath.Join(t.TempDir(), "absent"), logger.NewNop()).Files()
	assert.Error(t, err)
}

func TestMigratorRollbackAndReapply(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	ctx := context.Background()
	migrator := database.NewMigrator(sqlDB, testhelpers.MigrationsDir(t), logger.NewNop())

	name, err := migrator.Rollback(ctx)
	require.NoError(t, err)
	assert.Equal(t, "000003_create_food_recommendations.sql", name)
	assert.False(t, db.Migrator().HasTable(&models.Recommendation{}))

	applied, err := migrator.Up(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.True(t, db.Migrator().HasTable(&models.Recommendation{}))

	applied, err = migrator.Up(ctx)
	require.NoError(t, err)
	assert.Zero(t, applied)
}

func TestRedisOptions(t *testing.T) {
	opts, err := database.RedisOptions(config.RedisConfig{Host: "cache", Port: "6380", Password: "pw", DB: 2})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 2, opts.DB)

	opts, err = database.RedisOptions(config.RedisConfig{URL: "redis://:secret@redis.internal:6379/1", Host: "ignored", Port: "1"})
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 1, opts.DB)

	_, err = database.RedisOptions(config.RedisConfig{URL: "http://not-redis"})
	assert.Error(t, err)
}

func TestNewRedisClientUnreachable(t *testing.T) {
	_, err := database.NewRedisClient(config.RedisConfig{Host: "127.0.0.1", Port: "1"}, logger.NewNop())
	assert.ErrorContains(t, err, "failed to connect to Redis")
}
