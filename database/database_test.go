package database

import (
	"testing"

	"movie_catalog/config"
	"movie_catalog/model"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

func TestConnectSqliteMigratesAndSeeds(t *testing.T) {
	s := config.Settings{
		DBDriver:       "sqlite",
		DBPath:         "file::memory:",
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
		DBSeed:         true,
	}

	db, err := Connect(s, hclog.NewNullLogger())
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&model.Director{}))
	assert.True(t, db.Migrator().HasTable(&model.Movie{}))

	var directors, movies int64
	require.NoError(t, db.Model(&model.Director{}).Count(&directors).Error)
	require.NoError(t, db.Model(&model.Movie{}).Count(&movies).Error)
	assert.Equal(t, int64(len(seedDirectors)), directors)
	assert.Equal(t, int64(5), movies)
}

func TestSeedDataIsIdempotent(t *testing.T) {
	db, err := Open(sqlite.Open("file::memory:"), nil)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(db))

	require.NoError(t, SeedData(db))
	require.NoError(t, SeedData(db))

	var movies int64
	require.NoError(t, db.Model(&model.Movie{}).Count(&movies).Error)
	assert.Equal(t, int64(5), movies)
}

func TestMigrateCreatesUniqueUIDIndex(t *testing.T) {
	db, err := Open(sqlite.Open("file::memory:"), nil)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(db))

	require.NoError(t, db.Create(&model.Director{Name: "A", UID: 1}).Error)
	err = db.Create(&model.Director{Name: "B", UID: 1}).Error
	assert.Error(t, err)
}
