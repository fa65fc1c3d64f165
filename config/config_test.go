package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "API_BASE_PATH", "DB_DRIVER", "DB_PORT", "DB_SEED", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8000", s.Port)
	assert.Equal(t, "/api", s.BasePath)
	assert.Equal(t, "postgres", s.DBDriver)
	assert.Equal(t, 5432, s.DBPort)
	assert.False(t, s.DBSeed)
	assert.Equal(t, 10*time.Second, s.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/catalog.db")
	t.Setenv("DB_SEED", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", s.DBDriver)
	assert.Equal(t, "/tmp/catalog.db", s.DBPath)
	assert.True(t, s.DBSeed)
	assert.Equal(t, 3*time.Second, s.ShutdownTimeout)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	_, err := Load()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	s := Settings{DBHost: "db", DBPort: 5433, DBUser: "u", DBPassword: "p", DBName: "movies", DBSSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=movies sslmode=disable", s.DSN())
}
