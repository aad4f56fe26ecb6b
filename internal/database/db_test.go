package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmnguyen/vietlearn/internal/config"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.DatabaseConfig
		wantDriver string
	}{
		{
			name: "opens sqlite connection",
			cfg: config.DatabaseConfig{
				Driver: "sqlite3",
				DSN:    ":memory:",
			},
			wantDriver: "sqlite3",
		},
		{
			name: "opens mysql connection with pool settings",
			cfg: config.DatabaseConfig{
				Driver:          "mysql",
				DSN:             "user:pass@tcp(localhost:3306)/vietlearn?parseTime=true",
				MaxOpenConns:    25,
				MaxIdleConns:    5,
				ConnMaxLifetime: 300,
			},
			wantDriver: "mysql",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Open(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, got)
			defer got.Close()

			assert.Equal(t, tt.wantDriver, got.DriverName())
		})
	}
}

func TestConnect(t *testing.T) {
	ctx := context.Background()
	cfg := config.DatabaseConfig{
		Driver: "sqlite3",
		DSN:    filepath.Join(t.TempDir(), "app.db"),
	}

	db, err := Connect(ctx, cfg)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.GetContext(ctx, &count, "SELECT COUNT(*) FROM words"))
	assert.Equal(t, 0, count)
	require.NoError(t, db.GetContext(ctx, &count, "SELECT COUNT(*) FROM grammar"))
	assert.Equal(t, 0, count)
}

func TestInit_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := Open(config.DatabaseConfig{Driver: "sqlite3", DSN: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Init(ctx, db))
	require.NoError(t, Init(ctx, db))
}
