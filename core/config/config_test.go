package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"vapor-store/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "mysql", cfg.Database.Driver)
		assert.Equal(t, 3306, cfg.Database.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "imports", cfg.Storage.Bucket)
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "sqlite")
		t.Setenv("DATABASE_NAME", "store.db")
		t.Setenv("LOG_FORMAT", "console")

		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "store.db", cfg.Database.Name)
		assert.Equal(t, "console", cfg.Log.Format)
	})

	t.Run("DotEnv", func(t *testing.T) {
		dir := t.TempDir()
		// Register cleanup for the variable godotenv will set.
		t.Setenv("SERVER_PORT", "")
		err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9090\n"), 0o600)
		require.NoError(t, err)

		cfg, err := config.LoadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
	})
}
