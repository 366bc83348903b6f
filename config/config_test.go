package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"go-oms/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DB_DSN", "postgres://localhost/oms")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, "postgres", cfg.DBDriver)
		assert.Equal(t, "postgres://localhost/oms", cfg.DSN)
		assert.Equal(t, config.NestedTxSavepoints, cfg.NestedTx)
		assert.Equal(t, "go-oms", cfg.ServiceName)
		assert.Empty(t, cfg.OtelCollector)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("DB_DSN", ":memory:")
		t.Setenv("DB_NESTED_TX", "none")
		t.Setenv("SERVICE_NAME", "oms-test")
		t.Setenv("OTEL_COLLECTOR_ADDR", "localhost:4317")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, &config.Config{
			DBDriver:      "sqlite",
			DSN:           ":memory:",
			NestedTx:      config.NestedTxNone,
			ServiceName:   "oms-test",
			OtelCollector: "localhost:4317",
		}, cfg)
	})

	t.Run("from env file", func(t *testing.T) {
		t.Setenv("DB_DSN", "")
		os.Unsetenv("DB_DSN")
		file := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(file, []byte("DB_DRIVER=sqlite\nDB_DSN=file.db\n"), 0o600))
		t.Cleanup(func() {
			os.Unsetenv("DB_DRIVER")
			os.Unsetenv("DB_DSN")
		})

		cfg, err := config.Load(file)

		require.NoError(t, err)
		assert.Equal(t, "sqlite", cfg.DBDriver)
		assert.Equal(t, "file.db", cfg.DSN)
	})

	t.Run("missing env file is ignored", func(t *testing.T) {
		t.Setenv("DB_DSN", "x")

		_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

		assert.NoError(t, err)
	})

	t.Run("missing dsn", func(t *testing.T) {
		t.Setenv("DB_DSN", "")

		_, err := config.Load()

		assert.ErrorIs(t, err, config.ErrDSNRequired)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{DBDriver: "postgres", DSN: "dsn", NestedTx: "none", ServiceName: "svc"}
	}

	tests := []struct {
		name   string
		modify func(c *config.Config)
		want   error
	}{
		{"valid", func(c *config.Config) {}, nil},
		{"unknown driver", func(c *config.Config) { c.DBDriver = "mysql" }, config.ErrInvalidDBDriver},
		{"empty dsn", func(c *config.Config) { c.DSN = "" }, config.ErrDSNRequired},
		{"unknown nested tx", func(c *config.Config) { c.NestedTx = "always" }, config.ErrInvalidNestedTx},
		{"empty service name", func(c *config.Config) { c.ServiceName = "" }, config.ErrServiceNameEmpty},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.modify(c)
			assert.ErrorIs(t, c.Validate(), tc.want)
		})
	}
}

func TestLoadNormalizesValues(t *testing.T) {
	t.Setenv("DB_DRIVER", " SQLite ")
	t.Setenv("DB_DSN", "  :memory:  ")
	t.Setenv("DB_NESTED_TX", "None")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, ":memory:", cfg.DSN)
	assert.Equal(t, config.NestedTxNone, cfg.NestedTx)
}
