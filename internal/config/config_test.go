package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Workers:  4,
		Telegram: Telegram{Enabled: true, Token: "tg"},
		Store:    Store{Driver: DriverRedis},
	}
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		want   error
	}{
		{"no transport", func(c *Config) { c.Telegram.Enabled = false }, ErrNoTransportEnabled},
		{"telegram token", func(c *Config) { c.Telegram.Token = "" }, ErrMissingEnvironmentVariables},
		{"vk token", func(c *Config) { c.VK.Enabled = true }, ErrMissingEnvironmentVariables},
		{"postgres dsn", func(c *Config) { c.Store.Driver = DriverPostgres }, ErrMissingEnvironmentVariables},
		{"unknown driver", func(c *Config) { c.Store.Driver = "etcd" }, ErrUnknownStoreDriver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestValidateKeepsWorkers(t *testing.T) {
	cfg := validConfig()
	cfg.Workers = 0

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 0, cfg.Workers)
}

func TestLoadClampsWorkers(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TELEGRAM_TOKEN", "secret")
	t.Setenv("STORE_DRIVER", DriverMemory)
	t.Setenv("WORKERS", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Workers)
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TELEGRAM_TOKEN", "secret")
	t.Setenv("STORE_DRIVER", DriverMemory)
	t.Setenv("ARCHIVE_DIR", "/data/archive")

	cfg, err := Load()
	assert.NoError(t, err)
	if assert.NotNil(t, cfg) {
		assert.Equal(t, "secret", cfg.Telegram.Token)
		assert.Equal(t, DriverMemory, cfg.Store.Driver)
		assert.Equal(t, "/data/archive", cfg.ArchiveDir)
		assert.Equal(t, "@every 1m", cfg.Monitor.Schedule)
	}
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
