package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Reads values from a yaml file", func(t *testing.T) {
		// Given: a config file with a few overrides
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yml")
		content := "log-level: debug\nhttp-port: \"8080\"\nredis:\n  host: redis\ngame:\n  ttl: 5m\nbot:\n  mark: O\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf := MustLoad(path)

		// Then: file values win and the rest fall back to defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, "redis:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 5*time.Minute, conf.Game.TTL)
		assert.Equal(t, "O", conf.Bot.Mark)
		assert.NoError(t, conf.Validate())
	})

	t.Run("Empty path uses defaults", func(t *testing.T) {
		conf := MustLoad("")

		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, time.Hour, conf.Game.TTL)
		assert.Equal(t, "X", conf.Bot.Mark)
	})

	t.Run("Missing file panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func TestResolvePath(t *testing.T) {
	t.Run("Explicit path wins", func(t *testing.T) {
		assert.Equal(t, "/etc/custom.yml", ResolvePath("/etc/custom.yml", t.TempDir()))
	})

	t.Run("Local config.yml is found", func(t *testing.T) {
		dir := t.TempDir()
		local := filepath.Join(dir, "config.yml")
		require.NoError(t, os.WriteFile(local, []byte("log-level: info\n"), 0o600))

		assert.Equal(t, local, ResolvePath("", dir))
	})
}

func TestConfig_Validate(t *testing.T) {
	conf := &Config{LogLevel: "verbose"}

	assert.ErrorIs(t, conf.Validate(), ErrInvalidLogLevel)
}
