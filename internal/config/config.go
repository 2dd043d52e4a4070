package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	localConfigFile = "config.yml"
	xdgConfigFile   = "tictactoe/config.yml"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis      Redis  `yaml:"redis"`
	Game       Game   `yaml:"game"`
	Bot        Bot    `yaml:"bot"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Game struct {
	// TTL bounds how long an abandoned session stays in redis.
	TTL time.Duration `yaml:"ttl" env:"GAME_TTL" env-default:"1h"`
}

type Bot struct {
	// Mark the bot plays in console games.
	Mark string `yaml:"mark" env:"BOT_MARK" env-default:"X"`
}

// MustLoad - load all configurations from path, or from the environment only
// when path is empty.
func MustLoad(path string) *Config {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load config from environment: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// ResolvePath picks the config file: the explicit path if set, then
// ./config.yml, then tictactoe/config.yml in the XDG config dirs. An empty
// result means defaults and environment only.
func ResolvePath(explicit, baseDir string) string {
	if explicit != "" {
		return explicit
	}

	local := filepath.Join(baseDir, localConfigFile)
	if _, err := os.Stat(local); err == nil {
		return local
	}

	found, err := xdg.SearchConfigFile(xdgConfigFile)
	if err != nil {
		return ""
	}

	return found
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

var ErrInvalidLogLevel = errors.New("invalid log level")

// Validate checks values cleanenv cannot check on its own.
func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}

	return nil
}
