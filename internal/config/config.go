package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/bexiiiii/euroline-sub001/internal/config/env"
)

var cfg *config

type config struct {
	Server Server
	Logger Logger
	API    API
	Guard  Guard
	Redis  Redis
}

// Load reads configuration from the environment, and from .env files when
// APP_ENV=local.
func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	apiCfg, err := envconfig.NewAPIConfig()
	if err != nil {
		return fmt.Errorf("%s API: %w", op, err)
	}

	guardCfg, err := envconfig.NewGuardConfig()
	if err != nil {
		return fmt.Errorf("%s Guard: %w", op, err)
	}

	redisCfg, err := envconfig.NewRedisConfig()
	if err != nil {
		return fmt.Errorf("%s Redis: %w", op, err)
	}

	cfg = &config{
		Server: serverCfg,
		Logger: loggerCfg,
		API:    apiCfg,
		Guard:  guardCfg,
		Redis:  redisCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
