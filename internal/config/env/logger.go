package envconfig

import "github.com/caarlos0/env/v11"

type loggerEnv struct {
	Service string `env:"SERVICE_NAME" envDefault:"euroline-gateway"`
	Env     string `env:"APP_ENV" envDefault:"dev"`
	Level   string `env:"LOGGER_LEVEL" envDefault:"info"`
	File    string `env:"LOG_FILE"`
}

type logger struct {
	raw loggerEnv
}

func NewLoggerConfig() (*logger, error) {
	var raw loggerEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &logger{raw: raw}, nil
}

func (cfg *logger) Service() string { return cfg.raw.Service }
func (cfg *logger) Env() string     { return cfg.raw.Env }
func (cfg *logger) Level() string   { return cfg.raw.Level }
func (cfg *logger) File() string    { return cfg.raw.File }
