package envconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	GuardMemory = "memory"
	GuardRedis  = "redis"
)

type guardEnv struct {
	Backend string        `env:"SUBMISSION_GUARD" envDefault:"memory"`
	TTL     time.Duration `env:"SUBMISSION_GUARD_TTL" envDefault:"30s"`
}

type guard struct {
	raw guardEnv
}

func NewGuardConfig() (*guard, error) {
	var raw guardEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	switch raw.Backend {
	case GuardMemory, GuardRedis:
	default:
		return nil, fmt.Errorf("unknown SUBMISSION_GUARD %q", raw.Backend)
	}
	return &guard{raw: raw}, nil
}

func (cfg *guard) Backend() string    { return cfg.raw.Backend }
func (cfg *guard) TTL() time.Duration { return cfg.raw.TTL }
