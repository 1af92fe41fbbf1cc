package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type apiEnv struct {
	BaseURL      string        `env:"API_BASE_URL,required,notEmpty"`
	SearchPath   string        `env:"API_SEARCH_PATH" envDefault:"/api/search"`
	CartPath     string        `env:"API_CART_PATH" envDefault:"/api/cart/items"`
	FinancePath  string        `env:"API_FINANCE_PATH" envDefault:"/api/finance/customers"`
	Timeout      time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	ServiceToken string        `env:"API_SERVICE_TOKEN"`
	ImageOrigin  string        `env:"IMAGE_ORIGIN"`
}

type api struct {
	raw apiEnv
}

func NewAPIConfig() (*api, error) {
	var raw apiEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	if raw.ImageOrigin == "" {
		raw.ImageOrigin = raw.BaseURL
	}
	return &api{raw: raw}, nil
}

func (cfg *api) BaseURL() string        { return cfg.raw.BaseURL }
func (cfg *api) SearchPath() string     { return cfg.raw.SearchPath }
func (cfg *api) CartPath() string       { return cfg.raw.CartPath }
func (cfg *api) FinancePath() string    { return cfg.raw.FinancePath }
func (cfg *api) Timeout() time.Duration { return cfg.raw.Timeout }
func (cfg *api) ServiceToken() string   { return cfg.raw.ServiceToken }
func (cfg *api) ImageOrigin() string    { return cfg.raw.ImageOrigin }
