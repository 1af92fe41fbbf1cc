package config

import "time"

type Server interface {
	Address() string
	ReadTimeout() time.Duration
	WriteTimeout() time.Duration
	ShutdownTimeout() time.Duration
}

type Logger interface {
	Service() string
	Env() string
	Level() string
	File() string
}

type API interface {
	BaseURL() string
	SearchPath() string
	CartPath() string
	FinancePath() string
	Timeout() time.Duration
	ServiceToken() string
	ImageOrigin() string
}

type Guard interface {
	Backend() string
	TTL() time.Duration
}

type Redis interface {
	Addr() string
	Password() string
	DB() int
	KeyPrefix() string
}
