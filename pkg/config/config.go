package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App         AppConfig
	Server      ServerConfig
	Catalog     CatalogConfig
	CORS        CORSConfig
	Redis       RedisConfig
	Idempotency IdempotencyConfig
	Metrics     MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.App.validateAddr(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPCART_APP_ENV" default:"dev"`
	Addr         string `envconfig:"SHOPCART_APP_ADDR" default:"127.0.0.1:3000"`
	LogLevel     string `envconfig:"SHOPCART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPCART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// ListenAddr returns the bind address, letting a bare port (PaaS style) win over the configured host.
func (a AppConfig) ListenAddr(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		return a.Addr
	}
	return ":" + port
}

func (a AppConfig) validateAddr() error {
	if _, _, err := net.SplitHostPort(a.Addr); err != nil {
		return fmt.Errorf("%s must be host:port: %w", EnvAppAddr, err)
	}
	return nil
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration `envconfig:"SHOPCART_SERVER_READ_HEADER_TIMEOUT" default:"5s"`
	ShutdownTimeout   time.Duration `envconfig:"SHOPCART_SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type CatalogConfig struct {
	BaseURL string        `envconfig:"SHOPCART_CATALOG_BASE_URL" default:"https://fakestoreapi.com"`
	Timeout time.Duration `envconfig:"SHOPCART_CATALOG_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SHOPCART_CORS_ALLOWED_ORIGINS" default:"*"`
}

// RedisConfig is optional; leaving both URL and Address empty disables idempotent replay.
type RedisConfig struct {
	URL          string        `envconfig:"SHOPCART_REDIS_URL"`
	Address      string        `envconfig:"SHOPCART_REDIS_ADDR"`
	Password     string        `envconfig:"SHOPCART_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHOPCART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHOPCART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHOPCART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHOPCART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHOPCART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHOPCART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type IdempotencyConfig struct {
	TTL time.Duration `envconfig:"SHOPCART_IDEMPOTENCY_TTL" default:"24h"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"SHOPCART_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"SHOPCART_METRICS_PATH" default:"/metrics"`
}
