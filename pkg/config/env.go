package config

const EnvPrefix = "SHOPCART"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv       = "SHOPCART_APP_ENV"
	EnvAppAddr      = "SHOPCART_APP_ADDR"
	EnvLogLevel     = "SHOPCART_LOG_LEVEL"
	EnvLogWarnStack = "SHOPCART_LOG_WARN_STACK"

	EnvServerReadHeaderTimeout = "SHOPCART_SERVER_READ_HEADER_TIMEOUT"
	EnvServerShutdownTimeout   = "SHOPCART_SERVER_SHUTDOWN_TIMEOUT"

	EnvCatalogBaseURL = "SHOPCART_CATALOG_BASE_URL"
	EnvCatalogTimeout = "SHOPCART_CATALOG_TIMEOUT"

	EnvCORSAllowedOrigins = "SHOPCART_CORS_ALLOWED_ORIGINS"

	EnvRedisURL  = "SHOPCART_REDIS_URL"
	EnvRedisAddr = "SHOPCART_REDIS_ADDR"

	EnvIdempotencyTTL = "SHOPCART_IDEMPOTENCY_TTL"

	EnvMetricsEnabled = "SHOPCART_METRICS_ENABLED"
	EnvMetricsPath    = "SHOPCART_METRICS_PATH"

	// EnvPort is the platform-provided port that overrides EnvAppAddr.
	EnvPort = "PORT"
)
