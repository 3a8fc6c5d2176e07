package config

// EnvPrefix is passed to envconfig; the struct tags carry the full names.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags (tests, tooling).
const (
	EnvAppEnv         = "KURASYIT_APP_ENV"
	EnvPort           = "KURASYIT_APP_PORT"
	EnvDBDSN          = "KURASYIT_DB_DSN"
	EnvRedisURL       = "KURASYIT_REDIS_URL"
	EnvJWTSecret      = "KURASYIT_JWT_SECRET"
	EnvKurasiBaseURL  = "KURASYIT_KURASI_BASE_URL"
	EnvKurasiAPIToken = "KURASYIT_KURASI_API_TOKEN"
)
