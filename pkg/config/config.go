package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Kurasi       KurasiConfig
	GCP          GCPConfig
	PubSub       PubSubConfig
	Outbox       OutboxConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("database DSN is required")
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"KURASYIT_APP_ENV" required:"true"`
	Port         string `envconfig:"KURASYIT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"KURASYIT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"KURASYIT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"KURASYIT_DB_DSN"`
	Driver string `envconfig:"KURASYIT_DB_DRIVER" default:"postgres"`

	MaxOpenConns    int           `envconfig:"KURASYIT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"KURASYIT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"KURASYIT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"KURASYIT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"KURASYIT_REDIS_URL"`
	Address      string        `envconfig:"KURASYIT_REDIS_ADDR"`
	Password     string        `envconfig:"KURASYIT_REDIS_PASSWORD"`
	DB           int           `envconfig:"KURASYIT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"KURASYIT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"KURASYIT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"KURASYIT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"KURASYIT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"KURASYIT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"KURASYIT_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"KURASYIT_JWT_ISSUER" default:"kurasyit"`
	ExpirationMinutes      int    `envconfig:"KURASYIT_JWT_EXPIRATION_MINUTES" default:"60"`
	RefreshTokenTTLMinutes int    `envconfig:"KURASYIT_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"KURASYIT_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"KURASYIT_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"KURASYIT_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"KURASYIT_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"KURASYIT_ARGON_KEY_LEN" default:"32"`
}

// KurasiConfig describes the upstream carrier API.
type KurasiConfig struct {
	BaseURL         string        `envconfig:"KURASYIT_KURASI_BASE_URL" required:"true"`
	APIToken        string        `envconfig:"KURASYIT_KURASI_API_TOKEN" required:"true"`
	Timeout         time.Duration `envconfig:"KURASYIT_KURASI_TIMEOUT" default:"30s"`
	BulkListTimeout time.Duration `envconfig:"KURASYIT_KURASI_BULK_LIST_TIMEOUT" default:"120s"`
	OriginCountry   string        `envconfig:"KURASYIT_KURASI_ORIGIN_COUNTRY" default:"ID"`
	Currency        string        `envconfig:"KURASYIT_KURASI_CURRENCY" default:"IDR"`
}

type GCPConfig struct {
	ProjectID string `envconfig:"KURASYIT_GCP_PROJECT_ID"`
}

type PubSubConfig struct {
	OrdersTopic string `envconfig:"KURASYIT_PUBSUB_ORDERS_TOPIC" default:"kurasyit-order-events"`
}

type OutboxConfig struct {
	PollInterval time.Duration `envconfig:"KURASYIT_OUTBOX_POLL_INTERVAL" default:"5s"`
	BatchSize    int           `envconfig:"KURASYIT_OUTBOX_BATCH_SIZE" default:"50"`
	MaxAttempts  int           `envconfig:"KURASYIT_OUTBOX_MAX_ATTEMPTS" default:"10"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"KURASYIT_FEATURE_AUTO_MIGRATE" default:"false"`
}
