package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Matching MatchingConfig
}

type AppConfig struct {
	AppName     string `env:"APP_NAME,required,notEmpty"`
	Environment string `env:"APP_ENV,required,notEmpty"`
	HTTPPort    string `env:"HTTP_PORT,required,notEmpty"`
	LogJSON     bool   `env:"LOG_JSON" envDefault:"true"`
	LogDebug    bool   `env:"LOG_DEBUG" envDefault:"false"`
}

type DatabaseConfig struct {
	DBHost     string `env:"DB_HOST"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBSSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`

	ConnectTimeout        time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	PoolMaxConns          int32         `env:"DB_POOL_MAX_CONNS" envDefault:"10"`
	PoolMinConns          int32         `env:"DB_POOL_MIN_CONNS" envDefault:"0"`
	PoolMaxConnLifetime   time.Duration `env:"DB_POOL_MAX_CONN_LIFETIME" envDefault:"1h"`
	PoolMaxConnIdleTime   time.Duration `env:"DB_POOL_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	PoolHealthCheckPeriod time.Duration `env:"DB_POOL_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	MigrationsDir string `env:"DB_MIGRATIONS_DIR"`
	RunMigrations bool   `env:"DB_RUN_MIGRATIONS" envDefault:"false"`
	RunSeeders    bool   `env:"RUN_SEEDERS" envDefault:"false"`
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type JWTConfig struct {
	AccessSecret     string        `env:"JWT_ACCESS_SECRET,required,notEmpty"`
	RefreshSecret    string        `env:"JWT_REFRESH_SECRET,required,notEmpty"`
	AccessExpiresIn  time.Duration `env:"JWT_ACCESS_EXPIRES_IN" envDefault:"15m"`
	RefreshExpiresIn time.Duration `env:"JWT_REFRESH_EXPIRES_IN" envDefault:"168h"`
}

type MatchingConfig struct {
	Workers      int           `env:"MATCH_WORKERS" envDefault:"8"`
	CacheTTL     time.Duration `env:"MATCH_CACHE_TTL" envDefault:"5m"`
	DefaultLimit int           `env:"MATCH_DEFAULT_LIMIT" envDefault:"20"`
	MaxLimit     int           `env:"MATCH_MAX_LIMIT" envDefault:"100"`
}

// CLIConfig is the subset needed by one-shot commands, which do not serve
// HTTP and so need no app or JWT settings.
type CLIConfig struct {
	Database DatabaseConfig
	Matching MatchingConfig
	LogDebug bool `env:"LOG_DEBUG" envDefault:"false"`
}

func (d DatabaseConfig) Configured() bool {
	return d.DBHost != "" && d.DBName != "" && d.DBUser != ""
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.Matching.DefaultLimit <= 0 {
		cfg.Matching.DefaultLimit = 20
	}
	if cfg.Matching.MaxLimit < cfg.Matching.DefaultLimit {
		cfg.Matching.MaxLimit = cfg.Matching.DefaultLimit
	}
	return cfg, nil
}

func LoadCLI() (CLIConfig, error) {
	var cfg CLIConfig
	if err := env.Parse(&cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
