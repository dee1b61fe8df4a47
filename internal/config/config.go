package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jinzhu/configor"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type AppConfig struct {
	AppName     string `default:"careercraft" env:"APP_NAME"`
	Environment string `default:"development" env:"APP_ENV"`
	HTTPPort    string `default:"5000" env:"HTTP_PORT"`
	DefaultTopN int    `default:"3" env:"RECOMMENDATION_TOP_N"`
	MaxTopN     int    `default:"20" env:"RECOMMENDATION_MAX_TOP_N"`
}

type DatabaseConfig struct {
	DBHost     string `required:"true" env:"DB_HOST"`
	DBPort     string `default:"5432" env:"DB_PORT"`
	DBName     string `required:"true" env:"DB_NAME"`
	DBUser     string `required:"true" env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBSSLMode  string `default:"disable" env:"DB_SSL_MODE"`

	ConnectTimeout        time.Duration `default:"5s" env:"DB_CONNECT_TIMEOUT"`
	PoolMaxConns          int32         `default:"10" env:"DB_POOL_MAX_CONNS"`
	PoolMinConns          int32         `env:"DB_POOL_MIN_CONNS"`
	PoolMaxConnLifetime   time.Duration `default:"1h" env:"DB_POOL_MAX_CONN_LIFETIME"`
	PoolMaxConnIdleTime   time.Duration `default:"30m" env:"DB_POOL_MAX_CONN_IDLE_TIME"`
	PoolHealthCheckPeriod time.Duration `default:"1m" env:"DB_POOL_HEALTH_CHECK_PERIOD"`
}

type RedisConfig struct {
	Enabled  bool          `default:"false" env:"REDIS_ENABLED"`
	Host     string        `default:"localhost" env:"REDIS_HOST"`
	Port     string        `default:"6379" env:"REDIS_PORT"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB"`
	TTL      time.Duration `default:"10m" env:"REDIS_TTL"`
}

// Load reads an optional .env file, then an optional config file named by
// CONFIG_FILE, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var files []string
	if f := strings.TrimSpace(os.Getenv("CONFIG_FILE")); f != "" {
		files = append(files, f)
	}

	cfg := Config{}
	loader := configor.New(&configor.Config{Silent: true})
	if err := loader.Load(&cfg, files...); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.App.HTTPPort) == "" {
		return fmt.Errorf("invalid config: empty HTTP_PORT")
	}
	if c.App.DefaultTopN <= 0 {
		return fmt.Errorf("invalid config: RECOMMENDATION_TOP_N must be positive")
	}
	if c.App.MaxTopN < c.App.DefaultTopN {
		return fmt.Errorf("invalid config: RECOMMENDATION_MAX_TOP_N must be >= RECOMMENDATION_TOP_N")
	}
	return nil
}

// DSN renders the libpq-style connection string understood by pgx.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		strings.TrimSpace(c.DBHost),
		strings.TrimSpace(c.DBPort),
		strings.TrimSpace(c.DBUser),
		c.DBPassword,
		strings.TrimSpace(c.DBName),
		strings.TrimSpace(c.DBSSLMode),
	)
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", strings.TrimSpace(c.Host), strings.TrimSpace(c.Port))
}
