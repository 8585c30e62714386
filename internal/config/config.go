package config

import (
	"errors"
	"time"
)

type Config struct {
	App      AppConfig      `koanf:"app"`
	Log      LogConfig      `koanf:"log"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	JWT      JWTConfig      `koanf:"jwt"`
}

type AppConfig struct {
	AppName     string `koanf:"name"`
	Environment string `koanf:"env"`
	HTTPPort    string `koanf:"http_port"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `koanf:"level"`
	// Format is text or json.
	Format string `koanf:"format"`
}

type DatabaseConfig struct {
	DBHost     string `koanf:"host"`
	DBPort     string `koanf:"port"`
	DBName     string `koanf:"name"`
	DBUser     string `koanf:"user"`
	DBPassword string `koanf:"password"`
	DBSSLMode  string `koanf:"ssl_mode"`

	ConnectTimeout        time.Duration `koanf:"connect_timeout"`
	PoolMaxConns          int32         `koanf:"max_conns"`
	PoolMinConns          int32         `koanf:"min_conns"`
	PoolMaxConnLifetime   time.Duration `koanf:"max_conn_lifetime"`
	PoolMaxConnIdleTime   time.Duration `koanf:"max_conn_idle_time"`
	PoolHealthCheckPeriod time.Duration `koanf:"health_check_period"`
}

type RedisConfig struct {
	Host     string        `koanf:"host"`
	Port     string        `koanf:"port"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	TTL      time.Duration `koanf:"ttl"`
}

type JWTConfig struct {
	AccessSecret     string        `koanf:"access_secret"`
	RefreshSecret    string        `koanf:"refresh_secret"`
	AccessExpiresIn  time.Duration `koanf:"access_expires_in"`
	RefreshExpiresIn time.Duration `koanf:"refresh_expires_in"`
	Issuer           string        `koanf:"issuer"`
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	ErrInvalidConfig      = errors.New("invalid config")
)

// Defaults returns the baseline configuration that file and env layers override.
func Defaults() Config {
	return Config{
		App: AppConfig{
			AppName:     "skill-matrix",
			Environment: "development",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Database: DatabaseConfig{
			DBHost:         "localhost",
			DBPort:         "5432",
			DBName:         "skill_matrix",
			DBUser:         "postgres",
			DBSSLMode:      "disable",
			ConnectTimeout: 5 * time.Second,
			PoolMaxConns:   10,
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: "6379",
			TTL:  600 * time.Second,
		},
		JWT: JWTConfig{
			AccessExpiresIn:  time.Hour,
			RefreshExpiresIn: 7 * 24 * time.Hour,
			Issuer:           "skill-matrix",
		},
	}
}
