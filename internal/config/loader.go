package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envKeys maps environment variables onto koanf paths.
var envKeys = map[string]string{
	"APP_NAME":  "app.name",
	"APP_ENV":   "app.env",
	"HTTP_PORT": "app.http_port",

	"LOG_LEVEL":  "log.level",
	"LOG_FORMAT": "log.format",

	"DB_HOST":                "database.host",
	"DB_PORT":                "database.port",
	"DB_NAME":                "database.name",
	"DB_USER":                "database.user",
	"DB_PASSWORD":            "database.password",
	"DB_SSL_MODE":            "database.ssl_mode",
	"DB_CONNECT_TIMEOUT":     "database.connect_timeout",
	"DB_MAX_CONNS":           "database.max_conns",
	"DB_MIN_CONNS":           "database.min_conns",
	"DB_MAX_CONN_LIFETIME":   "database.max_conn_lifetime",
	"DB_MAX_CONN_IDLE_TIME":  "database.max_conn_idle_time",
	"DB_HEALTH_CHECK_PERIOD": "database.health_check_period",

	"REDIS_HOST":     "redis.host",
	"REDIS_PORT":     "redis.port",
	"REDIS_PASSWORD": "redis.password",
	"REDIS_DB":       "redis.db",
	"REDIS_TTL":      "redis.ttl",

	"JWT_ACCESS_SECRET":      "jwt.access_secret",
	"JWT_REFRESH_SECRET":     "jwt.refresh_secret",
	"JWT_ACCESS_EXPIRES_IN":  "jwt.access_expires_in",
	"JWT_REFRESH_EXPIRES_IN": "jwt.refresh_expires_in",
	"JWT_ISSUER":             "jwt.issuer",
}

// Load layers configuration, lowest precedence first:
//  1. Defaults()
//  2. YAML file named by CONFIG_FILE, if set
//  3. environment variables listed in envKeys
func Load() (Config, error) {
	return load(true)
}

// LoadTooling is Load for the operator CLI: server-only settings (HTTP port,
// JWT secrets) are not required.
func LoadTooling() (Config, error) {
	return load(false)
}

func load(server bool) (Config, error) {
	k := koanf.New(".")

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// Blank variables are skipped so they never mask file values.
	envProvider := env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		return envKeys[key], value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := Defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	trim(&cfg)

	if server {
		if missing := cfg.missingRequired(); len(missing) > 0 {
			return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func trim(cfg *Config) {
	cfg.App.AppName = strings.TrimSpace(cfg.App.AppName)
	cfg.App.Environment = strings.TrimSpace(cfg.App.Environment)
	cfg.App.HTTPPort = strings.TrimSpace(cfg.App.HTTPPort)
	cfg.Log.Level = strings.TrimSpace(cfg.Log.Level)
	cfg.Log.Format = strings.TrimSpace(cfg.Log.Format)
	cfg.Database.DBHost = strings.TrimSpace(cfg.Database.DBHost)
	cfg.Database.DBPort = strings.TrimSpace(cfg.Database.DBPort)
	cfg.Database.DBName = strings.TrimSpace(cfg.Database.DBName)
	cfg.Database.DBUser = strings.TrimSpace(cfg.Database.DBUser)
	cfg.Database.DBSSLMode = strings.TrimSpace(cfg.Database.DBSSLMode)
	cfg.Redis.Host = strings.TrimSpace(cfg.Redis.Host)
	cfg.Redis.Port = strings.TrimSpace(cfg.Redis.Port)
}

func (c Config) missingRequired() []string {
	var missing []string
	req := func(key, v string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, key)
		}
	}
	req("HTTP_PORT", c.App.HTTPPort)
	req("JWT_ACCESS_SECRET", c.JWT.AccessSecret)
	req("JWT_REFRESH_SECRET", c.JWT.RefreshSecret)
	sort.Strings(missing)
	return missing
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.JWT.AccessExpiresIn <= 0 || c.JWT.RefreshExpiresIn <= 0 {
		return fmt.Errorf("%w: jwt expiry must be positive", ErrInvalidConfig)
	}
	if c.Database.PoolMinConns > c.Database.PoolMaxConns && c.Database.PoolMaxConns > 0 {
		return fmt.Errorf("%w: db min conns exceeds max conns", ErrInvalidConfig)
	}
	return nil
}
