package config

import (
	"errors"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Push       PushConfig       `yaml:"push"`
	WorkerPool WorkerPoolConfig `yaml:"worker_pool"`
	Tax        TaxConfig        `yaml:"tax"`
	Recommend  RecommendConfig  `yaml:"recommend"`
}

// WorkerPoolConfig holds the configuration for the notification worker pool.
type WorkerPoolConfig struct {
	Size int `yaml:"size"`
}

// PushConfig holds the VAPID keys for web push notifications.
type PushConfig struct {
	PublicKey  string `yaml:"vapid_public_key"`
	PrivateKey string `yaml:"vapid_private_key"`
	Subject    string `yaml:"subject"`
	TTL        int    `yaml:"ttl"`
}

// Enabled reports whether both VAPID keys are configured.
func (p PushConfig) Enabled() bool {
	return p.PublicKey != "" && p.PrivateKey != ""
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	RateLimitPerSec float64       `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int           `yaml:"rate_limit_burst"`
	CacheTTLSeconds int           `yaml:"cache_ttl_seconds"`
	CacheTTL        time.Duration `yaml:"-"`
	CORSOrigins     []string      `yaml:"cors_origins"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"` // postgres or sqlite
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
	Seed                   bool   `yaml:"seed"`
}

// AuthConfig holds the dashboard login and token settings.
type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret"`
	TokenTTLMinutes   int           `yaml:"token_ttl_minutes"`
	TokenTTL          time.Duration `yaml:"-"`
	AdminUsername     string        `yaml:"admin_username"`
	AdminPasswordHash string        `yaml:"admin_password_hash"`
}

// TaxBracket applies Rate (percent) to room tariffs up to and including UpTo.
// A bracket with UpTo == 0 is open-ended.
type TaxBracket struct {
	UpTo float64 `yaml:"up_to"`
	Rate float64 `yaml:"rate"`
}

// TaxConfig holds the GST rates used for invoices.
type TaxConfig struct {
	RoomBrackets []TaxBracket `yaml:"room_brackets"`
	FoodRate     float64      `yaml:"food_rate"`
}

// RecommendConfig holds room recommendation settings.
type RecommendConfig struct {
	DefaultLimit int `yaml:"default_limit"`
}

// ErrMissingJWTSecret is returned when no token signing secret is configured.
var ErrMissingJWTSecret = errors.New("auth.jwt_secret must be set")

// DefaultRoomBrackets are the GST slabs for room tariffs per night.
func DefaultRoomBrackets() []TaxBracket {
	return []TaxBracket{
		{UpTo: 1000, Rate: 0},
		{UpTo: 7500, Rate: 12},
		{UpTo: 0, Rate: 18},
	}
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	applyEnv(&cfg)
	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overrides secrets from the environment so they can stay out of the YAML file.
func applyEnv(cfg *Config) {
	overrides := map[string]*string{
		"DATABASE_DRIVER":          &cfg.Database.Driver,
		"DATABASE_DSN":             &cfg.Database.DSN,
		"AUTH_JWT_SECRET":          &cfg.Auth.JWTSecret,
		"AUTH_ADMIN_PASSWORD_HASH": &cfg.Auth.AdminPasswordHash,
		"VAPID_PUBLIC_KEY":         &cfg.Push.PublicKey,
		"VAPID_PRIVATE_KEY":        &cfg.Push.PrivateKey,
	}
	for key, dst := range overrides {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
}

func (cfg *Config) setDefaults() error {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 60
	}
	cfg.Server.CacheTTL = time.Duration(cfg.Server.CacheTTLSeconds) * time.Second

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}

	if cfg.Auth.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	if cfg.Auth.TokenTTLMinutes <= 0 {
		cfg.Auth.TokenTTLMinutes = 12 * 60
	}
	cfg.Auth.TokenTTL = time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute
	if cfg.Auth.AdminUsername == "" {
		cfg.Auth.AdminUsername = "admin"
	}

	if cfg.Push.TTL <= 0 {
		cfg.Push.TTL = 3600
	}

	if cfg.WorkerPool.Size <= 0 {
		log.Printf("worker_pool.size is not set or invalid; defaulting to 1")
		cfg.WorkerPool.Size = 1
	}

	if len(cfg.Tax.RoomBrackets) == 0 {
		cfg.Tax.RoomBrackets = DefaultRoomBrackets()
	}
	if cfg.Tax.FoodRate <= 0 {
		cfg.Tax.FoodRate = 5
	}

	if cfg.Recommend.DefaultLimit <= 0 {
		cfg.Recommend.DefaultLimit = 10
	}
	return nil
}
