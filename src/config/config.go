package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config รวมค่าตั้งค่าทั้งหมดของแอป โหลดจาก .env และ environment variables
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Designer DesignerConfig `mapstructure:"designer"`
	Worker   WorkerConfig   `mapstructure:"worker"`
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	Port           int    `mapstructure:"port"`
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// RedisConfig is optional: an empty Addr disables Redis and the asynq client.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// DesignerConfig controls where designer sessions keep their records.
type DesignerConfig struct {
	Store         string        `mapstructure:"store"`
	SQLitePath    string        `mapstructure:"sqlite_path"`
	KeyTTL        time.Duration `mapstructure:"key_ttl"`
	SessionSecret string        `mapstructure:"session_secret"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	CacheSize     int           `mapstructure:"cache_size"`
}

type WorkerConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Load อ่านค่าจาก .env (ถ้ามี) แล้ว bind กับ environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", 8888)
	v.SetDefault("api.allowed_origins", "*")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "faex")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("designer.store", StoreMemory)
	v.SetDefault("designer.sqlite_path", "designer.db")
	v.SetDefault("designer.key_ttl", "0s")
	v.SetDefault("designer.session_secret", "booking_designer_dev_secret")
	v.SetDefault("designer.session_ttl", "720h")
	v.SetDefault("designer.cache_size", 10000)
	v.SetDefault("worker.concurrency", 10)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"api.port":                "APP_PORT",
		"api.allowed_origins":     "ALLOWED_ORIGINS",
		"mongo.uri":               "MONGO_URI",
		"mongo.database":          "MONGO_DATABASE",
		"redis.addr":              "REDIS_URI",
		"redis.password":          "REDIS_PASSWORD",
		"redis.db":                "REDIS_DB",
		"designer.store":          "DESIGNER_STORE",
		"designer.sqlite_path":    "DESIGNER_SQLITE_PATH",
		"designer.key_ttl":        "DESIGNER_KEY_TTL",
		"designer.session_secret": "SESSION_SECRET",
		"designer.session_ttl":    "SESSION_TTL",
		"designer.cache_size":     "DESIGNER_CACHE_SIZE",
		"worker.concurrency":      "WORKER_CONCURRENCY",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.API.Port <= 0 {
		return errors.New("api port must be positive")
	}
	if cfg.Mongo.URI == "" {
		return errors.New("MONGO_URI is required")
	}
	if cfg.Mongo.Database == "" {
		return errors.New("mongo database is required")
	}
	switch cfg.Designer.Store {
	case StoreMemory:
	case StoreSQLite:
		if cfg.Designer.SQLitePath == "" {
			return errors.New("designer sqlite path is required")
		}
	case StoreRedis:
		if !cfg.Redis.Enabled() {
			return errors.New("designer store \"redis\" requires REDIS_URI")
		}
	default:
		return fmt.Errorf("unknown designer store %q", cfg.Designer.Store)
	}
	if cfg.Designer.SessionSecret == "" {
		return errors.New("session secret is required")
	}
	if cfg.Designer.SessionTTL <= 0 {
		return errors.New("session ttl must be positive")
	}
	if cfg.Designer.CacheSize <= 0 {
		return errors.New("designer cache size must be positive")
	}
	if cfg.Worker.Concurrency <= 0 {
		return errors.New("worker concurrency must be positive")
	}
	return nil
}
