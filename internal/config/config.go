// Package config собирает настройки сервиса из .env, переменных окружения,
// необязательного YAML-файла и флагов командной строки.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Типы хранилищ.
const (
	StorageInMemory = "in-memory"
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
)

// Config - итоговые настройки процесса.
type Config struct {
	Port              int           `mapstructure:"PORT"`
	Storage           string        `mapstructure:"STORAGE"`
	DatabaseURL       string        `mapstructure:"DATABASE_URL"`
	MongoURI          string        `mapstructure:"MONGO_URI"`
	MongoDatabase     string        `mapstructure:"MONGO_DATABASE"`
	MongoTransactions bool          `mapstructure:"MONGO_TRANSACTIONS"`
	CacheURL          string        `mapstructure:"CACHE_URL"`
	CacheTTL          time.Duration `mapstructure:"CACHE_TTL"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
	LogSQL            bool          `mapstructure:"LOG_SQL"`
	// SeedOnStart по умолчанию включён только для in-memory.
	SeedOnStart bool `mapstructure:"-"`
}

// New возвращает viper с умолчаниями и привязкой к окружению.
// Флаги привязываются к нему вызывающей стороной через BindPFlag.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("PORT", 8080)
	v.SetDefault("STORAGE", StorageInMemory)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DATABASE", "portfolio")
	v.SetDefault("MONGO_TRANSACTIONS", false)
	v.SetDefault("CACHE_URL", "")
	v.SetDefault("CACHE_TTL", 5*time.Minute)
	v.SetDefault("ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("LOG_SQL", false)

	v.AutomaticEnv()
	// SEED_ON_START без умолчания: его отсутствие значимо
	_ = v.BindEnv("SEED_ON_START")
	return v
}

// Load читает .env (если есть) и файл конфигурации (если указан) и разбирает настройки.
func Load(v *viper.Viper, file string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}

	if v.IsSet("SEED_ON_START") {
		c.SeedOnStart = v.GetBool("SEED_ON_START")
	} else {
		c.SeedOnStart = c.Storage == StorageInMemory
	}

	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	switch c.Storage {
	case StorageInMemory:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL must be set for postgres storage")
		}
	case StorageMongo:
		if c.MongoURI == "" {
			return errors.New("MONGO_URI must be set for mongo storage")
		}
	default:
		return fmt.Errorf("unknown storage type %q (in-memory, postgres or mongo)", c.Storage)
	}
	return nil
}
