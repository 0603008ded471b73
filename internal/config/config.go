package config

import (
	"log"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

const DefaultStoreName = "Best Buy"

type Config struct {
	Env string

	// Banner shown by the interactive menu
	StoreName string

	// YAML catalog to seed the store from; empty means the built-in demo catalog
	CatalogFile string
}

// Load reads envFile (or an optional .env when envFile is empty) and then the process environment.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		_ = godotenv.Load(".env")
	} else if err := godotenv.Load(envFile); err != nil {
		return nil, errors.Wrapf(err, "load env file %q", envFile)
	}

	cfg := &Config{
		Env:         strings.ToLower(getEnv("ENV", "dev")),
		StoreName:   getEnv("STORE_NAME", DefaultStoreName),
		CatalogFile: getEnv("CATALOG_FILE", ""),
	}

	switch cfg.Env {
	case "dev", "test", "prod", "production":
	default:
		return nil, errors.Errorf("unknown ENV %q", cfg.Env)
	}

	return cfg, nil
}

func MustLoad(envFile string) *Config {
	cfg, err := Load(envFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal
	}
	return val
}
