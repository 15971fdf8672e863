package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Catalog  CatalogConfig   `mapstructure:"catalog"`
	Export   ExportConfig    `mapstructure:"export"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	SetupKey           string   `mapstructure:"setup_key"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// CatalogConfig points at the external beer submission API.
type CatalogConfig struct {
	URL             string `mapstructure:"url"`
	APIToken        string `mapstructure:"api_token"`
	CacheTTLMinutes int    `mapstructure:"cache_ttl_minutes"`
}

// ExportConfig guards the results export endpoint.
type ExportConfig struct {
	APIKey string `mapstructure:"api_key"`
}

func Load(configPath string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Secrets come from the environment, never from config.yml.
	bindings := map[string]string{
		"api.environment":     "API_ENVIRONMENT",
		"api.port":            "API_PORT",
		"api.jwt_signing_key": "JWT_SIGNING_KEY",
		"api.setup_key":       "SETUP_KEY",
		"postgres.host":       "POSTGRES_HOST",
		"postgres.port":       "POSTGRES_PORT",
		"postgres.user":       "POSTGRES_USER",
		"postgres.password":   "POSTGRES_PASSWORD",
		"postgres.db":         "POSTGRES_DB",
		"catalog.url":         "CATALOG_URL",
		"catalog.api_token":   "HBCON_API_TOKEN",
		"export.api_key":      "EXPORT_API_KEY",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("v.BindEnv -> %w", err)
		}
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		if err := v.Unmarshal(conf); err != nil {
			zap.L().Error("failed to reload config", zap.String("file", e.Name), zap.Error(err))
			return
		}

		zap.L().Info("config reloaded", zap.String("file", e.Name))
	})

	return conf, nil
}
