package utils

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	OneAPI    OneAPIConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name       string
	Port       string
	Debug      bool
	LogPath    string
	CORSOrigin string
}

type DatabaseConfig struct {
	URL      string
	MaxConns int32
}

type OneAPIConfig struct {
	BaseURL string
	APIKey  string
}

type RateLimitConfig struct {
	Window       time.Duration
	GeneralLimit int
	StrictLimit  int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "Lord of the Rings API")
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CORS_ORIGIN", "*")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("ONE_API_BASE_URL", "https://the-one-api.dev/v2")
	viper.SetDefault("RATE_LIMIT_WINDOW_MINUTES", 15)
	viper.SetDefault("RATE_LIMIT_GENERAL", 100)
	viper.SetDefault("RATE_LIMIT_STRICT", 10)

	// .env is optional, deployments may rely on env vars only
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:       viper.GetString("APP_NAME"),
			Port:       viper.GetString("PORT"),
			Debug:      viper.GetBool("DEBUG"),
			LogPath:    viper.GetString("LOG_PATH"),
			CORSOrigin: viper.GetString("CORS_ORIGIN"),
		},
		Database: DatabaseConfig{
			URL:      viper.GetString("DATABASE_URL"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		OneAPI: OneAPIConfig{
			BaseURL: viper.GetString("ONE_API_BASE_URL"),
			APIKey:  viper.GetString("ONE_API_KEY"),
		},
		RateLimit: RateLimitConfig{
			Window:       time.Duration(viper.GetInt("RATE_LIMIT_WINDOW_MINUTES")) * time.Minute,
			GeneralLimit: viper.GetInt("RATE_LIMIT_GENERAL"),
			StrictLimit:  viper.GetInt("RATE_LIMIT_STRICT"),
		},
	}

	// Required values, startup must fail without them
	if config.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if config.OneAPI.APIKey == "" {
		return nil, fmt.Errorf("ONE_API_KEY is required")
	}

	return config, nil
}
