package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration. It is loaded once at startup and
// passed explicitly to the components that need it; nothing reads it as a global.
type Config struct {
	ListenAddr  string `mapstructure:"LISTEN_ADDR"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	BotToken string `mapstructure:"BOT_TOKEN"`

	JWTSecret      string `mapstructure:"JWT_SECRET"`
	JWTExpireHours int    `mapstructure:"JWT_EXPIRE_HOURS"`

	SessionCookieName   string `mapstructure:"SESSION_COOKIE_NAME"`
	SessionCookieSecure bool   `mapstructure:"SESSION_COOKIE_SECURE"`

	WebAppAuthMaxAgeSeconds int `mapstructure:"WEBAPP_AUTH_MAX_AGE_SECONDS"`

	AdminTelegramIDsRaw string `mapstructure:"ADMIN_TELEGRAM_IDS"`
	AllowedOriginsRaw   string `mapstructure:"ALLOWED_ORIGINS"`

	BotInternalURL   string `mapstructure:"BOT_INTERNAL_URL"`
	BotInternalToken string `mapstructure:"BOT_INTERNAL_TOKEN"`
}

// Load reads the configuration from a .env file and environment variables.
func Load() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("LISTEN_ADDR", ":8000")
	viper.SetDefault("JWT_EXPIRE_HOURS", 24)
	viper.SetDefault("SESSION_COOKIE_NAME", "space_session")
	viper.SetDefault("SESSION_COOKIE_SECURE", false)
	viper.SetDefault("WEBAPP_AUTH_MAX_AGE_SECONDS", 86400)
	viper.SetDefault("BOT_INTERNAL_URL", "http://bot:8081")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:8080")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if _, err := cfg.AdminTelegramIDs(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// AdminTelegramIDs parses the comma-separated admin id list.
func (c *Config) AdminTelegramIDs() ([]int64, error) {
	var ids []int64
	for _, item := range strings.Split(c.AdminTelegramIDsRaw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		id, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid admin telegram id %q: %w", item, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// AllowedOrigins parses the comma-separated CORS origin list.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, item := range strings.Split(c.AllowedOriginsRaw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			origins = append(origins, item)
		}
	}
	return origins
}
