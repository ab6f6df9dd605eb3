package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the studio API service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	DatabaseURL       string
	RedisURL          string
	JWTSecret         string
	LeadAPIKey        string
	AdminWhatsApp     string
	CountryCode       string
	ScoringBaseURL    string
	ScoringAPIKey     string
	ScoringModel      string
	ScoringTimeout    time.Duration
	DashboardCacheTTL time.Duration
	DashboardTimeout  time.Duration
	CloudName         string
	CloudAPIKey       string
	CloudAPISecret    string
	CloudFolder       string
	PhotoMaxSizeMB    int
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// IsProduction reports whether the service runs in the production environment.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("STUDIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Studio API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("country_code", "91")
	v.SetDefault("scoring.model", "google/gemini-3-flash-preview")
	v.SetDefault("scoring.timeout", "30s")
	v.SetDefault("dashboard.cache_ttl", "2m")
	v.SetDefault("dashboard.timeout", "10s")
	v.SetDefault("cloud.folder", "studio/photos")
	v.SetDefault("photo_max_size_mb", 5)

	scoringTimeout, err := time.ParseDuration(v.GetString("scoring.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid scoring timeout: %w", err)
	}

	cacheTTL, err := time.ParseDuration(v.GetString("dashboard.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid dashboard cache ttl: %w", err)
	}

	dashboardTimeout, err := time.ParseDuration(v.GetString("dashboard.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid dashboard timeout: %w", err)
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		DatabaseURL:       v.GetString("database.url"),
		RedisURL:          v.GetString("redis.url"),
		JWTSecret:         v.GetString("jwt.secret"),
		LeadAPIKey:        v.GetString("lead_api_key"),
		AdminWhatsApp:     v.GetString("admin_whatsapp"),
		CountryCode:       v.GetString("country_code"),
		ScoringBaseURL:    v.GetString("scoring.base_url"),
		ScoringAPIKey:     v.GetString("scoring.api_key"),
		ScoringModel:      v.GetString("scoring.model"),
		ScoringTimeout:    scoringTimeout,
		DashboardCacheTTL: cacheTTL,
		DashboardTimeout:  dashboardTimeout,
		CloudName:         v.GetString("cloud.name"),
		CloudAPIKey:       v.GetString("cloud.api_key"),
		CloudAPISecret:    v.GetString("cloud.api_secret"),
		CloudFolder:       v.GetString("cloud.folder"),
		PhotoMaxSizeMB:    v.GetInt("photo_max_size_mb"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.PhotoMaxSizeMB <= 0 {
		cfg.PhotoMaxSizeMB = 5
	}

	return cfg, nil
}
