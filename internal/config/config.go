// Package config loads the admin API settings from the environment.
//
// Variables use the MUSAFIR_ prefix and a double underscore for nesting,
// so MUSAFIR_DATABASE__URL ends up in Config.Database.URL. A .env file in the
// working directory is loaded first when present.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "MUSAFIR_"

type Config struct {
	App      AppConfig      `koanf:"app"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Redis    RedisConfig    `koanf:"redis"`
	Auth     AuthConfig     `koanf:"auth" validate:"required"`
	Media    MediaConfig    `koanf:"media"`
	Mail     MailConfig     `koanf:"mail"`
}

type AppConfig struct {
	Name     string `koanf:"name"`
	Env      string `koanf:"env" validate:"oneof=development staging production test"`
	Timezone string `koanf:"timezone"`
	Currency string `koanf:"currency" validate:"len=3"`
}

// ServerConfig.CORSAllowedOrigins must list concrete origins: the session
// cookie is sent with credentials, which rules out "*".
type ServerConfig struct {
	Port               string        `koanf:"port"`
	ReadTimeout        time.Duration `koanf:"read_timeout"`
	WriteTimeout       time.Duration `koanf:"write_timeout"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins" validate:"dive,url"`
}

type DatabaseConfig struct {
	URL             string        `koanf:"url" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

// RedisConfig is optional. Without an address revoked tokens are kept in memory.
type RedisConfig struct {
	Address  string `koanf:"address"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

type AuthConfig struct {
	JWTSecret           string        `koanf:"jwt_secret" validate:"required,min=16"`
	TokenTTL            time.Duration `koanf:"token_ttl"`
	CookieName          string        `koanf:"cookie_name"`
	CookieDomain        string        `koanf:"cookie_domain"`
	CookieSecure        bool          `koanf:"cookie_secure"`
	RegistrationEnabled bool          `koanf:"registration_enabled"`
	LoginRatePerMinute  int           `koanf:"login_rate_per_minute"`
}

type MediaConfig struct {
	CloudinaryURL string `koanf:"cloudinary_url"`
	Folder        string `koanf:"folder"`
}

type MailConfig struct {
	Provider     string `koanf:"provider" validate:"omitempty,oneof=smtp resend"`
	From         string `koanf:"from"`
	FromName     string `koanf:"from_name"`
	SMTPHost     string `koanf:"smtp_host"`
	SMTPPort     int    `koanf:"smtp_port"`
	SMTPUsername string `koanf:"smtp_username"`
	SMTPPassword string `koanf:"smtp_password"`
	SMTPUseSSL   bool   `koanf:"smtp_use_ssl"`
	ResendAPIKey string `koanf:"resend_api_key"`
	PortalURL    string `koanf:"portal_url"`
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// Load reads the environment, applies defaults and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Server.CORSAllowedOrigins = splitList(cfg.Server.CORSAllowedOrigins)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:     "Musafir Admin",
			Env:      "development",
			Timezone: "Asia/Kolkata",
			Currency: "INR",
		},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        15 * time.Second,
			WriteTimeout:       30 * time.Second,
			ShutdownTimeout:    10 * time.Second,
			CORSAllowedOrigins: []string{"http://localhost:5173"},
		},
		Database: DatabaseConfig{
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			AutoMigrate:     true,
		},
		Auth: AuthConfig{
			TokenTTL:            24 * time.Hour,
			CookieName:          "musafir_admin_session",
			RegistrationEnabled: true,
			LoginRatePerMinute:  10,
		},
		Media: MediaConfig{
			Folder: "musafir",
		},
		Mail: MailConfig{
			FromName: "Musafir",
			SMTPPort: 587,
		},
	}
}

// splitList accepts both repeated values and a single comma separated value.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
