package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Auth      AuthConfig
	S3        S3Config
	Log       LogConfig
	Extractor ExtractorConfig
	CORS      CORSConfig
	Email     EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// AuthConfig holds the landlord access gate and token settings.
type AuthConfig struct {
	PIN         string        `mapstructure:"pin"`
	Secret      string        `mapstructure:"secret"`
	TokenExpiry time.Duration `mapstructure:"token_expiry"`
	Issuer      string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for evidence archival.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds rent reminder delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// ExtractorProviderConfig holds settings for a single inference provider.
type ExtractorProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ExtractorConfig holds inference provider settings with fallback support.
type ExtractorConfig struct {
	Primary   ExtractorProviderConfig `mapstructure:"primary"`
	Secondary ExtractorProviderConfig `mapstructure:"secondary"`
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (e *ExtractorConfig) SecondaryConfig() *ExtractorProviderConfig {
	if e.Secondary.Provider != "" {
		return &e.Secondary
	}
	return nil
}

// Load reads configuration from environment variables with the RENTINTEL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RENTINTEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "rentintel")
	v.SetDefault("db.password", "rentintel_secret")
	v.SetDefault("db.name", "rentintel_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Auth defaults
	v.SetDefault("auth.pin", "2024")
	v.SetDefault("auth.secret", "change-me-in-production")
	v.SetDefault("auth.token_expiry", "12h")
	v.SetDefault("auth.issuer", "rentintel")

	// S3 defaults (empty bucket disables evidence archival)
	v.SetDefault("s3.region", "af-south-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 5)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "eu-west-1")
	v.SetDefault("email.from_address", "noreply@rentintel.rw")
	v.SetDefault("email.from_name", "Kigali Rent Intel")

	// Extractor defaults
	v.SetDefault("extractor.primary.provider", "gemini")
	v.SetDefault("extractor.primary.api_key", "")
	v.SetDefault("extractor.primary.default_model", "gemini-2.5-flash")
	v.SetDefault("extractor.primary.timeout_secs", 60)
	v.SetDefault("extractor.secondary.provider", "")
	v.SetDefault("extractor.secondary.api_key", "")
	v.SetDefault("extractor.secondary.default_model", "")
	v.SetDefault("extractor.secondary.timeout_secs", 60)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                       "RENTINTEL_SERVER_PORT",
		"server.read_timeout":               "RENTINTEL_SERVER_READ_TIMEOUT",
		"server.write_timeout":              "RENTINTEL_SERVER_WRITE_TIMEOUT",
		"server.environment":                "RENTINTEL_SERVER_ENVIRONMENT",
		"db.host":                           "RENTINTEL_DB_HOST",
		"db.port":                           "RENTINTEL_DB_PORT",
		"db.user":                           "RENTINTEL_DB_USER",
		"db.password":                       "RENTINTEL_DB_PASSWORD",
		"db.name":                           "RENTINTEL_DB_NAME",
		"db.sslmode":                        "RENTINTEL_DB_SSLMODE",
		"db.max_open":                       "RENTINTEL_DB_MAX_OPEN",
		"db.max_idle":                       "RENTINTEL_DB_MAX_IDLE",
		"auth.pin":                          "RENTINTEL_AUTH_PIN",
		"auth.secret":                       "RENTINTEL_AUTH_SECRET",
		"auth.token_expiry":                 "RENTINTEL_AUTH_TOKEN_EXPIRY",
		"auth.issuer":                       "RENTINTEL_AUTH_ISSUER",
		"s3.region":                         "RENTINTEL_S3_REGION",
		"s3.bucket":                         "RENTINTEL_S3_BUCKET",
		"s3.endpoint":                       "RENTINTEL_S3_ENDPOINT",
		"s3.access_key":                     "RENTINTEL_S3_ACCESS_KEY",
		"s3.secret_key":                     "RENTINTEL_S3_SECRET_KEY",
		"s3.max_file_size_mb":               "RENTINTEL_S3_MAX_FILE_SIZE_MB",
		"log.level":                         "RENTINTEL_LOG_LEVEL",
		"log.format":                        "RENTINTEL_LOG_FORMAT",
		"cors.allowed_origins":              "RENTINTEL_CORS_ALLOWED_ORIGINS",
		"email.provider":                    "RENTINTEL_EMAIL_PROVIDER",
		"email.region":                      "RENTINTEL_EMAIL_REGION",
		"email.from_address":                "RENTINTEL_EMAIL_FROM_ADDRESS",
		"email.from_name":                   "RENTINTEL_EMAIL_FROM_NAME",
		"extractor.primary.provider":        "RENTINTEL_EXTRACTOR_PRIMARY_PROVIDER",
		"extractor.primary.api_key":         "RENTINTEL_EXTRACTOR_PRIMARY_API_KEY",
		"extractor.primary.default_model":   "RENTINTEL_EXTRACTOR_PRIMARY_DEFAULT_MODEL",
		"extractor.primary.timeout_secs":    "RENTINTEL_EXTRACTOR_PRIMARY_TIMEOUT_SECS",
		"extractor.secondary.provider":      "RENTINTEL_EXTRACTOR_SECONDARY_PROVIDER",
		"extractor.secondary.api_key":       "RENTINTEL_EXTRACTOR_SECONDARY_API_KEY",
		"extractor.secondary.default_model": "RENTINTEL_EXTRACTOR_SECONDARY_DEFAULT_MODEL",
		"extractor.secondary.timeout_secs":  "RENTINTEL_EXTRACTOR_SECONDARY_TIMEOUT_SECS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if RENTINTEL_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("RENTINTEL_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Auth = AuthConfig{
		PIN:         v.GetString("auth.pin"),
		Secret:      v.GetString("auth.secret"),
		TokenExpiry: v.GetDuration("auth.token_expiry"),
		Issuer:      v.GetString("auth.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	cfg.Extractor = ExtractorConfig{
		Primary: ExtractorProviderConfig{
			Provider:     v.GetString("extractor.primary.provider"),
			APIKey:       v.GetString("extractor.primary.api_key"),
			DefaultModel: v.GetString("extractor.primary.default_model"),
			TimeoutSecs:  v.GetInt("extractor.primary.timeout_secs"),
		},
		Secondary: ExtractorProviderConfig{
			Provider:     v.GetString("extractor.secondary.provider"),
			APIKey:       v.GetString("extractor.secondary.api_key"),
			DefaultModel: v.GetString("extractor.secondary.default_model"),
			TimeoutSecs:  v.GetInt("extractor.secondary.timeout_secs"),
		},
	}

	return cfg, nil
}
