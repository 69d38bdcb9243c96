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
	Server   ServerConfig
	DB       DBConfig
	S3       S3Config
	Log      LogConfig
	CORS     CORSConfig
	Email    EmailConfig
	PDF      PDFConfig
	Upstream UpstreamConfig
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// PDFConfig holds page settings for exported documents. Margins are in millimetres.
type PDFConfig struct {
	MarginLeft   float64 `mapstructure:"margin_left"`
	MarginTop    float64 `mapstructure:"margin_top"`
	MarginRight  float64 `mapstructure:"margin_right"`
	MarginBottom float64 `mapstructure:"margin_bottom"`
	Signatory    string  `mapstructure:"signatory"`
}

// UpstreamConfig holds settings for the billing REST API documents are fetched from.
type UpstreamConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	APIKey       string `mapstructure:"api_key"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
}

// Timeout returns the request timeout as a duration.
func (u *UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutSecs) * time.Second
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

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the BILLDESK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BILLDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "billdesk")
	v.SetDefault("db.password", "billdesk_secret")
	v.SetDefault("db.name", "billdesk_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "billdesk-exports")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "billing@billdesk.local")
	v.SetDefault("email.from_name", "Billdesk")

	// PDF defaults
	v.SetDefault("pdf.margin_left", 10)
	v.SetDefault("pdf.margin_top", 10)
	v.SetDefault("pdf.margin_right", 10)
	v.SetDefault("pdf.margin_bottom", 10)
	v.SetDefault("pdf.signatory", "Authorised Signatory")

	// Upstream defaults
	v.SetDefault("upstream.base_url", "http://localhost:5000/api")
	v.SetDefault("upstream.api_key", "")
	v.SetDefault("upstream.timeout_secs", 15)
	v.SetDefault("upstream.max_body_bytes", 5<<20)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "BILLDESK_SERVER_PORT",
		"server.read_timeout":     "BILLDESK_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "BILLDESK_SERVER_WRITE_TIMEOUT",
		"server.environment":      "BILLDESK_SERVER_ENVIRONMENT",
		"db.host":                 "BILLDESK_DB_HOST",
		"db.port":                 "BILLDESK_DB_PORT",
		"db.user":                 "BILLDESK_DB_USER",
		"db.password":             "BILLDESK_DB_PASSWORD",
		"db.name":                 "BILLDESK_DB_NAME",
		"db.sslmode":              "BILLDESK_DB_SSLMODE",
		"db.max_open":             "BILLDESK_DB_MAX_OPEN",
		"db.max_idle":             "BILLDESK_DB_MAX_IDLE",
		"s3.region":               "BILLDESK_S3_REGION",
		"s3.bucket":               "BILLDESK_S3_BUCKET",
		"s3.endpoint":             "BILLDESK_S3_ENDPOINT",
		"s3.access_key":           "BILLDESK_S3_ACCESS_KEY",
		"s3.secret_key":           "BILLDESK_S3_SECRET_KEY",
		"s3.presign_expiry":       "BILLDESK_S3_PRESIGN_EXPIRY",
		"log.level":               "BILLDESK_LOG_LEVEL",
		"log.format":              "BILLDESK_LOG_FORMAT",
		"cors.allowed_origins":    "BILLDESK_CORS_ALLOWED_ORIGINS",
		"email.provider":          "BILLDESK_EMAIL_PROVIDER",
		"email.region":            "BILLDESK_EMAIL_REGION",
		"email.from_address":      "BILLDESK_EMAIL_FROM_ADDRESS",
		"email.from_name":         "BILLDESK_EMAIL_FROM_NAME",
		"pdf.margin_left":         "BILLDESK_PDF_MARGIN_LEFT",
		"pdf.margin_top":          "BILLDESK_PDF_MARGIN_TOP",
		"pdf.margin_right":        "BILLDESK_PDF_MARGIN_RIGHT",
		"pdf.margin_bottom":       "BILLDESK_PDF_MARGIN_BOTTOM",
		"pdf.signatory":           "BILLDESK_PDF_SIGNATORY",
		"upstream.base_url":       "BILLDESK_UPSTREAM_BASE_URL",
		"upstream.api_key":        "BILLDESK_UPSTREAM_API_KEY",
		"upstream.timeout_secs":   "BILLDESK_UPSTREAM_TIMEOUT_SECS",
		"upstream.max_body_bytes": "BILLDESK_UPSTREAM_MAX_BODY_BYTES",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BILLDESK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BILLDESK_SERVER_PORT") == "" {
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
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitOrigins(v.GetString("cors.allowed_origins")),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.PDF = PDFConfig{
		MarginLeft:   v.GetFloat64("pdf.margin_left"),
		MarginTop:    v.GetFloat64("pdf.margin_top"),
		MarginRight:  v.GetFloat64("pdf.margin_right"),
		MarginBottom: v.GetFloat64("pdf.margin_bottom"),
		Signatory:    v.GetString("pdf.signatory"),
	}
	cfg.Upstream = UpstreamConfig{
		BaseURL:      strings.TrimRight(v.GetString("upstream.base_url"), "/"),
		APIKey:       v.GetString("upstream.api_key"),
		TimeoutSecs:  v.GetInt("upstream.timeout_secs"),
		MaxBodyBytes: v.GetInt64("upstream.max_body_bytes"),
	}

	if cfg.Upstream.TimeoutSecs <= 0 {
		return nil, fmt.Errorf("upstream.timeout_secs must be positive, got %d", cfg.Upstream.TimeoutSecs)
	}
	if cfg.Upstream.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("upstream.max_body_bytes must be positive, got %d", cfg.Upstream.MaxBodyBytes)
	}
	for name, m := range map[string]float64{
		"pdf.margin_left":   cfg.PDF.MarginLeft,
		"pdf.margin_top":    cfg.PDF.MarginTop,
		"pdf.margin_right":  cfg.PDF.MarginRight,
		"pdf.margin_bottom": cfg.PDF.MarginBottom,
	} {
		if m < 0 {
			return nil, fmt.Errorf("%s must not be negative, got %v", name, m)
		}
	}

	return cfg, nil
}

// splitOrigins parses a comma-separated origin list.
func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
