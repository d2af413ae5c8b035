package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Stripe   StripeConfig
	Site     SiteConfig
	MQ       MQConfig
	Tracing  TracingConfig
	Timeouts TimeoutConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	// URL takes precedence over the discrete fields when set.
	URL      string `envconfig:"DB_URL"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// JWTConfig verifies access tokens issued by the datastore's auth service.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Audience string `envconfig:"JWT_AUDIENCE" default:"authenticated"`
	Duration string `envconfig:"JWT_DURATION" default:"1h"`
}

type StripeConfig struct {
	SecretKey        string        `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	WebhookSecret    string        `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	WebhookTolerance time.Duration `envconfig:"STRIPE_WEBHOOK_TOLERANCE" default:"300s"`
	Currency         string        `envconfig:"STRIPE_CURRENCY" default:"eur"`
	MaxBodyBytes     int64         `envconfig:"STRIPE_WEBHOOK_MAX_BODY_BYTES" default:"1048576"`
}

type SiteConfig struct {
	URL string `envconfig:"SITE_URL" required:"true"`
}

// MQConfig leaves publishing disabled when URL is empty.
type MQConfig struct {
	URL      string `envconfig:"MQ_URL"`
	Exchange string `envconfig:"MQ_EXCHANGE" default:"booking.events"`
}

type TracingConfig struct {
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"booking-checkout"`
	Environment string `envconfig:"APP_ENV" default:"dev"`
}

type TimeoutConfig struct {
	Provider    time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"10s"`
	Fulfillment time.Duration `envconfig:"FULFILLMENT_TIMEOUT" default:"10s"`
}

func (c *DBConfig) BuildDSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *DBConfig) Validate() error {
	if c.URL != "" {
		return nil
	}
	if c.User == "" || c.DBName == "" {
		return fmt.Errorf("either DB_URL or DB_USER and DB_NAME must be set")
	}
	return nil
}

// .env is optional; real environment variables always win.
func loadDotEnv() error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("failed to load .env: %w", err)
		}
	}
	return nil
}

func LoadConfig() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.DB.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDBConfig reads only the database section, for tools that need nothing else.
func LoadDBConfig(cfg *DBConfig) error {
	if err := loadDotEnv(); err != nil {
		return err
	}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg.Validate()
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-jwt-secret",
			Audience: "authenticated",
			Duration: "1h",
		},
		Stripe: StripeConfig{
			SecretKey:        "sk_test_dummy",
			WebhookSecret:    "whsec_test_secret",
			WebhookTolerance: 300 * time.Second,
			Currency:         "eur",
			MaxBodyBytes:     1 << 20,
		},
		Site: SiteConfig{
			URL: "http://localhost:3000",
		},
		MQ: MQConfig{
			Exchange: "booking.events",
		},
		Tracing: TracingConfig{
			ServiceName: "booking-checkout-test",
			Environment: "test",
		},
		Timeouts: TimeoutConfig{
			Provider:    10 * time.Second,
			Fulfillment: 10 * time.Second,
		},
	}
}
