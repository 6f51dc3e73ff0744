package config

import (
	"fmt"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string          `env:"APP_ENV" default:"development"`
	Server      ServerConfig    `env:"SERVER"`
	Database    DatabaseConfig  `env:"DB"`
	Redis       RedisConfig     `env:"REDIS"`
	RabbitMQ    RabbitMQConfig  `env:"RABBITMQ"`
	Auth        AuthConfig      `env:"AUTH"`
	Guest       GuestConfig     `env:"GUEST"`
	Cart        CartConfig      `env:"CART"`
	PayFast     PayFastConfig   `env:"PAYFAST"`
	Mail        MailConfig      `env:"MAIL"`
	RateLimit   RateLimitConfig `env:"RATE_LIMIT"`
	CORS        CORSConfig      `env:"CORS"`
}

type ServerConfig struct {
	Port         string        `env:"PORT" default:"8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" default:"60s"`
}

type DatabaseConfig struct {
	Host            string        `env:"HOST" default:"127.0.0.1"`
	Port            int           `env:"PORT" default:"3306"`
	User            string        `env:"USER" default:"root"`
	Password        string        `env:"PASSWORD"`
	Name            string        `env:"NAME" default:"storefront"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" default:"5m"`
}

type RedisConfig struct {
	Host     string `env:"HOST" default:"127.0.0.1"`
	Port     int    `env:"PORT" default:"6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" default:"0"`
}

type RabbitMQConfig struct {
	Host     string `env:"HOST" default:"127.0.0.1"`
	Port     int    `env:"PORT" default:"5672"`
	User     string `env:"USER" default:"guest"`
	Password string `env:"PASSWORD" default:"guest"`
}

type AuthConfig struct {
	// Provider is "local" (HS256 tokens issued by this service) or "jwks" (managed provider).
	Provider       string        `env:"PROVIDER" default:"local"`
	JWTSecret      string        `env:"JWT_SECRET"`
	JWTExpiration  time.Duration `env:"JWT_EXPIRATION" default:"24h"`
	SessionExpTime time.Duration `env:"SESSION_EXP_TIME" default:"24h"`
	JWKSURL        string        `env:"JWKS_URL"`
	JWKSRefresh    time.Duration `env:"JWKS_REFRESH" default:"1h"`
	Audience       string        `env:"AUDIENCE"`
	Issuer         string        `env:"ISSUER"`
}

type GuestConfig struct {
	CookieName   string        `env:"COOKIE_NAME" default:"guest_sid"`
	SessionTTL   time.Duration `env:"SESSION_TTL" default:"720h"`
	CookieSecure bool          `env:"COOKIE_SECURE" default:"false"`
}

type CartConfig struct {
	// QuantityStep rejects cart updates that are not a multiple of it. 0 or 1 disables the rule.
	QuantityStep int `env:"QUANTITY_STEP" default:"0"`
}

type PayFastConfig struct {
	MerchantID  string `env:"MERCHANT_ID"`
	MerchantKey string `env:"MERCHANT_KEY"`
	Passphrase  string `env:"PASSPHRASE"`
	URL         string `env:"URL" default:"https://www.payfast.co.za/eng/process"`
	ReturnURL   string `env:"RETURN_URL"`
	CancelURL   string `env:"CANCEL_URL"`
	NotifyURL   string `env:"NOTIFY_URL"`
}

type MailConfig struct {
	Host            string        `env:"HOST"`
	Port            int           `env:"PORT" default:"587"`
	Username        string        `env:"USERNAME"`
	Password        string        `env:"PASSWORD"`
	From            string        `env:"FROM"`
	OperatorAddress string        `env:"OPERATOR_ADDRESS"`
	MaxAttempts     int           `env:"MAX_ATTEMPTS" default:"3"`
	Backoff         time.Duration `env:"BACKOFF" default:"2s"`
}

type RateLimitConfig struct {
	RPS   float64 `env:"RPS" default:"2"`
	Burst int     `env:"BURST" default:"5"`
}

type CORSConfig struct {
	Origins []string `env:"ORIGINS" default:"*"`
}

// Load reads .env (if present), an optional config.yaml, then the process
// environment. Environment variables win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		SkipFlags:          true,
		AllowUnknownEnvs:   true,
		AllowUnknownFields: true,
		Files:              []string{"config.yaml", "/etc/storefront/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if cfg.Auth.Provider == "local" && cfg.Auth.JWTSecret == "" {
		return nil, errors.New("AUTH_JWT_SECRET is required for the local auth provider")
	}
	if cfg.Auth.Provider == "jwks" && cfg.Auth.JWKSURL == "" {
		return nil, errors.New("AUTH_JWKS_URL is required for the jwks auth provider")
	}

	return &cfg, nil
}

// GetDSN returns the MySQL data source name.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

// PayFastConfigured reports whether merchant credentials are present.
func (c *Config) PayFastConfigured() bool {
	return c.PayFast.MerchantID != "" && c.PayFast.MerchantKey != ""
}
