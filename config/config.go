package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Document store
	StoreDriver         string // mongo, memory
	MongoURI            string
	MongoDB             string
	MongoConnectTimeout time.Duration
	MigrationsDir       string

	// Stripe
	StripeSecretKey string
	StripeAPIURL    string // optional; overrides the Stripe API base URL

	// Redis (rate limiting, product cache)
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	RateLimitPerMinute int
	RateLimitSkipLocal bool

	// CORS
	CORSAllowedOrigins string // comma-separated, empty allows every origin

	// Elasticsearch (product search)
	ElasticsearchAddrs string // comma-separated
	ElasticsearchUser  string
	ElasticsearchPass  string
	ESProductsIndex    string

	// RabbitMQ (order notifications)
	RabbitMQURL        string
	RabbitMQOrderQueue string

	// Mailgun
	MailgunDomain string
	MailgunAPIKey string
	MailgunSender string

	// Email sending toggle
	MailSendEnabled bool

	// Debug endpoints (/debug/vars, /debug/store)
	DebugMetricsEnabled bool

	// HTTP access log toggle
	HTTPLogEnabled bool

	// Admin created by cmd/seed
	SeedAdminEmail string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "go-mongo-shop"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "5000"),
		GinMode: getenv("GIN_MODE", "release"),

		StoreDriver:         strings.ToLower(getenv("STORE_DRIVER", "mongo")),
		MongoURI:            getenv("MONGO_URI", ""),
		MongoDB:             getenv("MONGO_DB", "shop"),
		MongoConnectTimeout: getdur("MONGO_CONNECT_TIMEOUT", 30*time.Second),
		MigrationsDir:       getenv("MIGRATIONS_DIR", "migrations"),

		StripeSecretKey: getenv("STRIPE_SECRET_KEY", ""),
		StripeAPIURL:    getenv("STRIPE_API_URL", ""),

		RedisAddr:          getenv("REDIS_ADDR", ""),
		RedisPassword:      getenv("REDIS_PASSWORD", ""),
		RedisDB:            getint("REDIS_DB", 0),
		RateLimitPerMinute: getint("RATE_LIMIT_PER_MINUTE", 300),
		RateLimitSkipLocal: getbool("RATE_LIMIT_SKIP_LOCAL", false),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		ElasticsearchAddrs: getenv("ELASTICSEARCH_ADDRS", ""),
		ElasticsearchUser:  getenv("ELASTICSEARCH_USERNAME", ""),
		ElasticsearchPass:  getenv("ELASTICSEARCH_PASSWORD", ""),
		ESProductsIndex:    getenv("ES_PRODUCTS_INDEX", "products"),

		RabbitMQURL:        getenv("RABBITMQ_URL", ""),
		RabbitMQOrderQueue: getenv("RABBITMQ_ORDER_QUEUE", "order_notifications"),

		MailgunDomain: getenv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey: getenv("MAILGUN_API_KEY", ""),
		MailgunSender: getenv("MAILGUN_SENDER", ""),

		// email worker exits immediately when false
		MailSendEnabled: getbool("MAIL_SEND_ENABLED", true),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", false),

		// always on in development
		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),

		SeedAdminEmail: getenv("SEED_ADMIN_EMAIL", "admin@shop.local"),
	}
}

// Validate reports missing settings that must be present before the server starts.
func (c *Config) Validate() error {
	var errs []error
	switch c.StoreDriver {
	case "mongo":
		if c.MongoURI == "" {
			errs = append(errs, errors.New("MONGO_URI must be set"))
		}
	case "memory":
	default:
		errs = append(errs, errors.New("STORE_DRIVER must be one of: mongo, memory"))
	}
	if c.StripeSecretKey == "" {
		errs = append(errs, errors.New("STRIPE_SECRET_KEY must be set"))
	}
	return errors.Join(errs...)
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

// ESAddrs returns Elasticsearch addresses as a slice
func (c *Config) ESAddrs() []string {
	return splitList(c.ElasticsearchAddrs)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
