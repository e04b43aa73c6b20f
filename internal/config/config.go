package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends
const (
	StoreFile     = "file"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Price oracle backends
const (
	OracleCoinGecko = "coingecko"
	OracleGRPC      = "grpc"
)

// Config is the full application configuration.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	StoreBackend    string
	StoreFilePath   string
	StoreMaxRetries int

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	SQLitePath string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RateCacheTTL  time.Duration

	PriceOracle        string
	CoinGeckoURL       string
	GWHost             string
	GWPort             string
	PriceOracleTimeout time.Duration

	PaymentRailsFile string
	DemoBTCAddress   string
	BankAccount      string

	AdminEmail    string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPassword  string
	SMTPFrom      string
	SMTPSecure    bool
	NotifyTimeout time.Duration

	TelegramBotToken string
	TelegramChatID   int64

	KafkaBrokers []string
	KafkaTopic   string

	AdminJWTSecret    string
	AdminPasswordHash string
	JWTExp            time.Duration
}

// Load reads the env file at path (a missing file is not an error) and
// builds the configuration from the environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "4000"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		StoreBackend:  strings.ToLower(getEnv("STORE_BACKEND", StoreFile)),
		StoreFilePath: getEnv("STORE_FILE_PATH", "db.json"),

		PGHost:     getEnv("POSTGRES_HOST", "localhost"),
		PGUser:     getEnv("POSTGRES_USER", "user"),
		PGPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:       getEnv("POSTGRES_DB", "ledger"),

		SQLitePath: getEnv("SQLITE_PATH", "ledger.db"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		PriceOracle:  strings.ToLower(getEnv("PRICE_ORACLE", OracleCoinGecko)),
		CoinGeckoURL: getEnv("COINGECKO_URL", "https://api.coingecko.com/api/v3"),
		GWHost:       getEnv("GW_EXCHANGER_HOST", "localhost"),
		GWPort:       getEnv("GW_EXCHANGER_PORT", "50051"),

		PaymentRailsFile: getEnv("PAYMENT_RAILS_FILE", ""),
		DemoBTCAddress:   getEnv("DEMO_BTC_ADDRESS", "1DemoBTCAddress111111111111111111"),
		BankAccount:      getEnv("BANK_ACCOUNT", "account X"),

		AdminEmail:   getEnv("ADMIN_EMAIL", "ops@example.com"),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASS", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "no-reply@example.com"),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),

		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "ledger-events"),

		AdminJWTSecret:    getEnv("ADMIN_JWT_SECRET", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	var err error
	if cfg.StoreMaxRetries, err = getEnvInt("STORE_MAX_RETRIES", 5); err != nil {
		return nil, err
	}
	if cfg.PGPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RateCacheTTL, err = getEnvDuration("RATE_CACHE_TTL", time.Minute); err != nil {
		return nil, err
	}
	if cfg.PriceOracleTimeout, err = getEnvDuration("PRICE_ORACLE_TIMEOUT", 3*time.Second); err != nil {
		return nil, err
	}
	if cfg.SMTPPort, err = getEnvInt("SMTP_PORT", 587); err != nil {
		return nil, err
	}
	if cfg.SMTPSecure, err = getEnvBool("SMTP_SECURE", false); err != nil {
		return nil, err
	}
	if cfg.NotifyTimeout, err = getEnvDuration("NOTIFY_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if chatID := getEnv("TELEGRAM_CHAT_ID", ""); chatID != "" {
		if cfg.TelegramChatID, err = strconv.ParseInt(chatID, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID %q: %w", chatID, err)
		}
	}
	jwtExpSecond, err := getEnvInt("JWT_EXP_SECOND", 3600)
	if err != nil {
		return nil, err
	}
	cfg.JWTExp = time.Duration(jwtExpSecond) * time.Second

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case StoreFile, StorePostgres, StoreSQLite:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	switch c.PriceOracle {
	case OracleCoinGecko, OracleGRPC:
	default:
		return fmt.Errorf("unknown PRICE_ORACLE %q", c.PriceOracle)
	}
	if c.AdminJWTSecret != "" && c.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required when ADMIN_JWT_SECRET is set")
	}
	return nil
}

// AdminAuthEnabled reports whether admin routes require a token.
func (c *Config) AdminAuthEnabled() bool {
	return c.AdminJWTSecret != ""
}

// PostgresDSN builds the pgx connection string.
func (c *Config) PostgresDSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PGUser, c.PGPassword),
		Host:     net.JoinHostPort(c.PGHost, strconv.Itoa(c.PGPort)),
		Path:     c.PGDB,
		RawQuery: "sslmode=disable",
	}
	return dsn.String()
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	val := getEnv(key, "")
	if val == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q (%w)", key, val, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	val := getEnv(key, "")
	if val == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for %s: %q (%w)", key, val, err)
	}
	return b, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	val := getEnv(key, "")
	if val == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q (%w)", key, val, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
