package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Session SessionConfig
	Ledger  LedgerConfig
	Redis   RedisConfig
	NATS    NATSConfig
	Auth    AuthConfig
	Email   EmailConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// SessionConfig selects the key-value backend for profile and
// reservation state. Backend is one of "memory", "file", "redis".
type SessionConfig struct {
	Backend  string
	FilePath string
}

type LedgerConfig struct {
	RPCURL         string
	PackageID      string
	WalletAddress  string
	SignerURL      string
	RequestTimeout time.Duration
}

type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

type NATSConfig struct {
	URL       string
	ClusterID string
}

type AuthConfig struct {
	JWTSecret       string
	SessionTTL      time.Duration
	AccessCodeHash  string
	UniversalCode   string
}

type EmailConfig struct {
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	SMTPFrom      string
	SMTPUseTLS    bool
	MailerSendKey string
	DevMode       bool // print emails to logs instead of sending
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Session: SessionConfig{
			Backend:  getEnv("SESSION_BACKEND", "file"),
			FilePath: getEnv("SESSION_FILE_PATH", "vitalis_session.json"),
		},
		Ledger: LedgerConfig{
			RPCURL:         getEnv("LEDGER_RPC_URL", "https://fullnode.testnet.sui.io:443"),
			PackageID:      getEnv("LEDGER_PACKAGE_ID", "0x1e31d3c6886eb6859dd36f40de17b3b0d64a1ed145a1e514b01cabedf276f3cb"),
			WalletAddress:  getEnv("LEDGER_WALLET_ADDRESS", ""),
			SignerURL:      getEnv("LEDGER_SIGNER_URL", ""),
			RequestTimeout: getDuration("LEDGER_REQUEST_TIMEOUT", 15*time.Second),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		NATS: NATSConfig{
			URL:       getEnv("NATS_URL", "nats://localhost:4222"),
			ClusterID: getEnv("NATS_CLUSTER_ID", "vitalis-cluster"),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", "dev-only-secret-change-in-prod"),
			SessionTTL:     getDuration("SESSION_TTL", 24*time.Hour),
			AccessCodeHash: getEnv("ACCESS_CODE_HASH", ""),
			UniversalCode:  getEnv("UNIVERSAL_ACCESS_CODE", "VITALIS-001"),
		},
		Email: EmailConfig{
			SMTPHost:      getEnv("SMTP_HOST", "localhost"),
			SMTPPort:      getInt("SMTP_PORT", 1025),
			SMTPUser:      getEnv("SMTP_USER", ""),
			SMTPPass:      getEnv("SMTP_PASS", ""),
			SMTPFrom:      getEnv("SMTP_FROM", "noreply@vitalis.local"),
			SMTPUseTLS:    getBool("SMTP_USE_TLS", false),
			MailerSendKey: getEnv("MAILERSEND_API_KEY", ""),
			DevMode:       getBool("EMAIL_DEV_MODE", true),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
