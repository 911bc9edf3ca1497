// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Execution policies accepted by EXECUTION_POLICY.
const (
	PolicyMajority = "majority"
	PolicyOPA      = "opa"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// GRPCAddr is the address the gRPC server listens on (e.g. :8080).
	GRPCAddr string `mapstructure:"GRPC_ADDR"`
	// HTTPAddr is the address of the HTTP gateway (e.g. :8081). Empty disables the gateway.
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	// DatabaseURL is the Postgres DSN for the audit trail; empty keeps audit logs in memory.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// JWTPrivateKey is the PEM-encoded private key (RSA or ECDSA) or path to file. Only needed to mint tokens.
	JWTPrivateKey string `mapstructure:"JWT_PRIVATE_KEY"`
	// JWTPublicKey is the PEM-encoded public key or path to file. Setting it enables bearer auth.
	JWTPublicKey string `mapstructure:"JWT_PUBLIC_KEY"`
	// JWTIssuer is the iss claim (e.g. "ledger-auth").
	JWTIssuer string `mapstructure:"JWT_ISSUER"`
	// JWTAudience is the aud claim (e.g. "ledger-api").
	JWTAudience string `mapstructure:"JWT_AUDIENCE"`
	// JWTAccessTTL is the access token lifetime (e.g. "15m").
	JWTAccessTTL string `mapstructure:"JWT_ACCESS_TTL"`
	// AuthInsecureHeader when true trusts the x-actor header as identity. Dev only; must not be true when Env is production.
	AuthInsecureHeader bool `mapstructure:"AUTH_INSECURE_HEADER"`
	// ExecutionPolicy is "majority" (built-in rule) or "opa" (Rego evaluated by OPA).
	ExecutionPolicy string `mapstructure:"EXECUTION_POLICY"`
	// ExecutionPolicyFile is an optional Rego file for the opa policy; empty uses the built-in Rego.
	ExecutionPolicyFile string `mapstructure:"EXECUTION_POLICY_FILE"`
	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`

	// Event stream (optional). When Kafka brokers are set, the server publishes ledger events to Kafka.
	// KafkaBrokers is a comma-separated list of Kafka broker addresses (e.g. "localhost:9092").
	KafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	// LedgerEventsTopic is the Kafka topic for ledger events (default ledger-events).
	LedgerEventsTopic string `mapstructure:"LEDGER_EVENTS_TOPIC"`
	// Worker-only: Loki URL for the event worker to push logs (e.g. http://localhost:3100).
	LokiURL string `mapstructure:"LOKI_URL"`
	// KafkaGroupID is the consumer group ID for the event worker.
	KafkaGroupID string `mapstructure:"KAFKA_GROUP_ID"`

	// OTel (optional). Empty endpoint keeps tracing, metrics and log export off.
	OTelEndpoint    string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelInsecure    bool   `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
	OTelServiceName string `mapstructure:"OTEL_SERVICE_NAME"`

	// LogLevel is the zerolog level (debug, info, warn, error).
	LogLevel string `mapstructure:"LOG_LEVEL"`
	// LogFormat is "console" or "json".
	LogFormat string `mapstructure:"LOG_FORMAT"`
	// CORSOrigins is a comma-separated list of origins allowed by the HTTP gateway.
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`
	// TrustedProxies is a comma-separated list of proxy IPs or CIDRs whose forwarded-for
	// headers (HTTP) and metadata (gRPC) are believed when recording the client IP.
	TrustedProxies string `mapstructure:"TRUSTED_PROXIES"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("GRPC_ADDR", ":8080")
	v.SetDefault("HTTP_ADDR", ":8081")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("JWT_PRIVATE_KEY", "")
	v.SetDefault("JWT_PUBLIC_KEY", "")
	v.SetDefault("JWT_ISSUER", "ledger-auth")
	v.SetDefault("JWT_AUDIENCE", "ledger-api")
	v.SetDefault("JWT_ACCESS_TTL", "15m")
	v.SetDefault("AUTH_INSECURE_HEADER", false)
	v.SetDefault("EXECUTION_POLICY", PolicyMajority)
	v.SetDefault("EXECUTION_POLICY_FILE", "")
	v.SetDefault("APP_ENV", "")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("LEDGER_EVENTS_TOPIC", "ledger-events")
	v.SetDefault("LOKI_URL", "")
	v.SetDefault("KAFKA_GROUP_ID", "ledger-events-worker")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)
	v.SetDefault("OTEL_SERVICE_NAME", "collective-ledger")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("CORS_ORIGINS", "")
	v.SetDefault("TRUSTED_PROXIES", "127.0.0.1,::1")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.GRPCAddr == "" {
		return nil, errors.New("config: GRPC_ADDR must be set")
	}

	if cfg.AuthInsecureHeader && cfg.Env == "production" {
		return nil, errors.New("config: AUTH_INSECURE_HEADER must not be true when APP_ENV=production")
	}

	cfg.ExecutionPolicy = strings.ToLower(strings.TrimSpace(cfg.ExecutionPolicy))
	if cfg.ExecutionPolicy != PolicyMajority && cfg.ExecutionPolicy != PolicyOPA {
		return nil, errors.New("config: EXECUTION_POLICY must be majority or opa")
	}
	if cfg.ExecutionPolicyFile != "" && cfg.ExecutionPolicy != PolicyOPA {
		return nil, errors.New("config: EXECUTION_POLICY_FILE requires EXECUTION_POLICY=opa")
	}

	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return nil, errors.New("config: LOG_FORMAT must be console or json")
	}

	return &cfg, nil
}

// AuthEnabled reports whether bearer tokens are validated (a public key is configured).
func (c *Config) AuthEnabled() bool {
	return c != nil && c.JWTPublicKey != ""
}

// AccessTTL parses JWTAccessTTL as a time.Duration. Returns 15m if unset or invalid.
func (c *Config) AccessTTL() time.Duration {
	d, err := time.ParseDuration(c.JWTAccessTTL)
	if err != nil || d <= 0 {
		return 15 * time.Minute
	}
	return d
}

// KafkaBrokersList returns Kafka broker addresses from the comma-separated config.
// Used to decide if the event stream is enabled (non-empty list) and to create the producer.
func (c *Config) KafkaBrokersList() []string {
	if c == nil {
		return nil
	}
	return splitList(c.KafkaBrokers)
}

// CORSOriginsList returns the allowed gateway origins from the comma-separated config.
func (c *Config) CORSOriginsList() []string {
	if c == nil {
		return nil
	}
	return splitList(c.CORSOrigins)
}

// TrustedProxiesList returns the trusted proxy IPs and CIDRs from the comma-separated config.
func (c *Config) TrustedProxiesList() []string {
	if c == nil {
		return nil
	}
	return splitList(c.TrustedProxies)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
