package config

import (
	"fmt"
	"strings"
	"time"

	"sovtoken-payments/internal/core/domain"
	"sovtoken-payments/internal/core/payload"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	AES      AESConfig      `mapstructure:"aes"`
	Log      LogConfig      `mapstructure:"log"`
	Payment  PaymentConfig  `mapstructure:"payment"`
	Bridge   BridgeConfig   `mapstructure:"bridge"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key sealing wallet seeds
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// PaymentConfig controls how the payment method validates and builds requests.
type PaymentConfig struct {
	MethodName              string `mapstructure:"method_name"`
	ProtocolVersion         int    `mapstructure:"protocol_version"`
	AllowZeroPaymentOutputs bool   `mapstructure:"allow_zero_payment_outputs"`
	AllowZeroMintOutputs    bool   `mapstructure:"allow_zero_mint_outputs"`
	FeeUpdatePolicy         string `mapstructure:"fee_update_policy"` // replace, merge
	SubmitterMinLength      int    `mapstructure:"submitter_min_length"`
	SubmitterMaxLength      int    `mapstructure:"submitter_max_length"`
}

// Policy converts the section into the payload validation policy.
func (p PaymentConfig) Policy() payload.Policy {
	return payload.Policy{
		AllowZeroPaymentOutputs: p.AllowZeroPaymentOutputs,
		AllowZeroMintOutputs:    p.AllowZeroMintOutputs,
		SubmitterMinLength:      p.SubmitterMinLength,
		SubmitterMaxLength:      p.SubmitterMaxLength,
	}
}

// FeePolicy returns the parsed fee update policy.
func (p PaymentConfig) FeePolicy() domain.FeeUpdatePolicy {
	policy, _ := domain.ParseFeeUpdatePolicy(p.FeeUpdatePolicy)
	return policy
}

type BridgeConfig struct {
	Workers   int           `mapstructure:"workers"`
	ResultTTL time.Duration `mapstructure:"result_ttl"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SOV_.
// Nested keys use underscore: SOV_DATABASE_HOST, SOV_PAYMENT_FEE_UPDATE_POLICY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "sovtoken")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "sovtoken-payments")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("payment.method_name", "sov")
	v.SetDefault("payment.protocol_version", 2)
	v.SetDefault("payment.allow_zero_payment_outputs", false)
	v.SetDefault("payment.allow_zero_mint_outputs", true)
	v.SetDefault("payment.fee_update_policy", string(domain.FeeUpdateReplace))
	v.SetDefault("payment.submitter_min_length", 20)
	v.SetDefault("payment.submitter_max_length", 22)
	v.SetDefault("bridge.workers", 8)
	v.SetDefault("bridge.result_ttl", "10m")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: SOV_DATABASE_HOST -> database.host
	v.SetEnvPrefix("SOV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the payment method cannot run with.
func (c *Config) Validate() error {
	if _, err := domain.ParseFeeUpdatePolicy(c.Payment.FeeUpdatePolicy); err != nil {
		return fmt.Errorf("payment.fee_update_policy: %w", err)
	}
	if c.Payment.MethodName == "" {
		return fmt.Errorf("payment.method_name must not be empty")
	}
	if c.Payment.ProtocolVersion < 1 {
		return fmt.Errorf("payment.protocol_version must be positive, got %d", c.Payment.ProtocolVersion)
	}
	if c.Payment.SubmitterMinLength < 1 || c.Payment.SubmitterMaxLength < c.Payment.SubmitterMinLength {
		return fmt.Errorf("payment submitter length bounds [%d, %d] are invalid",
			c.Payment.SubmitterMinLength, c.Payment.SubmitterMaxLength)
	}
	if c.Bridge.Workers < 1 {
		return fmt.Errorf("bridge.workers must be at least 1, got %d", c.Bridge.Workers)
	}
	return nil
}
