package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
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

// ChainConfig configures the transaction submitter.
// Driver "local" acknowledges transitions without a chain.
type ChainConfig struct {
	Driver              string        `mapstructure:"driver"` // ethereum, local
	RPCURL              string        `mapstructure:"rpc_url"`
	ChainID             int64         `mapstructure:"chain_id"`
	ContractAddress     string        `mapstructure:"contract_address"`
	OperatorKey         string        `mapstructure:"operator_key"` // hex-encoded secp256k1 key
	GasPrice            int64         `mapstructure:"gas_price"`    // 0 = ask the node
	GasLimitCap         uint64        `mapstructure:"gas_limit_cap"`
	ConfirmationTimeout time.Duration `mapstructure:"confirmation_timeout"`
	PollInterval        time.Duration `mapstructure:"poll_interval"`
	MaxAttempts         int           `mapstructure:"max_attempts"`
}

// SubmissionBudget is the longest a single submission can hold its entity
// locks: at most two broadcast rounds (a resend and a fresh signature) plus
// the confirmation wait.
func (c ChainConfig) SubmissionBudget() time.Duration {
	attempts := c.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return c.ConfirmationTimeout + 2*time.Duration(attempts)*c.PollInterval
}

// LedgerConfig configures state storage and entity locking.
type LedgerConfig struct {
	VoucherIDOrigin uint64        `mapstructure:"voucher_id_origin"`
	Storage         string        `mapstructure:"storage"` // postgres, memory
	Locks           string        `mapstructure:"locks"`   // redis, memory
	LockTTL         time.Duration `mapstructure:"lock_ttl"`
	LockWait        time.Duration `mapstructure:"lock_wait"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SVL_ (Smart Voucher Ledger).
// Nested keys use underscore: SVL_DATABASE_HOST, SVL_CHAIN_OPERATOR_KEY, etc.
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
	v.SetDefault("database.dbname", "smart_voucher")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("chain.driver", "local")
	v.SetDefault("chain.rpc_url", "http://127.0.0.1:8545")
	v.SetDefault("chain.chain_id", 1337)
	v.SetDefault("chain.contract_address", "")
	v.SetDefault("chain.operator_key", "")
	v.SetDefault("chain.gas_price", 0)
	v.SetDefault("chain.gas_limit_cap", 3000000)
	v.SetDefault("chain.confirmation_timeout", "2m")
	v.SetDefault("chain.poll_interval", "2s")
	v.SetDefault("chain.max_attempts", 3)
	v.SetDefault("ledger.voucher_id_origin", 1)
	v.SetDefault("ledger.storage", "postgres")
	v.SetDefault("ledger.locks", "redis")
	v.SetDefault("ledger.lock_ttl", "3m")
	v.SetDefault("ledger.lock_wait", "10s")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "1h")
	v.SetDefault("jwt.issuer", "smart-voucher")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: SVL_DATABASE_HOST -> database.host
	v.SetEnvPrefix("SVL")
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

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Ledger.Locks != "redis" {
		return nil
	}
	// Redis locks expire on their own; one must outlive every submission
	// made while holding it.
	if c.Ledger.LockTTL <= 0 {
		return fmt.Errorf("ledger.lock_ttl must be positive with redis locks")
	}
	if c.Chain.ConfirmationTimeout <= 0 {
		return fmt.Errorf("chain.confirmation_timeout must be positive with redis locks")
	}
	if budget := c.Chain.SubmissionBudget(); c.Ledger.LockTTL <= budget {
		return fmt.Errorf("ledger.lock_ttl %s must exceed the submission budget %s (confirmation timeout plus send retries)",
			c.Ledger.LockTTL, budget)
	}
	return nil
}
