package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Wallet    WalletConfig    `mapstructure:"wallet"`
	Chain     ChainConfig     `mapstructure:"chain"`
	Coin      CoinConfig      `mapstructure:"coin"`
	Metadata  MetadataConfig  `mapstructure:"metadata"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`    // debug, release, test
	APIKey         string   `mapstructure:"api_key"` // empty = x-api-key check disabled
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxUploadBytes int64    `mapstructure:"max_upload_bytes"` // logo file cap
	MaxBodyBytes   int64    `mapstructure:"max_body_bytes"`   // whole request body cap
	TrustedProxies []string `mapstructure:"trusted_proxies"`  // empty = client IP is the TCP peer
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type WalletConfig struct {
	PrivateKey string `mapstructure:"private_key"` // hex, with or without 0x
}

type ChainConfig struct {
	RPCURL         string        `mapstructure:"rpc_url"`
	ChainID        int64         `mapstructure:"chain_id"`
	SkipChain      bool          `mapstructure:"skip_chain"`
	RPCTimeout     time.Duration `mapstructure:"rpc_timeout"`
	ReceiptTimeout time.Duration `mapstructure:"receipt_timeout"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
}

type CoinConfig struct {
	FactoryAddress  string `mapstructure:"factory_address"`
	Currency        string `mapstructure:"currency"` // ZORA or ETH
	CurrencyAddress string `mapstructure:"currency_address"`
	GasMultiplier   int    `mapstructure:"gas_multiplier"` // percent of estimated gas

	PoolVersion             uint8    `mapstructure:"pool_version"`
	TickLower               []int    `mapstructure:"tick_lower"`
	TickUpper               []int    `mapstructure:"tick_upper"`
	NumDiscoveryPositions   []int    `mapstructure:"num_discovery_positions"`
	MaxDiscoverySupplyShare []string `mapstructure:"max_discovery_supply_share"` // 1e18-scaled decimals
}

type MetadataConfig struct {
	APIKey            string        `mapstructure:"api_key"` // empty = remote upload disabled, inline only
	UploadURL         string        `mapstructure:"upload_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
}

type RateLimitConfig struct {
	Max    int64         `mapstructure:"max"`
	Window time.Duration `mapstructure:"window"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"` // empty = in-memory counters
}

type DatabaseConfig struct {
	URL             string        `mapstructure:"url"` // empty = launch records are only logged
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// legacyEnv maps config keys to the unprefixed variable names used by
// existing deployments. They are consulted after the LAUNCHER_ names.
var legacyEnv = map[string]string{
	"wallet.private_key": "DEPLOYER_PRIVATE_KEY",
	"metadata.api_key":   "ZORA_API_KEY",
	"chain.rpc_url":      "RPC_URL",
	"chain.skip_chain":   "SKIP_CHAIN",
	"server.api_key":     "API_KEY",
	"server.port":        "PORT",
	"redis.url":          "REDIS_URL",
	"database.url":       "DATABASE_URL",
	"log.level":          "LOG_LEVEL",
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: LAUNCHER_.
// Nested keys use underscore: LAUNCHER_CHAIN_RPC_URL, LAUNCHER_RATELIMIT_MAX, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.api_key", "")
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost",
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
		"https://www.incrypt.net",
		"https://app.incrypt.net",
	})
	v.SetDefault("server.max_upload_bytes", 5<<20)
	v.SetDefault("server.max_body_bytes", 6<<20)
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("wallet.private_key", "")
	v.SetDefault("chain.rpc_url", "https://mainnet.base.org")
	v.SetDefault("chain.chain_id", 8453)
	v.SetDefault("chain.skip_chain", false)
	v.SetDefault("chain.rpc_timeout", "30s")
	v.SetDefault("chain.receipt_timeout", "2m")
	v.SetDefault("chain.poll_interval", "2s")
	v.SetDefault("coin.factory_address", "0x777777751622c0d3258f214F9DF38E35BF45baF3")
	v.SetDefault("coin.currency", "ZORA")
	v.SetDefault("coin.currency_address", "0x1111111111166b7FE7bd91427724B487980aFc69")
	v.SetDefault("coin.gas_multiplier", 120)
	v.SetDefault("coin.pool_version", 4)
	v.SetDefault("coin.tick_lower", []int{-138000})
	v.SetDefault("coin.tick_upper", []int{-81000})
	v.SetDefault("coin.num_discovery_positions", []int{11})
	v.SetDefault("coin.max_discovery_supply_share", []string{"50000000000000000"})
	v.SetDefault("metadata.api_key", "")
	v.SetDefault("metadata.upload_url", "https://ipfs-uploader.zora.co/api/v0/add?cid-version=1")
	v.SetDefault("metadata.timeout", "20s")
	v.SetDefault("metadata.requests_per_second", 5)
	v.SetDefault("metadata.burst", 5)
	v.SetDefault("ratelimit.max", 20)
	v.SetDefault("ratelimit.window", "15m")
	v.SetDefault("redis.url", "")
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
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

	// Environment variables: LAUNCHER_CHAIN_RPC_URL -> chain.rpc_url
	v.SetEnvPrefix("LAUNCHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		prefixed := "LAUNCHER_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	// Read config file (not required; env vars can suffice)
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
	if c.RateLimit.Max <= 0 {
		return fmt.Errorf("ratelimit.max must be positive, got %d", c.RateLimit.Max)
	}
	if c.RateLimit.Window < time.Second {
		return fmt.Errorf("ratelimit.window must be at least 1s, got %s", c.RateLimit.Window)
	}
	if c.Server.MaxUploadBytes <= 0 || c.Server.MaxBodyBytes < c.Server.MaxUploadBytes {
		return fmt.Errorf("server.max_body_bytes (%d) must be >= server.max_upload_bytes (%d) > 0",
			c.Server.MaxBodyBytes, c.Server.MaxUploadBytes)
	}
	switch strings.ToUpper(c.Coin.Currency) {
	case "ZORA", "ETH":
	default:
		return fmt.Errorf("coin.currency must be ZORA or ETH, got %q", c.Coin.Currency)
	}
	if c.Coin.GasMultiplier < 100 {
		return fmt.Errorf("coin.gas_multiplier must be >= 100, got %d", c.Coin.GasMultiplier)
	}
	return nil
}
