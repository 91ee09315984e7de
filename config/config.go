package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
)

const (
	DefaultCluster          = "devnet"
	DefaultRpc              = "https://api.devnet.solana.com"
	DefaultCommitment       = types.CommitmentConfirmed
	DefaultMaxAttempts      = 6
	DefaultInitialBackoffMs = 500
	DefaultMaxBackoffMs     = 8_000
	DefaultPollIntervalMs   = 500
	DefaultConfirmTimeoutMs = 60_000
	DefaultFeeCacheSize     = 128
)

// Environment variables that override the config file.
const (
	EnvRpcUrl     = "SOLANA_RPC_URL"
	EnvKeyFile    = "SOLANA_KEY_FILE"
	EnvCommitment = "SOLANA_COMMITMENT"
)

type Solana struct {
	Cluster       string   `toml:"cluster"`
	Rpcs          []string `toml:"rpcs"`
	Commitment    string   `toml:"commitment"`
	SkipPreflight bool     `toml:"skip_preflight"`

	// Transport attempts per request before giving up with a timeout.
	MaxAttempts      int `toml:"max_attempts"`
	InitialBackoffMs int `toml:"initial_backoff_ms"`
	MaxBackoffMs     int `toml:"max_backoff_ms"`
	PollIntervalMs   int `toml:"poll_interval_ms"`
	ConfirmTimeoutMs int `toml:"confirm_timeout_ms"`

	FeeCacheSize int `toml:"fee_cache_size"`
}

type Config struct {
	KeyFile string `toml:"key_file"`
	Solana  Solana `toml:"solana"`
}

func Default() Config {
	cfg := Config{}
	cfg.Solana.applyDefaults()

	return cfg
}

// Load reads the TOML file at path, then applies the .env file (if any) and environment
// overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Config{}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "cannot decode config file %s", path)
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return cfg, errors.Wrap(err, "cannot load .env")
	}
	cfg.applyEnv()
	cfg.Solana.applyDefaults()

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() {
	if url := strings.TrimSpace(os.Getenv(EnvRpcUrl)); url != "" {
		c.Solana.Rpcs = strings.Split(url, ",")
	}
	if keyFile := os.Getenv(EnvKeyFile); keyFile != "" {
		c.KeyFile = keyFile
	}
	if commitment := os.Getenv(EnvCommitment); commitment != "" {
		c.Solana.Commitment = commitment
	}
}

func (s *Solana) applyDefaults() {
	if s.Cluster == "" {
		s.Cluster = DefaultCluster
	}
	if len(s.Rpcs) == 0 {
		s.Rpcs = []string{DefaultRpc}
	}
	if s.Commitment == "" {
		s.Commitment = string(DefaultCommitment)
	}
	if s.MaxAttempts <= 0 {
		s.MaxAttempts = DefaultMaxAttempts
	}
	if s.InitialBackoffMs <= 0 {
		s.InitialBackoffMs = DefaultInitialBackoffMs
	}
	if s.MaxBackoffMs <= 0 {
		s.MaxBackoffMs = DefaultMaxBackoffMs
	}
	if s.PollIntervalMs <= 0 {
		s.PollIntervalMs = DefaultPollIntervalMs
	}
	if s.ConfirmTimeoutMs <= 0 {
		s.ConfirmTimeoutMs = DefaultConfirmTimeoutMs
	}
	if s.FeeCacheSize <= 0 {
		s.FeeCacheSize = DefaultFeeCacheSize
	}
}

// WithDefaults returns a copy of s with every unset or non-positive field set to its default.
func (s Solana) WithDefaults() Solana {
	s.Rpcs = append([]string(nil), s.Rpcs...)
	s.applyDefaults()

	return s
}

func (c Config) Validate() error {
	return c.Solana.Validate()
}

func (s Solana) Validate() error {
	if !types.Commitment(s.Commitment).IsValid() {
		return errors.Errorf("invalid commitment %q", s.Commitment)
	}
	for _, rpc := range s.Rpcs {
		if strings.TrimSpace(rpc) == "" {
			return errors.New("empty rpc url")
		}
	}
	if s.InitialBackoffMs > s.MaxBackoffMs {
		return errors.Errorf("initial backoff %dms is larger than max backoff %dms", s.InitialBackoffMs, s.MaxBackoffMs)
	}

	return nil
}

func (s Solana) GetCommitment() types.Commitment {
	return types.Commitment(s.Commitment)
}

func (s Solana) InitialBackoff() time.Duration {
	return time.Duration(s.InitialBackoffMs) * time.Millisecond
}

func (s Solana) MaxBackoff() time.Duration {
	return time.Duration(s.MaxBackoffMs) * time.Millisecond
}

func (s Solana) PollInterval() time.Duration {
	return time.Duration(s.PollIntervalMs) * time.Millisecond
}

func (s Solana) ConfirmTimeout() time.Duration {
	return time.Duration(s.ConfirmTimeoutMs) * time.Millisecond
}
