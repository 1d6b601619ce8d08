// Package config loads the YAML configuration shared by the mimc52 commands.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"

	"github.com/TheusHen/mimc52/mimc52/identity"
	"github.com/TheusHen/mimc52/mimc52/puzzle"
)

var (
	ErrNoRounds      = errors.New("config: rounds must be positive")
	ErrBadSecret     = errors.New("config: puzzle secret must be hex of at least 16 bytes")
	ErrBadTTL        = errors.New("config: durations must be positive")
	ErrBadLogLevel   = errors.New("config: unknown log level")
	ErrNoListenAddr  = errors.New("config: listen address required")
	ErrWeakMinRounds = errors.New("config: identity rounds below the required minimum")
	ErrBadMaxRounds  = errors.New("config: identity max rounds below own or minimum rounds")
)

type Config struct {
	Listen    string          `yaml:"listen"`
	Identity  IdentityConfig  `yaml:"identity"`
	Puzzle    PuzzleConfig    `yaml:"puzzle"`
	Transport TransportConfig `yaml:"transport"`
	Log       LogConfig       `yaml:"log"`
}

type IdentityConfig struct {
	// Rounds is the delay paid when minting a new identity.
	Rounds uint64 `yaml:"rounds"`
	// MinRounds is the least delay accepted from remote identities.
	MinRounds uint64 `yaml:"minRounds"`
	// MaxRounds is the most delay rounds verified for a remote identity.
	MaxRounds uint64 `yaml:"maxRounds"`
	KeyFile   string `yaml:"keyFile"`
}

type PuzzleConfig struct {
	Rounds       uint64        `yaml:"rounds"`
	TTL          time.Duration `yaml:"ttl"`
	PassLifetime time.Duration `yaml:"passLifetime"`
	// Secret is hex. Empty means a random secret per process, so puzzles
	// and passes do not survive a restart.
	Secret        string        `yaml:"secret"`
	StorePath     string        `yaml:"storePath"`
	PruneInterval time.Duration `yaml:"pruneInterval"`
}

type TransportConfig struct {
	HandshakeTimeout time.Duration `yaml:"handshakeTimeout"`
	IdleTimeout      time.Duration `yaml:"idleTimeout"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() *Config {
	return &Config{
		Listen: "[::]:8346",
		Identity: IdentityConfig{
			Rounds:    identity.DefaultRounds,
			MinRounds: identity.DefaultRounds,
			MaxRounds: identity.DefaultMaxRounds,
			KeyFile:   "identity.json",
		},
		Puzzle: PuzzleConfig{
			Rounds:        puzzle.DefaultRounds,
			TTL:           puzzle.DefaultTTL,
			PassLifetime:  puzzle.DefaultPassLifetime,
			PruneInterval: time.Minute,
		},
		Transport: TransportConfig{
			HandshakeTimeout: 10 * time.Second,
			IdleTimeout:      time.Minute,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
// Relative key and store paths are resolved against the file's directory.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "load config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	dir := filepath.Dir(path)
	if cfg.Identity.KeyFile != "" && !filepath.IsAbs(cfg.Identity.KeyFile) {
		cfg.Identity.KeyFile = filepath.Join(dir, cfg.Identity.KeyFile)
	}
	if cfg.Puzzle.StorePath != "" && !filepath.IsAbs(cfg.Puzzle.StorePath) {
		cfg.Puzzle.StorePath = filepath.Join(dir, cfg.Puzzle.StorePath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Save writes the configuration, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "save config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "save config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o600), "save config")
}

func (c *Config) Validate() error {
	if c.Listen == "" {
		return ErrNoListenAddr
	}
	if c.Identity.Rounds == 0 || c.Puzzle.Rounds == 0 {
		return ErrNoRounds
	}
	if c.Identity.Rounds < c.Identity.MinRounds {
		return ErrWeakMinRounds
	}
	if c.Identity.MaxRounds < c.Identity.Rounds || c.Identity.MaxRounds < c.Identity.MinRounds {
		return ErrBadMaxRounds
	}
	if c.Puzzle.TTL <= 0 || c.Puzzle.PassLifetime <= 0 || c.Puzzle.PruneInterval <= 0 {
		return ErrBadTTL
	}
	if c.Puzzle.Secret != "" {
		if _, err := c.Puzzle.SecretBytes(); err != nil {
			return err
		}
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return ErrBadLogLevel
	}
	return nil
}

// SecretBytes decodes the configured secret, or returns a fresh random one
// when none is set.
func (p PuzzleConfig) SecretBytes() ([]byte, error) {
	if p.Secret == "" {
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, err
		}
		return secret, nil
	}
	secret, err := hex.DecodeString(p.Secret)
	if err != nil || len(secret) < puzzle.MinSecretSize {
		return nil, ErrBadSecret
	}
	return secret, nil
}

// Logger builds a zap logger at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, ErrBadLogLevel
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
