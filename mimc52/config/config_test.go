package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yml")

	cfg := Default()
	cfg.Listen = "127.0.0.1:9000"
	cfg.Puzzle.Rounds = 1234
	cfg.Puzzle.TTL = 90 * time.Second
	cfg.Puzzle.Secret = "000102030405060708090a0b0c0d0e0f"
	cfg.Puzzle.StorePath = "/var/lib/mimc52/spent"
	cfg.Identity.KeyFile = "/etc/mimc52/identity.json"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoadParsesDurationsAndResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen: "[::1]:7000"
identity:
  rounds: 8192
  maxRounds: 65536
  keyFile: keys/identity.json
puzzle:
  rounds: 500
  ttl: 30s
  passLifetime: 2h
  storePath: spent
log:
  level: debug
  development: true
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "[::1]:7000", cfg.Listen)
	require.Equal(t, uint64(8192), cfg.Identity.Rounds)
	require.Equal(t, uint64(65536), cfg.Identity.MaxRounds)
	require.Equal(t, 30*time.Second, cfg.Puzzle.TTL)
	require.Equal(t, 2*time.Hour, cfg.Puzzle.PassLifetime)
	require.Equal(t, time.Minute, cfg.Puzzle.PruneInterval)
	require.Equal(t, filepath.Join(dir, "keys", "identity.json"), cfg.Identity.KeyFile)
	require.Equal(t, filepath.Join(dir, "spent"), cfg.Puzzle.StorePath)

	logger, err := cfg.Logger()
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]struct {
		edit func(*Config)
		err  error
	}{
		"no listen":     {func(c *Config) { c.Listen = "" }, ErrNoListenAddr},
		"zero rounds":   {func(c *Config) { c.Puzzle.Rounds = 0 }, ErrNoRounds},
		"weak identity": {func(c *Config) { c.Identity.Rounds = c.Identity.MinRounds - 1 }, ErrWeakMinRounds},
		"max below own": {func(c *Config) { c.Identity.MaxRounds = c.Identity.Rounds - 1 }, ErrBadMaxRounds},
		"zero ttl":      {func(c *Config) { c.Puzzle.TTL = 0 }, ErrBadTTL},
		"bad secret":    {func(c *Config) { c.Puzzle.Secret = "zz" }, ErrBadSecret},
		"short secret":  {func(c *Config) { c.Puzzle.Secret = "0011" }, ErrBadSecret},
		"bad level":     {func(c *Config) { c.Log.Level = "loud" }, ErrBadLogLevel},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			tc.edit(cfg)
			require.ErrorIs(t, cfg.Validate(), tc.err)
		})
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("puzzle:\n  rounds: 0\n"), 0o600))
	_, err := Load(path)
	require.ErrorIs(t, err, ErrNoRounds)

	require.NoError(t, os.WriteFile(path, []byte("listen: [unclosed\n"), 0o600))
	_, err = Load(path)
	require.Error(t, err)
}

func TestSecretBytes(t *testing.T) {
	random, err := PuzzleConfig{}.SecretBytes()
	require.NoError(t, err)
	require.Len(t, random, 32)

	other, err := PuzzleConfig{}.SecretBytes()
	require.NoError(t, err)
	require.NotEqual(t, random, other)

	fixed, err := PuzzleConfig{Secret: "000102030405060708090a0b0c0d0e0f"}.SecretBytes()
	require.NoError(t, err)
	require.Len(t, fixed, 16)
}
