package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"middlegame/rules"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, 1<<20, cfg.TTCapacity)
	assert.True(t, cfg.NullMove)
	assert.Equal(t, DefaultMaxPlies, cfg.MaxPlies)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
	assert.Equal(t, 1, cfg.Games)
	assert.GreaterOrEqual(t, cfg.Concurrency, 1)
	assert.Empty(t, cfg.Seed)
	assert.Equal(t, DefaultOpenings, cfg.Openings)
}

func TestLoadFileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "middlegame.yaml")
	contents := `
max_depth: 3
log_level: debug
seed: fixed
openings:
  - eco: C20
    name: King's Pawn Game
    moves: "1. e4 e5"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	t.Setenv("MIDDLEGAME_GAMES", "4")
	t.Setenv("MIDDLEGAME_MAX_DEPTH", "2")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.MaxDepth, "environment overrides the file")
	assert.Equal(t, 4, cfg.Games)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, "fixed", cfg.Seed)
	require.Len(t, cfg.Openings, 1)
	assert.Equal(t, Opening{ECO: "C20", Name: "King's Pawn Game", Moves: "1. e4 e5"}, cfg.Openings[0])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			MaxDepth:    4,
			TTCapacity:  1024,
			MaxPlies:    100,
			LogLevel:    "info",
			Games:       1,
			Concurrency: 1,
			Openings:    DefaultOpenings,
		}
	}
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero depth", func(c *Config) { c.MaxDepth = 0 }},
		{"depth beyond ply table", func(c *Config) { c.MaxDepth = 64 }},
		{"empty table", func(c *Config) { c.TTCapacity = 0 }},
		{"no plies", func(c *Config) { c.MaxPlies = 0 }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
		{"no games", func(c *Config) { c.Games = 0 }},
		{"no workers", func(c *Config) { c.Concurrency = 0 }},
		{"unnamed opening", func(c *Config) { c.Openings = []Opening{{Moves: "1. e4"}} }},
	}

	base := valid()
	require.NoError(t, base.Validate())

	// an empty book plays from the initial position
	bookless := valid()
	bookless.Openings = nil
	require.NoError(t, bookless.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestOpeningSAN(t *testing.T) {
	o := Opening{Moves: "1. e4 c5 2. Nf3 d6 10... O-O 3.d4"}
	assert.Equal(t, []string{"e4", "c5", "Nf3", "d6", "O-O", "3.d4"}, o.SAN())
	assert.Empty(t, Opening{}.SAN())
}

func TestDefaultOpeningsAreLegal(t *testing.T) {
	for _, o := range DefaultOpenings {
		t.Run(o.Name, func(t *testing.T) {
			pos := rules.StartPosition()
			for _, san := range o.SAN() {
				m, err := pos.ParseSAN(san)
				require.NoError(t, err, "%s in %s", san, o.Name)
				pos.Apply(m)
			}
			assert.False(t, pos.IsCheckmate())
		})
	}
}
