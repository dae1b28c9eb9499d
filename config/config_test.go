package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, SourceGenerate, cfg.Source.Kind)
	assert.Equal(t, 1200, cfg.Source.Count)
	assert.Equal(t, time.Second, cfg.Source.Delay)
	assert.Equal(t, 1, cfg.Grid.RowHeight)
	assert.Equal(t, 10, cfg.Grid.Overscan)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromOverrides(t *testing.T) {
	path := writeConfig(t, `
source:
  kind: file
  path: ~/rosters/team.csv
  delay: 250ms
grid:
  overscan: 4
  collation: sv
log:
  level: debug
`)
	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	home, _ := os.UserHomeDir()
	assert.Equal(t, SourceFile, cfg.Source.Kind)
	assert.Equal(t, filepath.Join(home, "rosters/team.csv"), cfg.Source.Path)
	assert.Equal(t, 250*time.Millisecond, cfg.Source.Delay)
	assert.Equal(t, 1200, cfg.Source.Count, "unset fields keep defaults")
	assert.Equal(t, 4, cfg.Grid.Overscan)
	assert.Equal(t, 1, cfg.Grid.RowHeight)

	tag, err := cfg.CollationTag()
	require.NoError(t, err)
	assert.Equal(t, language.Swedish, tag)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadFromOverscanZero(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, "grid:\n  overscan: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Grid.Overscan)

	cfg, err = LoadFrom(writeConfig(t, "grid:\n  row_height: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Grid.Overscan, "absent overscan keeps the default")
	assert.Equal(t, 2, cfg.Grid.RowHeight)
}

func TestLoadFromInvalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":       "source: [",
		"unknown kind":   "source:\n  kind: database\n",
		"file no path":   "source:\n  kind: file\n",
		"bad level":      "log:\n  level: loud\n",
		"bad collation":  "grid:\n  collation: \"!!\"\n",
		"negative count": "source:\n  count: -1\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, content))
			require.Error(t, err)
		})
	}
}

func TestPathHonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "siftly-roster", "config.yaml"), Path())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
