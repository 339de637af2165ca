package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubescramble/internal/render"
	"github.com/SeamusWaldron/cubescramble/pkg/types"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
cubie_size: 20
gap: 0
strict_depth: true
max_scramble_length: 128
db_path: /tmp/renders.db
colors:
  U: yellow
  d: "#FFFFFF"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, render.Layout{CubieSize: 20, Gap: 0}, cfg.Layout())
	assert.True(t, cfg.StrictDepth)
	assert.Equal(t, 128, cfg.MaxScrambleLength)
	assert.Equal(t, "/tmp/renders.db", cfg.GetDBPath())

	scheme, err := cfg.ColorScheme()
	require.NoError(t, err)
	assert.Equal(t, types.Yellow, scheme[types.FaceU])
	assert.Equal(t, types.White, scheme[types.FaceD])
	assert.Equal(t, types.Red, scheme[types.FaceR], "faces not in the file keep their default colour")
	assert.Len(t, scheme, types.NumFaces)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 4)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, render.DefaultLayout(), cfg.Layout())
	assert.False(t, cfg.StrictDepth)
	assert.Equal(t, filepath.Join(Dir(), "renders.db"), cfg.GetDBPath())

	scheme, err := cfg.ColorScheme()
	require.NoError(t, err)
	assert.Nil(t, scheme)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err, "an explicit path must exist")

	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvPath, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "cubie_size: 7\n")
	t.Setenv(EnvPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Layout().CubieSize)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "cubie_size: [",
		"negative size":  "cubie_size: -1",
		"negative gap":   "gap: -3",
		"negative limit": "max_scramble_length: -10",
		"bad face":       "colors:\n  X: red\n",
		"bad color":      "colors:\n  R: purple\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, content))
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	def := Default()
	require.NoError(t, def.Save(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, def, cfg)

	scheme, err := cfg.ColorScheme()
	require.NoError(t, err)
	assert.Equal(t, types.DefaultColorScheme(), scheme)
}
