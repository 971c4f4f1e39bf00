package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hardcore/inversion"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[inversion]
seed = 42
policy = "swap"

[output]
json = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Inversion.Seed)
	assert.Equal(t, "swap", cfg.Inversion.Policy)
	assert.True(t, cfg.Output.JSON)
	assert.Equal(t, inversion.DefaultTolerance, cfg.Inversion.Tolerance)
	assert.Equal(t, inversion.DefaultMaxSteps, cfg.Inversion.MaxSteps)
	assert.Equal(t, DefaultPrecision, cfg.Output.Precision)
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[inversion]\ntolerence = 0.1\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"policy":    "[inversion]\npolicy = \"clamp\"\n",
		"steps":     "[inversion]\nmin_steps = 9\nmax_steps = 2\n",
		"precision": "[output]\nprecision = 40\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Default()
	want.Inversion.Seed = 7
	want.Inversion.Policy = "reject"
	want.Output.Precision = 5

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInversion_Options(t *testing.T) {
	c := Default().Inversion
	o, err := c.Options()
	require.NoError(t, err)
	assert.Nil(t, o.Rand, "seed 0 keeps the process-wide source")
	assert.Equal(t, inversion.SampleBetween, o.Inconsistent)

	c.Seed = 5
	c.Policy = "swap"
	c.Strict = true
	o, err = c.Options()
	require.NoError(t, err)
	require.NotNil(t, o.Rand)
	assert.Equal(t, inversion.NewRand(5).Float64(), o.Rand.Float64())
	assert.Equal(t, inversion.SwapBounds, o.Inconsistent)
	assert.True(t, o.Strict)
}
