// Package config loads the hardcore CLI configuration from a TOML file.
// Missing files are not an error: defaults apply and flags override both.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/hardcore/inversion"
)

// DefaultPrecision is the number of decimals printed by the CLI.
const DefaultPrecision = 3

// maxPrecision bounds the printed decimals; float64 carries ~17 digits.
const maxPrecision = 17

// ErrInvalidConfig is returned for values that parse but make no sense.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the on-disk layout.
type Config struct {
	Inversion Inversion `toml:"inversion"`
	Output    Output    `toml:"output"`
}

// Inversion mirrors inversion.Options in file form.
// Seed 0 means "unseeded": CRFmarg comes from the process-wide source.
type Inversion struct {
	Tolerance float64 `toml:"tolerance"`
	MinSteps  int     `toml:"min_steps"`
	MaxSteps  int     `toml:"max_steps"`
	Seed      int64   `toml:"seed"`
	Policy    string  `toml:"policy"`
	Strict    bool    `toml:"strict"`
}

// Output controls formatting.
type Output struct {
	JSON      bool `toml:"json"`
	Precision int  `toml:"precision"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Inversion: Inversion{
			Tolerance: inversion.DefaultTolerance,
			MinSteps:  inversion.DefaultMinSteps,
			MaxSteps:  inversion.DefaultMaxSteps,
			Policy:    inversion.SampleBetween.String(),
		},
		Output: Output{Precision: DefaultPrecision},
	}
}

// DefaultPath returns ~/.hardcore/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".hardcore", "config.toml"), nil
}

// Load reads path on top of Default. Keys absent from the file keep their
// default; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, err
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	return os.WriteFile(path, data, 0o600)
}

// Validate checks ranges that the TOML types cannot express.
func (c Config) Validate() error {
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		return fmt.Errorf("%w: output.precision=%d", ErrInvalidConfig, c.Output.Precision)
	}
	if _, err := c.Inversion.Options(); err != nil {
		return err
	}

	return nil
}

// Options converts the file section into inversion.Options.
func (c Inversion) Options() (inversion.Options, error) {
	policy, err := inversion.ParsePolicy(c.Policy)
	if err != nil {
		return inversion.Options{}, fmt.Errorf("%w: inversion.policy=%q", ErrInvalidConfig, c.Policy)
	}

	o := inversion.DefaultOptions()
	o.Tolerance = c.Tolerance
	o.MinSteps = c.MinSteps
	o.MaxSteps = c.MaxSteps
	o.Inconsistent = policy
	o.Strict = c.Strict
	if c.Seed != 0 {
		o.Rand = inversion.NewRand(c.Seed)
	}
	if c.Tolerance < 0 || c.MinSteps < 1 || c.MaxSteps < c.MinSteps {
		return o, fmt.Errorf("%w: tolerance=%g min_steps=%d max_steps=%d",
			ErrInvalidConfig, c.Tolerance, c.MinSteps, c.MaxSteps)
	}

	return o, nil
}
