// Package config loads ecvis settings from a YAML or JSON file and ECVIS_*
// environment variables. Every setting has a default, so running without a
// file reproduces the walkthrough values.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/mahdiidarabi/ecvis/pkg/ecvis"
)

// EnvPrefix is prepended to environment overrides, e.g. ECVIS_CURVE_P.
const EnvPrefix = "ECVIS"

// Config represents the application configuration
type Config struct {
	// Preset, when set, replaces Curve with a named preset
	Preset string `mapstructure:"preset"`

	Curve CurveConfig `mapstructure:"curve"`

	// ValidateCurve rejects singular curves
	ValidateCurve bool `mapstructure:"validate"`

	Sample  ecvis.SampleConfig `mapstructure:"sample"`
	Segment SegmentConfig      `mapstructure:"segment"`
	Signer  SignerConfig       `mapstructure:"signer"`

	// Workers for parallel enumeration and key search (0 = auto-detect)
	Workers int `mapstructure:"workers"`

	Log LogConfig `mapstructure:"log"`
}

// CurveConfig holds y² = x³ + ax + b over Z_p.
type CurveConfig struct {
	A int64 `mapstructure:"a"`
	B int64 `mapstructure:"b"`
	P int64 `mapstructure:"p"`
}

// SegmentConfig mirrors ecvis.SegmentConfig.
type SegmentConfig struct {
	Scale     float64 `mapstructure:"scale"`
	Threshold float64 `mapstructure:"threshold"`
}

// SignerConfig holds the toy signer inputs.
type SignerConfig struct {
	GX int64 `mapstructure:"gx"`
	GY int64 `mapstructure:"gy"`
	D  int64 `mapstructure:"d"`
	Z  int64 `mapstructure:"z"`
	K  int64 `mapstructure:"k"`
	N  int64 `mapstructure:"n"`
}

// LogConfig selects logger level and encoder.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	sign := ecvis.DefaultSignParams()
	sample := ecvis.DefaultSampleConfig()
	segment := ecvis.DefaultSegmentConfig()

	v.SetDefault("preset", "")
	v.SetDefault("curve.a", ecvis.ExampleParams.A)
	v.SetDefault("curve.b", ecvis.ExampleParams.B)
	v.SetDefault("curve.p", ecvis.ExampleModulus)
	v.SetDefault("validate", false)
	v.SetDefault("sample.x_min", sample.XMin)
	v.SetDefault("sample.x_max", sample.XMax)
	v.SetDefault("sample.step", sample.Step)
	v.SetDefault("segment.scale", segment.Scale)
	v.SetDefault("segment.threshold", segment.Threshold)
	v.SetDefault("signer.gx", sign.G.X())
	v.SetDefault("signer.gy", sign.G.Y())
	v.SetDefault("signer.d", sign.D)
	v.SetDefault("signer.z", sign.Z)
	v.SetDefault("signer.k", sign.K)
	v.SetDefault("signer.n", sign.N)
	v.SetDefault("workers", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(err) // defaults are constant
	}
	return cfg
}

// Load reads the configuration file at path (YAML, JSON or TOML by
// extension). An empty path loads defaults and environment overrides only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "error reading config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "error decoding config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks ranges that the engine would otherwise reject later with a
// less specific message.
func (c *Config) Validate() error {
	if c.Preset != "" {
		if _, err := ecvis.LookupPreset(c.Preset); err != nil {
			return errors.WithMessage(err, "invalid preset")
		}
	}
	if c.Curve.P < 2 || c.Curve.P > ecvis.MaxModulus {
		return errors.Errorf("curve.p must be in [2, %d], got %d", ecvis.MaxModulus, c.Curve.P)
	}
	if c.Signer.N < 2 || c.Signer.N > ecvis.MaxModulus {
		return errors.Errorf("signer.n must be in [2, %d], got %d", ecvis.MaxModulus, c.Signer.N)
	}
	if c.Sample.Step <= 0 {
		return errors.Errorf("sample.step must be positive, got %v", c.Sample.Step)
	}
	if c.Sample.XMin > c.Sample.XMax {
		return errors.Errorf("sample.x_min %v exceeds sample.x_max %v", c.Sample.XMin, c.Sample.XMax)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// CurveParams resolves the preset, if any, and returns the coefficients and modulus.
func (c *Config) CurveParams() (ecvis.CurveParams, int64) {
	if c.Preset != "" {
		if p, err := ecvis.LookupPreset(c.Preset); err == nil {
			return p.Params, p.P
		}
	}
	return ecvis.CurveParams{A: c.Curve.A, B: c.Curve.B}, c.Curve.P
}

// CurveOptions returns the construction options implied by the config.
func (c *Config) CurveOptions() []ecvis.CurveOption {
	if c.ValidateCurve {
		return []ecvis.CurveOption{ecvis.WithDiscriminantCheck()}
	}
	return nil
}

// SignParams returns the toy signer inputs.
func (c *Config) SignParams() ecvis.SignParams {
	return ecvis.SignParams{
		G: ecvis.NewPoint(c.Signer.GX, c.Signer.GY),
		D: c.Signer.D,
		Z: c.Signer.Z,
		K: c.Signer.K,
		N: c.Signer.N,
	}
}

// SegmentConfig returns the polyline settings.
func (c *Config) SegmentConfig() ecvis.SegmentConfig {
	return ecvis.SegmentConfig{Scale: c.Segment.Scale, Threshold: c.Segment.Threshold}
}
