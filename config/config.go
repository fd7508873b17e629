// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphkit/layout"
	"github.com/katalvlaran/graphkit/store"
)

// ErrInvalid marks a configuration that decoded but fails Validate.
var ErrInvalid = errors.New("config: invalid")

// Layout methods.
const (
	MethodMultilevel = "multilevel"
	MethodForce      = "force"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the root of the configuration file.
type Config struct {
	Layout LayoutConfig `yaml:"layout"`
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
}

// LayoutConfig mirrors layout.Options.
type LayoutConfig struct {
	Method        string  `yaml:"method"`
	SpringLength  float64 `yaml:"spring_length"`
	Cutoff        float64 `yaml:"cutoff"`
	Tolerance     float64 `yaml:"tolerance"`
	Adaptive      bool    `yaml:"adaptive"`
	Repulsion     float64 `yaml:"repulsion"`
	MaxIterations int     `yaml:"max_iterations"`
	Dimension     int     `yaml:"dimension"`
	Seed          int64   `yaml:"seed"`
}

// StoreConfig locates the graph database.
type StoreConfig struct {
	Path    string        `yaml:"path"`
	Bucket  string        `yaml:"bucket"`
	Timeout time.Duration `yaml:"timeout"`
}

// LogConfig selects the level and output format of the command logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	o := layout.DefaultOptions()
	return Config{
		Layout: LayoutConfig{
			Method:        MethodMultilevel,
			SpringLength:  o.SpringLength,
			Tolerance:     o.Tolerance,
			Adaptive:      o.Adaptive,
			Repulsion:     o.Repulsion,
			MaxIterations: o.MaxIterations,
			Dimension:     o.Dimension,
			Seed:          1,
		},
		Store: StoreConfig{
			Path:    "graphs.db",
			Bucket:  store.DefaultBucket,
			Timeout: store.DefaultTimeout,
		},
		Log: LogConfig{
			Level:  logrus.InfoLevel.String(),
			Format: FormatText,
		},
	}
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: open %s", path)
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrap(err, path)
	}
	return cfg, nil
}

// Decode reads a YAML document over Default and validates the result. An
// empty document yields Default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "config: decode")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	l := c.Layout
	switch {
	case l.Method != MethodMultilevel && l.Method != MethodForce:
		return fmt.Errorf("%w: layout.method %q", ErrInvalid, l.Method)
	case !(l.SpringLength > 0) || math.IsInf(l.SpringLength, 1):
		return fmt.Errorf("%w: layout.spring_length %v", ErrInvalid, l.SpringLength)
	case l.Cutoff < 0 || math.IsNaN(l.Cutoff):
		return fmt.Errorf("%w: layout.cutoff %v", ErrInvalid, l.Cutoff)
	case !(l.Tolerance > 0):
		return fmt.Errorf("%w: layout.tolerance %v", ErrInvalid, l.Tolerance)
	case !(l.Repulsion > 0):
		return fmt.Errorf("%w: layout.repulsion %v", ErrInvalid, l.Repulsion)
	case l.MaxIterations <= 0:
		return fmt.Errorf("%w: layout.max_iterations %d", ErrInvalid, l.MaxIterations)
	case l.Dimension != 2 && l.Dimension != 3:
		return fmt.Errorf("%w: layout.dimension %d", ErrInvalid, l.Dimension)
	}
	if c.Store.Path == "" || c.Store.Bucket == "" {
		return fmt.Errorf("%w: store.path and store.bucket are required", ErrInvalid)
	}
	if c.Store.Timeout < 0 {
		return fmt.Errorf("%w: store.timeout %s", ErrInvalid, c.Store.Timeout)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	if c.Log.Format != FormatText && c.Log.Format != FormatJSON {
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// Options converts the layout section. Call Validate first; invalid values
// make the layout option constructors panic.
func (l LayoutConfig) Options() []layout.Option {
	opts := []layout.Option{
		layout.WithSpringLength(l.SpringLength),
		layout.WithTolerance(l.Tolerance),
		layout.WithAdaptiveCooling(l.Adaptive),
		layout.WithRepulsion(l.Repulsion),
		layout.WithMaxIterations(l.MaxIterations),
		layout.WithDimension(l.Dimension),
		layout.WithSeed(l.Seed),
	}
	if l.Cutoff > 0 {
		opts = append(opts, layout.WithCutoff(l.Cutoff))
	}
	return opts
}

// Options converts the store section; Path is passed to store.Open apart.
func (s StoreConfig) Options() []store.Option {
	return []store.Option{store.WithBucket(s.Bucket), store.WithTimeout(s.Timeout)}
}

// Apply sets the level and formatter of l.
func (c LogConfig) Apply(l *logrus.Logger) error {
	lvl, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return errors.Wrap(err, "config: log.level")
	}
	l.SetLevel(lvl)
	if c.Format == FormatJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{})
	}
	return nil
}
