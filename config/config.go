// Package config loads the processing options of an interferogram network
// run from YAML.
//
// Reference-pixel keys are optional in the file and may legitimately be
// zero, so they are held as pointers: a nil field is a missing key. Whether
// a missing key is an error depends on the operation, which reports it with
// Missing. Ambient fields (workers, cache size, log level) are checked by
// Validate.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Option keys as they appear in configuration files.
const (
	KeyRefX        = "refx"
	KeyRefY        = "refy"
	KeyRefNX       = "refnx"
	KeyRefNY       = "refny"
	KeyRefChipSize = "ref_chip_size"
	KeyRefMinFrac  = "ref_min_frac"
)

var (
	// ErrMissingKey indicates a required option absent from the configuration.
	ErrMissingKey = errors.New("config: configuration error")

	// ErrInvalid indicates an ambient option outside its allowed values.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Missing reports that key is required but absent.
func Missing(key string) error {
	return fmt.Errorf("missing '%s' in configuration options: %w", key, ErrMissingKey)
}

// Config is the full set of options of a run.
type Config struct {
	RefX        *int     `yaml:"refx"`
	RefY        *int     `yaml:"refy"`
	RefNX       *int     `yaml:"refnx"`
	RefNY       *int     `yaml:"refny"`
	RefChipSize *int     `yaml:"ref_chip_size"`
	RefMinFrac  *float64 `yaml:"ref_min_frac"`

	// Workers bounds parallel goroutines; 0 means runtime.GOMAXPROCS.
	Workers int `yaml:"workers" validate:"gte=0"`
	// CacheSize is the number of solved trees kept per run; 0 disables caching.
	CacheSize int `yaml:"cache_size" validate:"gte=0"`
	// LogLevel is one of debug, info, warn, error; empty means info.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// RefPixel holds the reference-pixel options. RefX and RefY default to 0
// (search); the search keys stay nil when absent.
type RefPixel struct {
	RefX     int
	RefY     int
	RefNX    *int
	RefNY    *int
	ChipSize *int
	MinFrac  *float64
}

// Int returns a pointer to v, for building options in code.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML data and validates the ambient fields.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = validator.New()

// Validate checks the ambient fields.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s=%v fails %q: %w", fe.Field(), fe.Value(), fe.Tag(), ErrInvalid)
		}

		return fmt.Errorf("%v: %w", err, ErrInvalid)
	}

	return nil
}

// RefPixel extracts the reference-pixel options.
func (c *Config) RefPixel() RefPixel {
	p := RefPixel{
		RefNX:    c.RefNX,
		RefNY:    c.RefNY,
		ChipSize: c.RefChipSize,
		MinFrac:  c.RefMinFrac,
	}
	if c.RefX != nil {
		p.RefX = *c.RefX
	}
	if c.RefY != nil {
		p.RefY = *c.RefY
	}

	return p
}

// Level maps LogLevel to a slog level.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}
