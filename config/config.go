// Package config holds the settings of a simulation run.
//
// Settings are layered: Default, then an optional YAML file, then ISASIM_*
// environment variables (a .env file may provide them), then command-line
// flags.
package config

import (
	"bytes"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config describes one simulation run.
type Config struct {
	Cores    int    `yaml:"cores"`
	MemoryMB uint64 `yaml:"memory_mb"`
	Debug    bool   `yaml:"debug"`

	// MaxSteps makes every reference core exit after that many steps. Zero
	// runs until the target exits by itself.
	MaxSteps uint64 `yaml:"max_steps"`

	LogLevel string `yaml:"log_level"`

	Monitor MonitorConfig `yaml:"monitor"`
	Record  RecordConfig  `yaml:"record"`
}

// MonitorConfig controls the HTTP monitor.
type MonitorConfig struct {
	Enabled     bool `yaml:"enabled"`
	Port        int  `yaml:"port"`
	OpenBrowser bool `yaml:"open_browser"`
}

// RecordConfig controls the SQLite recorder.
type RecordConfig struct {
	Enabled bool `yaml:"enabled"`

	// Path is the database file without extension. Empty picks a fresh name.
	Path string `yaml:"path"`
}

// Default returns a single-core machine with the host's default memory size.
func Default() Config {
	return Config{
		Cores:    1,
		LogLevel: "info",
	}
}

// Load reads a YAML file on top of the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "config: read")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return c, errors.Wrapf(err, "config: parse %s", path)
	}

	return c, nil
}

// LoadDotEnv exports the variables of a .env file that are not already set.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return errors.Wrapf(godotenv.Load(path), "config: load %s", path)
}

// ApplyEnv overrides fields with the ISASIM_* environment variables that are
// set.
func (c *Config) ApplyEnv() error {
	vars := []struct {
		name  string
		apply func(string) error
	}{
		{"ISASIM_CORES", intVar(&c.Cores)},
		{"ISASIM_MEMORY_MB", uintVar(&c.MemoryMB)},
		{"ISASIM_DEBUG", boolVar(&c.Debug)},
		{"ISASIM_MAX_STEPS", uintVar(&c.MaxSteps)},
		{"ISASIM_LOG_LEVEL", stringVar(&c.LogLevel)},
		{"ISASIM_MONITOR", boolVar(&c.Monitor.Enabled)},
		{"ISASIM_MONITOR_PORT", intVar(&c.Monitor.Port)},
		{"ISASIM_MONITOR_OPEN", boolVar(&c.Monitor.OpenBrowser)},
		{"ISASIM_RECORD", boolVar(&c.Record.Enabled)},
		{"ISASIM_RECORD_PATH", stringVar(&c.Record.Path)},
	}

	for _, v := range vars {
		value, ok := os.LookupEnv(v.name)
		if !ok {
			continue
		}

		if err := v.apply(value); err != nil {
			return errors.Wrapf(err, "config: %s", v.name)
		}
	}

	return nil
}

func intVar(p *int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err == nil {
			*p = v
		}
		return err
	}
}

func uintVar(p *uint64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseUint(s, 10, 64)
		if err == nil {
			*p = v
		}
		return err
	}
}

func boolVar(p *bool) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseBool(s)
		if err == nil {
			*p = v
		}
		return err
	}
}

func stringVar(p *string) func(string) error {
	return func(s string) error {
		*p = s
		return nil
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Cores < 0 {
		return errors.Errorf("config: invalid number of cores %d", c.Cores)
	}

	if c.MemoryMB > math.MaxUint64>>20 {
		return errors.Errorf("config: memory size %d MB overflows", c.MemoryMB)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "config")
	}

	if p := c.Monitor.Port; p != 0 && (p < 1000 || p > math.MaxUint16) {
		return errors.Errorf("config: monitor port %d out of range", p)
	}

	return nil
}
