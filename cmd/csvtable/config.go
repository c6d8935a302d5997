package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config holds the settings that can come from the config file or from flags.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Output    string `yaml:"output"`
	Snapshot  string `yaml:"snapshot"`
}

// DefaultConfig returns the settings used when neither file nor flags set a value.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "logfmt",
		Output:    "table",
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(fs afero.Fs, path string) (Config, error) {
	cfg := DefaultConfig()

	buf, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, errors.Wrap(err, "error opening config file")
	}

	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Wrapf(err, "error reading config file %s", path)
	}
	return cfg, nil
}

// Merge overrides c with every non-empty field of o.
func (c *Config) Merge(o Config) {
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		c.LogFormat = o.LogFormat
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.Snapshot != "" {
		c.Snapshot = o.Snapshot
	}
}

// Validate rejects unknown enum values.
func (c Config) Validate() error {
	if _, err := levelOption(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "logfmt", "json":
	default:
		return fmt.Errorf("invalid log format %q (must be logfmt or json)", c.LogFormat)
	}
	switch c.Output {
	case "table", "csv", "json":
	default:
		return fmt.Errorf("invalid output %q (must be table, csv or json)", c.Output)
	}
	return nil
}

func levelOption(name string) (level.Option, error) {
	switch name {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("invalid log level %q (must be debug, info, warn or error)", name)
	}
}

// newLogger builds the leveled logger described by cfg, writing to w.
func newLogger(w io.Writer, cfg Config) (log.Logger, error) {
	allow, err := levelOption(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var logger log.Logger
	if cfg.LogFormat == "json" {
		logger = log.NewJSONLogger(log.NewSyncWriter(w))
	} else {
		logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
	}
	logger = level.NewFilter(logger, allow)
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller), nil
}
