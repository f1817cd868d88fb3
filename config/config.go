// Package config loads the front-end settings from a TOML file.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/merkle-ledger/ledger"
)

// Config holds the settings read from the TOML file.
type Config struct {
	// Validation is "cached" or "recompute", see ledger.ValidationMode.
	Validation string `toml:"validation"`
	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// AmountPrecision is the number of decimals shown in tables.
	AmountPrecision int `toml:"amount_precision"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Validation:      ledger.CachedRoot.String(),
		LogLevel:        "info",
		AmountPrecision: 2,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Unknown keys are rejected so typos do not silently fall back.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects unknown mode or level names and out-of-range precision.
func (c Config) Validate() error {
	if _, err := ledger.ParseValidationMode(c.Validation); err != nil {
		return err
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.AmountPrecision < 0 || c.AmountPrecision > 12 {
		return fmt.Errorf("amount_precision %d out of range [0, 12]", c.AmountPrecision)
	}
	return nil
}

// ValidationMode returns the parsed mode. Call Validate first.
func (c Config) ValidationMode() ledger.ValidationMode {
	mode, _ := ledger.ParseValidationMode(c.Validation)
	return mode
}

// Level returns the pterm level for the configured name. Call Validate
// first.
func (c Config) Level() pterm.LogLevel {
	level, _ := parseLevel(c.LogLevel)
	return level
}

// LedgerOptions translates the config into ledger options.
func (c Config) LedgerOptions() []ledger.Option {
	return []ledger.Option{
		ledger.WithValidationMode(c.ValidationMode()),
	}
}

func parseLevel(s string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "", "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	}
	return pterm.LogLevelInfo, fmt.Errorf("unknown log level %q", s)
}
