// ============================================================================
// zeitwerk - Civil Calendar and Zone Offset Engine
// ============================================================================
//
// Package:     config
// Description: TOML and YAML configuration for the zeitwerk command line
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/zeitwerk/foundation/core/error"
	mdwlog "github.com/msto63/zeitwerk/foundation/core/log"
	"github.com/msto63/zeitwerk/foundation/utils/timex"
	"github.com/msto63/zeitwerk/pkg/chrono"
)

// EnvVar names the environment variable holding the config file path
const EnvVar = "ZEITWERK_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Clock   ClockConfig   `toml:"clock" yaml:"clock"`
	Format  FormatConfig  `toml:"format" yaml:"format"`
	Zones   ZonesConfig   `toml:"zones" yaml:"zones"`

	// Path is the file the configuration was read from, empty for defaults
	Path string `toml:"-" yaml:"-"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ClockConfig selects where "now" comes from
type ClockConfig struct {
	// Zone is the default zone; empty means the system's local zone
	Zone string `toml:"zone" yaml:"zone"`

	// FixedInstant pins the clock to an RFC 3339 instant
	FixedInstant string `toml:"fixed_instant" yaml:"fixed_instant"`

	// Skew shifts the clock, e.g. "-90m" or "2 days"
	Skew Duration `toml:"skew" yaml:"skew"`
}

// FormatConfig holds output settings
type FormatConfig struct {
	Layout string `toml:"layout" yaml:"layout"`
	Locale string `toml:"locale" yaml:"locale"`
}

// ZonesConfig holds zone database settings
type ZonesConfig struct {
	// MinutePrecision builds fixed zones with whole minutes only
	MinutePrecision bool `toml:"minute_precision" yaml:"minute_precision"`

	// Aliases maps abbreviations to IANA names and wins over the built-in table
	Aliases map[string]string `toml:"aliases" yaml:"aliases"`
}

// Duration wraps time.Duration for TOML and YAML parsing. Besides Go syntax
// it accepts the forms of timex.ParseDuration.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = timex.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "config file not readable").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, &cfg)
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	default:
		err = mdwerror.Newf("unsupported config format %q", ext).WithCode(mdwerror.CodeConfigError)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.Path = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return mdwerror.Wrap(err, "invalid TOML").WithCode(mdwerror.CodeConfigError)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return mdwerror.Newf("unknown keys: %s", strings.Join(keys, ", ")).
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("keys", keys)
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return mdwerror.Wrap(err, "invalid YAML").WithCode(mdwerror.CodeConfigError)
	}
	return nil
}

// LoadFromEnv loads the file named by ZEITWERK_CONFIG, or the first file
// found in the default locations, or returns Default if there is none
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the locations searched when ZEITWERK_CONFIG is unset
func DefaultPaths() []string {
	paths := []string{"./zeitwerk.toml", "./zeitwerk.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "zeitwerk", "config.toml"),
			filepath.Join(home, ".config", "zeitwerk", "config.yaml"),
		)
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Format.Layout == "" {
		c.Format.Layout = "iso8601"
	}
	if c.Format.Locale == "" {
		c.Format.Locale = "en"
	}
}

// Validate checks every setting that the engine would otherwise reject later
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err)
	}
	if _, err := c.Zone(); err != nil {
		return invalid("clock.zone", c.Clock.Zone, err)
	}
	if c.Clock.FixedInstant != "" {
		if _, err := time.Parse(time.RFC3339Nano, c.Clock.FixedInstant); err != nil {
			return invalid("clock.fixed_instant", c.Clock.FixedInstant, err)
		}
	}
	if _, err := language.Parse(c.Format.Locale); err != nil {
		return invalid("format.locale", c.Format.Locale, err)
	}

	db := c.ZoneDatabase()
	abbrs := make([]string, 0, len(c.Zones.Aliases))
	for abbr := range c.Zones.Aliases {
		abbrs = append(abbrs, abbr)
	}
	sort.Strings(abbrs)
	for _, abbr := range abbrs {
		if _, err := db.Named(c.Zones.Aliases[abbr]); err != nil {
			return invalid("zones.aliases."+abbr, c.Zones.Aliases[abbr], err)
		}
	}
	return nil
}

func invalid(key, value string, cause error) error {
	return mdwerror.Wrap(cause, "invalid setting "+key).
		WithCode(mdwerror.CodeInvalidConfig).
		WithSeverity(mdwerror.SeverityHigh).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}

// ZoneDatabase builds the zone database selected by the zones section
func (c *Config) ZoneDatabase() chrono.ZoneDatabase {
	base := chrono.PlatformZones{Aliases: c.Zones.Aliases}
	if c.Zones.MinutePrecision {
		return chrono.MinuteZones{Base: base}
	}
	return base
}

// ParseZone parses a zone identifier with the configured database
func (c *Config) ParseZone(id string) (chrono.ZoneOffset, error) {
	return chrono.ParseZoneWith(c.ZoneDatabase(), id)
}

// Zone returns the configured default zone, the local zone if none is set
func (c *Config) Zone() (chrono.ZoneOffset, error) {
	if c.Clock.Zone == "" {
		return chrono.ZoneOfLocation(time.Local), nil
	}
	return c.ParseZone(c.Clock.Zone)
}

// Clock builds the clock described by the clock section
func (c *Config) Clock() (chrono.Clock, error) {
	zone, err := c.Zone()
	if err != nil {
		return nil, err
	}

	var base chrono.Clock = chrono.SystemClock{}
	if c.Clock.FixedInstant != "" {
		t, err := time.Parse(time.RFC3339Nano, c.Clock.FixedInstant)
		if err != nil {
			return nil, invalid("clock.fixed_instant", c.Clock.FixedInstant, err)
		}
		base = chrono.NewFixedClock(chrono.InstantOf(t), zone)
	}

	clock := chrono.ClockIn(base, zone)
	if c.Clock.Skew.Duration != 0 {
		clock = chrono.OffsetClock{Base: clock, Skew: chrono.DurationOf(c.Clock.Skew.Duration)}
	}
	return clock, nil
}

// Locale returns the configured locale, English if it does not parse
func (c *Config) Locale() language.Tag {
	tag, err := language.Parse(c.Format.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
