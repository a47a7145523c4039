package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/text/language"

	mdwerror "github.com/msto63/zeitwerk/foundation/core/error"
	"github.com/msto63/zeitwerk/pkg/chrono"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"negative", "-90m", -90 * time.Minute, false},
		{"days", "2 days", 48 * time.Hour, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{90 * time.Minute}
	result, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "1h30m0s" {
		t.Errorf("MarshalText() = %v, want 1h30m0s", string(result))
	}
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}
	if cfg.Format.Layout != "iso8601" {
		t.Errorf("Format.Layout = %v, want iso8601", cfg.Format.Layout)
	}
	if cfg.Locale() != language.English {
		t.Errorf("Locale() = %v, want en", cfg.Locale())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty", cfg.Path)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.toml")
	if err == nil {
		t.Fatal("Load() expected error for non-existent file")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
		t.Errorf("Load() code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeConfigError)
	}
}

const tomlConfig = `
[general]
log_level = "debug"
log_format = "json"

[clock]
zone = "+05:30"
fixed_instant = "2016-03-12T12:00:00Z"
skew = "1 hour"

[format]
layout = "business"
locale = "de-DE"

[zones]
minute_precision = true

[zones.aliases]
HQ = "Europe/Berlin"
`

const yamlConfig = `
general:
  log_level: debug
  log_format: json
clock:
  zone: "+05:30"
  fixed_instant: "2016-03-12T12:00:00Z"
  skew: 1 hour
format:
  layout: business
  locale: de-DE
zones:
  minute_precision: true
  aliases:
    HQ: Europe/Berlin
`

func TestLoad_ValidConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "zeitwerk.toml", tomlConfig},
		{"yaml", "zeitwerk.yaml", yamlConfig},
		{"yml", "zeitwerk.yml", yamlConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if cfg.Path != path {
				t.Errorf("Path = %q, want %q", cfg.Path, path)
			}
			if cfg.General.LogLevel != "debug" || cfg.General.LogFormat != "json" {
				t.Errorf("General = %+v", cfg.General)
			}
			if cfg.Clock.Skew.Duration != time.Hour {
				t.Errorf("Clock.Skew = %v, want 1h", cfg.Clock.Skew.Duration)
			}
			if cfg.Format.Layout != "business" {
				t.Errorf("Format.Layout = %v, want business", cfg.Format.Layout)
			}
			if got := cfg.Locale(); got != language.MustParse("de-DE") {
				t.Errorf("Locale() = %v, want de-DE", got)
			}
			if !cfg.Zones.MinutePrecision || cfg.Zones.Aliases["HQ"] != "Europe/Berlin" {
				t.Errorf("Zones = %+v", cfg.Zones)
			}
		})
	}
}

func TestConfig_Clock(t *testing.T) {
	cfg, err := Load(writeFile(t, "zeitwerk.toml", tomlConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	clock, err := cfg.Clock()
	if err != nil {
		t.Fatalf("Clock() error = %v", err)
	}

	// 12:00Z pinned, skewed by an hour, read at +05:30
	if got := chrono.Now(clock).String(); got != "2016-03-12T18:30:00+05:30" {
		t.Errorf("Now() = %q", got)
	}
}

func TestConfig_ZoneDatabase(t *testing.T) {
	cfg := Default()
	if _, ok := cfg.ZoneDatabase().(chrono.PlatformZones); !ok {
		t.Errorf("ZoneDatabase() = %T, want PlatformZones", cfg.ZoneDatabase())
	}

	cfg.Zones.MinutePrecision = true
	cfg.Zones.Aliases = map[string]string{"HQ": "Asia/Tokyo"}

	z, err := cfg.ParseZone("+01:00:30")
	if err != nil {
		t.Fatalf("ParseZone() error = %v", err)
	}
	if z.Fudge() != 30 {
		t.Errorf("Fudge() = %d, want 30", z.Fudge())
	}

	z, err = cfg.ParseZone("HQ")
	if err != nil {
		t.Fatalf("ParseZone(HQ) error = %v", err)
	}
	if z.Identifier() != "Asia/Tokyo" {
		t.Errorf("ParseZone(HQ) = %v, want Asia/Tokyo", z)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    mdwerror.Code
		key     string
	}{
		{"bad toml", "c.toml", "[general\n", mdwerror.CodeConfigError, ""},
		{"bad yaml", "c.yaml", "general: [", mdwerror.CodeConfigError, ""},
		{"unknown toml key", "c.toml", "[general]\ncolour = true\n", mdwerror.CodeInvalidConfig, ""},
		{"unknown yaml key", "c.yaml", "general:\n  colour: true\n", mdwerror.CodeConfigError, ""},
		{"unsupported extension", "c.json", "{}", mdwerror.CodeConfigError, ""},
		{"log level", "c.toml", "[general]\nlog_level = \"loud\"\n", mdwerror.CodeInvalidConfig, "general.log_level"},
		{"log format", "c.toml", "[general]\nlog_format = \"xml\"\n", mdwerror.CodeInvalidConfig, "general.log_format"},
		{"zone", "c.toml", "[clock]\nzone = \"+25:00\"\n", mdwerror.CodeInvalidConfig, "clock.zone"},
		{"fixed instant", "c.toml", "[clock]\nfixed_instant = \"yesterday\"\n", mdwerror.CodeInvalidConfig, "clock.fixed_instant"},
		{"locale", "c.yaml", "format:\n  locale: \"not a locale\"\n", mdwerror.CodeInvalidConfig, "format.locale"},
		{"alias", "c.toml", "[zones.aliases]\nXX = \"Mars/Olympus\"\n", mdwerror.CodeInvalidConfig, "zones.aliases.XX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if got := mdwerror.GetCode(err); got != tt.code {
				t.Errorf("Load() code = %v, want %v (%v)", got, tt.code, err)
			}
			if tt.key == "" {
				return
			}
			var e *mdwerror.Error
			e, _ = err.(*mdwerror.Error)
			if e == nil {
				t.Fatalf("Load() error type = %T", err)
			}
			if key, _ := e.Detail("key"); key != tt.key {
				t.Errorf("detail key = %v, want %v", key, tt.key)
			}
			if e.Severity() != mdwerror.SeverityHigh {
				t.Errorf("Severity() = %v, want high", e.Severity())
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "custom.yaml", "clock:\n  zone: Z\n")
	t.Setenv(EnvVar, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Path != path || cfg.Clock.Zone != "Z" {
		t.Errorf("LoadFromEnv() = %+v", cfg)
	}

	t.Setenv(EnvVar, filepath.Join(t.TempDir(), "missing.toml"))
	if _, err := LoadFromEnv(); err == nil {
		t.Error("LoadFromEnv() expected error for a missing explicit file")
	}
}

func TestLoadFromEnv_Default(t *testing.T) {
	t.Setenv(EnvVar, "")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want defaults", cfg.Path)
	}
}
