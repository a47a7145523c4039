// File: i18n.go
// Title: Core Internationalization Implementation
// Description: Implements the i18n Manager that loads translation catalogs
//              from TOML and YAML files, matches requested locales against the
//              available ones and looks up translated strings by dotted key.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-07-26 v0.1.1: Fixed template cache collision issue in pluralization
// - 2026-10-16 v0.2.0: Catalogs from fs.FS with embedded defaults, locale
//                       matching via golang.org/x/text/language

package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/zeitwerk/foundation/core/error"
)

//go:embed locales
var builtin embed.FS

// Format represents the language file format
type Format int

const (
	// FormatAuto detects the format from the file extension (default)
	FormatAuto Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Options defines configuration options for the i18n manager
type Options struct {
	DefaultLocale string // Default locale (e.g., "en")
	FS            fs.FS  // File system holding the catalogs, nil for the built-in ones
	LocalesDir    string // Directory inside FS (default: "locales")
	Format        Format // File format (default: auto-detect)
}

// Manager holds the translation catalogs of an application. It is read-only
// after New and safe for concurrent use.
type Manager struct {
	defaultLocale language.Tag
	locales       []language.Tag // default first
	matcher       language.Matcher
	translations  map[language.Tag]map[string]string
}

var (
	defaultManager *Manager
	defaultOnce    sync.Once
)

// Default returns the manager over the built-in catalogs with English as
// default locale
func Default() *Manager {
	defaultOnce.Do(func() {
		m, err := New(Options{DefaultLocale: "en"})
		if err != nil {
			panic(fmt.Sprintf("i18n: built-in catalogs: %v", err))
		}
		defaultManager = m
	})
	return defaultManager
}

// New creates a new i18n manager with the specified options
func New(options Options) (*Manager, error) {
	if strings.TrimSpace(options.DefaultLocale) == "" {
		return nil, mdwerror.New("default locale cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("i18n.New")
	}
	defaultTag, err := language.Parse(options.DefaultLocale)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid default locale").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("i18n.New").
			WithDetail("locale", options.DefaultLocale)
	}

	fsys := options.FS
	if fsys == nil {
		fsys = builtin
	}
	dir := options.LocalesDir
	if dir == "" {
		dir = "locales"
	}

	m := &Manager{
		defaultLocale: defaultTag,
		translations:  make(map[language.Tag]map[string]string),
	}
	if err := m.loadAllLocales(fsys, dir, options.Format); err != nil {
		return nil, mdwerror.Wrap(err, "failed to load locales").
			WithOperation("i18n.New").
			WithDetail("directory", dir)
	}
	if _, ok := m.translations[defaultTag]; !ok {
		return nil, mdwerror.Newf("no catalog for default locale %s", defaultTag).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.New").
			WithDetail("locale", defaultTag.String())
	}

	m.locales = append(m.locales, defaultTag)
	for tag := range m.translations {
		if tag != defaultTag {
			m.locales = append(m.locales, tag)
		}
	}
	sort.Slice(m.locales[1:], func(i, j int) bool {
		return m.locales[1+i].String() < m.locales[1+j].String()
	})
	m.matcher = language.NewMatcher(m.locales)
	return m, nil
}

func (m *Manager) loadAllLocales(fsys fs.FS, dir string, format Format) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return mdwerror.Wrap(err, "locales directory not readable").WithCode(mdwerror.CodeNotFound)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		fileFormat := formatOf(e.Name(), format)
		if fileFormat == FormatAuto {
			continue
		}
		if err := m.loadLocale(fsys, path.Join(dir, e.Name()), fileFormat); err != nil {
			return err
		}
	}
	return nil
}

func formatOf(name string, format Format) Format {
	switch ext := strings.ToLower(path.Ext(name)); {
	case ext == ".toml" && format != FormatYAML:
		return FormatTOML
	case (ext == ".yaml" || ext == ".yml") && format != FormatTOML:
		return FormatYAML
	default:
		return FormatAuto
	}
}

func (m *Manager) loadLocale(fsys fs.FS, file string, format Format) error {
	tag, err := ParseLocaleFromFilename(file)
	if err != nil {
		return err
	}

	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return mdwerror.Wrap(err, "failed to read language file").
			WithCode(mdwerror.CodeConfigError).
			WithDetail("file", file)
	}

	var raw map[string]interface{}
	if format == FormatYAML {
		err = yaml.Unmarshal(data, &raw)
	} else {
		err = toml.Unmarshal(data, &raw)
	}
	if err != nil {
		return mdwerror.Wrap(err, "failed to parse language file").
			WithCode(mdwerror.CodeConfigError).
			WithDetail("file", file).
			WithDetail("format", format.String())
	}

	flat := m.translations[tag]
	if flat == nil {
		flat = make(map[string]string)
		m.translations[tag] = flat
	}
	flatten("", raw, flat)
	return nil
}

// flatten turns nested tables into dotted keys
func flatten(prefix string, data map[string]interface{}, out map[string]string) {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := v.(type) {
		case map[string]interface{}:
			flatten(key, v, out)
		case string:
			out[key] = v
		default:
			out[key] = fmt.Sprint(v)
		}
	}
}

// Match returns the available locale that serves tag best, the default
// locale if none does
func (m *Manager) Match(tag language.Tag) language.Tag {
	_, idx, conf := m.matcher.Match(tag)
	if conf == language.No {
		return m.defaultLocale
	}
	return m.locales[idx]
}

// T translates key for tag. Missing keys fall back to the default locale and
// then to the key itself.
func (m *Manager) T(tag language.Tag, key string) string {
	s, err := m.TryT(tag, key)
	if err != nil {
		return key
	}
	return s
}

// TryT is T with an error for keys missing from every candidate catalog
func (m *Manager) TryT(tag language.Tag, key string) (string, error) {
	matched := m.Match(tag)

	if s, ok := m.translations[matched][key]; ok {
		return s, nil
	}
	if s, ok := m.translations[m.defaultLocale][key]; ok {
		return s, nil
	}
	return "", mdwerror.Newf("translation not found: %s", key).
		WithCode(mdwerror.CodeNotFound).
		WithOperation("i18n.TryT").
		WithDetail("key", key).
		WithDetail("locale", matched.String())
}

// TWithFallback translates key, returning fallbackMsg if it is missing
func (m *Manager) TWithFallback(tag language.Tag, key, fallbackMsg string) string {
	s, err := m.TryT(tag, key)
	if err != nil {
		return fallbackMsg
	}
	return s
}

// GetDefaultLocale returns the default locale
func (m *Manager) GetDefaultLocale() language.Tag {
	return m.defaultLocale
}

// GetAvailableLocales returns the loaded locales, default first
func (m *Manager) GetAvailableLocales() []language.Tag {
	return append([]language.Tag(nil), m.locales...)
}

// HasTranslation reports whether the catalog of tag itself has key
func (m *Manager) HasTranslation(tag language.Tag, key string) bool {
	_, ok := m.translations[tag][key]
	return ok
}

// GetTranslationKeys returns the sorted keys of the default catalog
func (m *Manager) GetTranslationKeys() []string {
	keys := make([]string, 0, len(m.translations[m.defaultLocale]))
	for k := range m.translations[m.defaultLocale] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
