// File: catalog.go
// Title: Message Catalog Implementation
// Description: Loads message catalogs from TOML and YAML files in an fs.FS
//              and renders messages with text/template interpolation and
//              fallback to the default locale.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-11
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-08-11 v0.2.0: fs.FS based loading with embedded defaults, dropped
//                      file watching and the mutable current locale

package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	coreerror "github.com/msto63/textkit/core/error"
	"github.com/msto63/textkit/core/log"
)

//go:embed locales/*
var embeddedLocales embed.FS

// DefaultLocale is the locale of the embedded fallback catalog
const DefaultLocale = "en"

// Format represents the catalog file format
type Format int

const (
	// FormatTOML represents TOML format
	FormatTOML Format = iota

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
	default:
		return "unknown"
	}
}

// formatFor maps a file extension to a catalog format
func formatFor(ext string) (Format, bool) {
	switch strings.ToLower(ext) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return 0, false
	}
}

// Options configures a Catalog
type Options struct {
	FS            fs.FS       // Source of catalog files
	Dir           string      // Directory inside FS holding the files
	DefaultLocale string      // Locale used when a key is missing elsewhere
	Logger        *log.Logger // Receives warnings for skipped files; nil discards
}

// Catalog holds the messages of every loaded locale. It is safe for
// concurrent use.
type Catalog struct {
	defaultLocale string
	messages      map[string]map[string]interface{} // locale -> nested messages
	logger        *log.Logger

	mu        sync.Mutex
	templates map[string]*template.Template // locale + key -> compiled template
}

// New loads every catalog file found in options.Dir
func New(options Options) (*Catalog, error) {
	if strings.TrimSpace(options.DefaultLocale) == "" {
		return nil, coreerror.New("default locale cannot be empty").
			WithCode(coreerror.CodeInvalidArgument).
			WithOperation("i18n.New")
	}
	if options.FS == nil {
		return nil, coreerror.New("catalog filesystem is required").
			WithCode(coreerror.CodeInvalidArgument).
			WithOperation("i18n.New")
	}
	if options.Dir == "" {
		options.Dir = "."
	}
	logger := options.Logger
	if logger == nil {
		logger = log.Discard()
	}

	c := &Catalog{
		defaultLocale: options.DefaultLocale,
		messages:      make(map[string]map[string]interface{}),
		logger:        logger.WithName("i18n"),
		templates:     make(map[string]*template.Template),
	}

	if err := c.loadAll(options.FS, options.Dir); err != nil {
		return nil, coreerror.Wrap(err, "failed to load catalogs").
			WithCode(coreerror.CodeOperationFailed).
			WithOperation("i18n.New")
	}

	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog built from the embedded locale files
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = New(Options{
			FS:            embeddedLocales,
			Dir:           "locales",
			DefaultLocale: DefaultLocale,
		})
	})
	return defaultCatalog, defaultErr
}

func (c *Catalog) loadAll(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to read catalog directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := path.Ext(name)
		format, ok := formatFor(ext)
		if !ok {
			continue
		}

		locale := strings.TrimSuffix(name, ext)
		if strings.TrimSpace(locale) == "" {
			continue
		}

		data, err := loadFile(fsys, path.Join(dir, name), format)
		if err != nil {
			c.logger.WarnWithErr("skipping catalog file", err, log.String("file", name))
			continue
		}

		if existing, ok := c.messages[locale]; ok {
			mergeInto(existing, data)
		} else {
			c.messages[locale] = data
		}
	}

	if _, exists := c.messages[c.defaultLocale]; !exists {
		return fmt.Errorf("default locale '%s' not found", c.defaultLocale)
	}

	return nil
}

func loadFile(fsys fs.FS, name string, format Format) (map[string]interface{}, error) {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", name, err)
	}

	data := make(map[string]interface{})
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("failed to parse TOML file %s: %w", name, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("failed to parse YAML file %s: %w", name, err)
		}
	}
	return data, nil
}

// mergeInto copies src into dst, descending into nested tables
func mergeInto(dst, src map[string]interface{}) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]interface{})
		dstMap, dstIsMap := dst[k].(map[string]interface{})
		if srcIsMap && dstIsMap {
			mergeInto(dstMap, srcMap)
			continue
		}
		dst[k] = v
	}
}

// T translates key, returning "[key]" when the key is unknown
func (c *Catalog) T(locale, key string, data map[string]interface{}) string {
	msg, err := c.TryT(locale, key, data)
	if err != nil {
		return fmt.Sprintf("[%s]", key)
	}
	return msg
}

// TryT translates key in locale, falling back to the default locale
func (c *Catalog) TryT(locale, key string, data map[string]interface{}) (string, error) {
	resolved, raw := c.lookup(locale, key)
	if raw == "" {
		return "", coreerror.New("translation not found").
			WithCode(coreerror.CodeNotFound).
			WithOperation("i18n.TryT").
			WithDetail("key", key).
			WithDetail("locale", locale)
	}

	if data == nil {
		return raw, nil
	}

	tmpl, err := c.template(resolved, key, raw)
	if err != nil {
		return raw, coreerror.Wrap(err, "template compilation failed").
			WithCode(coreerror.CodeInvalidFormat).
			WithOperation("i18n.TryT")
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return raw, coreerror.Wrap(err, "template rendering failed").
			WithCode(coreerror.CodeOperationFailed).
			WithOperation("i18n.TryT")
	}
	return out.String(), nil
}

// lookup returns the locale the message was found in and its raw text
func (c *Catalog) lookup(locale, key string) (string, string) {
	if messages, ok := c.messages[locale]; ok {
		if value := nestedValue(messages, key); value != "" {
			return locale, value
		}
	}
	if locale != c.defaultLocale {
		if value := nestedValue(c.messages[c.defaultLocale], key); value != "" {
			return c.defaultLocale, value
		}
	}
	return "", ""
}

func (c *Catalog) template(locale, key, raw string) (*template.Template, error) {
	cacheKey := locale + "\x00" + key

	c.mu.Lock()
	defer c.mu.Unlock()

	if tmpl, ok := c.templates[cacheKey]; ok {
		return tmpl, nil
	}
	tmpl, err := template.New(key).Option("missingkey=zero").Parse(raw)
	if err != nil {
		return nil, err
	}
	c.templates[cacheKey] = tmpl
	return tmpl, nil
}

// nestedValue resolves a dotted key such as "errors.out_of_range"
func nestedValue(data map[string]interface{}, key string) string {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		value, ok := current[k]
		if !ok {
			return ""
		}
		if i == len(keys)-1 {
			switch v := value.(type) {
			case string:
				return v
			case map[string]interface{}:
				return ""
			default:
				return fmt.Sprintf("%v", v)
			}
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return ""
		}
		current = next
	}

	return ""
}

// DefaultLocaleName returns the fallback locale
func (c *Catalog) DefaultLocaleName() string {
	return c.defaultLocale
}

// HasLocale checks if a locale is loaded
func (c *Catalog) HasLocale(locale string) bool {
	_, ok := c.messages[locale]
	return ok
}

// Locales returns the loaded locales in sorted order
func (c *Catalog) Locales() []string {
	locales := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Keys returns every message key of a locale in sorted order
func (c *Catalog) Keys(locale string) []string {
	messages, ok := c.messages[locale]
	if !ok {
		return nil
	}
	keys := collectKeys(messages, "")
	sort.Strings(keys)
	return keys
}

func collectKeys(data map[string]interface{}, prefix string) []string {
	var keys []string
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			keys = append(keys, collectKeys(nested, fullKey)...)
			continue
		}
		keys = append(keys, fullKey)
	}
	return keys
}
