// Package catalog loads message catalogs from YAML or TOML files.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"itemservice/internal/config"
	"itemservice/internal/platform/logger"
	"itemservice/internal/platform/validation"
)

//go:embed messages.yaml
var defaultMessages []byte

var ErrUnsupportedFormat = errors.New("unsupported catalog format")

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the decoder from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Default returns the embedded catalog.
func Default() (validation.MapCatalog, error) {
	messages, err := Parse(defaultMessages, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return messages, nil
}

func LoadFile(path string) (validation.MapCatalog, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	messages, err := Parse(content, format)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return messages, nil
}

// Parse decodes content into a flat catalog. Nested tables are joined with
// dots, so `range: {item: {price: ...}}` yields the key range.item.price.
func Parse(content []byte, format Format) (validation.MapCatalog, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	messages := make(validation.MapCatalog, len(data))
	if err := flatten("", data, messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func flatten(prefix string, data map[string]interface{}, into validation.MapCatalog) error {
	for key, value := range data {
		if prefix != "" {
			key = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			into[key] = v
		case map[string]interface{}:
			if err := flatten(key, v, into); err != nil {
				return err
			}
		default:
			return fmt.Errorf("catalog key %s: expected a string, got %T", key, value)
		}
	}
	return nil
}

// New returns the embedded catalog merged with the file at cfg.CatalogPath.
// Entries from the file win.
func New(cfg *config.ValidationConfig, log logger.Logger) (validation.MapCatalog, error) {
	messages, err := Default()
	if err != nil {
		return nil, err
	}

	if cfg.CatalogPath == "" {
		log.Info("Using embedded message catalog", logger.Int("entries", messages.Len()))
		return messages, nil
	}

	overrides, err := LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	merged := messages.Merge(overrides)
	log.Info("Loaded message catalog",
		logger.String("path", cfg.CatalogPath),
		logger.Int("overrides", overrides.Len()),
		logger.Int("entries", merged.Len()),
	)
	return merged, nil
}

// Keys lists the catalog keys in sorted order.
func Keys(messages validation.MapCatalog) []string {
	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
