package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"gendoc/internal/domain"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configuration for the generator.
type Config struct {
	DeclarationPattern string           `yaml:"declaration_pattern"`
	OpenMarker         string           `yaml:"open_marker"`
	CloseMarker        string           `yaml:"close_marker"`
	RequireMarker      bool             `yaml:"require_marker"` // skip declarations with no fresh marker
	CreateDirs         bool             `yaml:"create_dirs"`
	Categories         []CategoryConfig `yaml:"categories"`
	Logging            LoggingConfig    `yaml:"logging"`
}

// CategoryConfig describes one annotated input and the files generated from it.
type CategoryConfig struct {
	Name        string `yaml:"name"`
	Input       string `yaml:"input"` // path or doublestar pattern
	DocOutput   string `yaml:"doc_output"`
	NamesOutput string `yaml:"names_output"`
	DefsOutput  string `yaml:"defs_output"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DeclarationPattern: `struct\s+value\s*\*(.*)\(`,
		OpenMarker:         "/***",
		CloseMarker:        "*/",
		RequireMarker:      false,
		CreateDirs:         true,
		Categories: []CategoryConfig{
			{
				Name:        "primitives",
				Input:       "src/primitives.h",
				DocOutput:   "PRIMITIVE_FUNCTIONS",
				NamesOutput: "src/gen/primitive_names.h",
				DefsOutput:  "src/gen/primitive_defs.h",
			},
			{
				Name:        "forms",
				Input:       "src/forms.h",
				DocOutput:   "FUNCTIONAL_FORMS",
				NamesOutput: "src/gen/form_names.h",
				DefsOutput:  "src/gen/form_defs.h",
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	// A file that lists categories replaces the defaults rather than
	// appending to them.
	cfg.Categories = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Categories == nil {
		cfg.Categories = DefaultConfig().Categories
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for gendoc.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".gendoc", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// FileName is the config file looked up in the root directory.
const FileName = "gendoc.yaml"

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Pattern compiles the declaration pattern.
func (c *Config) Pattern() (*regexp.Regexp, error) {
	re, err := regexp.Compile(c.DeclarationPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: declaration_pattern: %w", ErrInvalidConfig, err)
	}
	if re.NumSubexp() != 1 {
		return nil, fmt.Errorf("%w: declaration_pattern must have exactly one capture group, has %d", ErrInvalidConfig, re.NumSubexp())
	}
	return re, nil
}

// Validate checks the configuration before any file is touched.
func (c *Config) Validate() error {
	if _, err := c.Pattern(); err != nil {
		return err
	}
	if c.OpenMarker == "" {
		return fmt.Errorf("%w: open_marker is empty", ErrInvalidConfig)
	}
	if c.CloseMarker == "" {
		return fmt.Errorf("%w: close_marker is empty", ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidConfig)
	}

	names := make(map[string]bool)
	outputs := make(map[string]string)
	for i, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("%w: categories[%d]: name is empty", ErrInvalidConfig, i)
		}
		if names[cat.Name] {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidConfig, cat.Name)
		}
		names[cat.Name] = true

		if cat.Input == "" {
			return fmt.Errorf("%w: category %q: input is empty", ErrInvalidConfig, cat.Name)
		}
		fields := []struct{ key, path string }{
			{"doc_output", cat.DocOutput},
			{"names_output", cat.NamesOutput},
			{"defs_output", cat.DefsOutput},
		}
		for _, f := range fields {
			if f.path == "" {
				return fmt.Errorf("%w: category %q: %s is empty", ErrInvalidConfig, cat.Name, f.key)
			}
			clean := filepath.Clean(f.path)
			if owner, ok := outputs[clean]; ok {
				return fmt.Errorf("%w: category %q: %s %q already written by %s", ErrInvalidConfig, cat.Name, f.key, f.path, owner)
			}
			outputs[clean] = cat.Name + "." + f.key
		}
	}

	return nil
}

// Domain converts the configured categories into domain categories.
func (c *Config) Domain() []domain.Category {
	cats := make([]domain.Category, 0, len(c.Categories))
	for _, cat := range c.Categories {
		cats = append(cats, domain.Category{
			Name:        cat.Name,
			Input:       cat.Input,
			DocOutput:   cat.DocOutput,
			NamesOutput: cat.NamesOutput,
			DefsOutput:  cat.DefsOutput,
		})
	}
	return cats
}
