// Package config discovers, decodes and validates commitlint configuration files.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/commitlint/internal/constants"
	"github.com/wizzomafizzo/commitlint/internal/rules"
	"gopkg.in/yaml.v3"
)

var (
	ErrConfigNotFound    = errors.New("configuration file not found")
	ErrUnsupportedFormat = errors.New("unsupported configuration file format")
)

// Format is the encoding of a configuration file.
type Format int

const (
	// FormatUnknown tries JSON first and then YAML.
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
)

// Config is the root of a commitlint configuration file.
type Config struct {
	Rules rules.Rules `json:"rules" yaml:"rules"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{Rules: rules.Default()}
}

// String renders the configuration as YAML.
func (c *Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("# failed to render config: %v\n", err)
	}
	return string(data)
}

// Load resolves the configuration for dir. An explicit path must exist;
// without one, the first of constants.ConfigFilenames found in dir is used,
// and the default configuration is returned when none exists. The returned
// path is empty when defaults are used.
func Load(fs afero.Fs, dir, path string) (*Config, string, error) {
	if path == "" {
		found, ok := FindConfigFile(fs, dir)
		if !ok {
			return Default(), "", nil
		}
		path = found
	}

	cfg, err := LoadFile(fs, path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// FindConfigFile returns the first known configuration file present in dir.
func FindConfigFile(fs afero.Fs, dir string) (string, bool) {
	for _, name := range constants.ConfigFilenames {
		candidate := filepath.Join(dir, name)
		info, err := fs.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// LoadFile reads and decodes the configuration at path. The format is taken
// from the extension; a file without extension is tried as JSON, then YAML.
func LoadFile(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config from %s: %w", path, err)
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", path, err)
	}
	return cfg, nil
}

// FormatFromPath maps a file extension to a Format. A leading dot is part of
// the name, so ".commitlintrc" has no extension.
func FormatFromPath(path string) (Format, error) {
	name := strings.TrimPrefix(filepath.Base(path), ".")
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case "":
		return FormatUnknown, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Parse decodes data, checks it against the JSON schema and validates the
// resulting rule parameters. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Config, error) {
	switch format {
	case FormatJSON:
		return parseAs(data, FormatJSON)
	case FormatYAML:
		return parseAs(data, FormatYAML)
	default:
		if cfg, err := parseAs(data, FormatJSON); err == nil {
			return cfg, nil
		}
		cfg, err := parseAs(data, FormatYAML)
		if err != nil {
			return nil, fmt.Errorf("neither JSON nor YAML: %w", err)
		}
		return cfg, nil
	}
}

func parseAs(data []byte, format Format) (*Config, error) {
	if err := ValidateDocument(data, format); err != nil {
		return nil, err
	}

	cfg := &Config{}
	var err error
	if format == FormatJSON {
		err = decodeJSON(data, cfg)
	} else {
		err = decodeYAML(data, cfg)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeJSON(data []byte, cfg *Config) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	return nil
}

// Validate checks rule parameters that the decoders cannot express, such as
// non-negative lengths.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(yamlFieldName)

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("config validation failed: %w", err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s must be %s %s",
			strings.TrimPrefix(fieldErr.Namespace(), "Config."), describeTag(fieldErr.Tag()), fieldErr.Param()))
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(problems, "; "))
}

func describeTag(tag string) string {
	switch tag {
	case "gte":
		return ">="
	case "lte":
		return "<="
	default:
		return tag
	}
}

// yamlFieldName makes validator report fields by their configuration key.
func yamlFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}
