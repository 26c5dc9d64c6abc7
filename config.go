package domform

import (
	"bytes"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		IDAttribute:      DefaultIDAttribute,
		IDPrefix:         DefaultIDPrefix,
		ErrorClass:       DefaultErrorClass,
		RequiredMessage:  DefaultRequiredMessage,
		MaxListIndex:     DefaultMaxListIndex,
		MetricsNamespace: DefaultMetricsNamespace,
	}
}

// ValidateConfig validates configuration values and applies defaults
func ValidateConfig(config *Config) error {
	if config == nil {
		return newOperationError("validate_config", "config cannot be nil", ErrInvalidConfig)
	}

	if config.IDAttribute == "" {
		config.IDAttribute = DefaultIDAttribute
	}
	if strings.ContainsAny(config.IDAttribute, " \t\n\"'=<>/") {
		return newConfigError("IDAttribute", "attribute name contains invalid characters")
	}
	if config.ErrorClass == "" {
		config.ErrorClass = DefaultErrorClass
	}
	if len(strings.Fields(config.ErrorClass)) != 1 {
		return newConfigError("ErrorClass", "error class must be a single class token")
	}
	if config.RequiredMessage == "" {
		config.RequiredMessage = DefaultRequiredMessage
	}
	if config.MaxListIndex <= 0 {
		config.MaxListIndex = DefaultMaxListIndex
	}
	if config.MaxListIndex > MaxListIndexLimit {
		return newSizeLimitError("validate_config", "MaxListIndex", int64(config.MaxListIndex), MaxListIndexLimit)
	}
	if config.MetricsNamespace == "" {
		config.MetricsNamespace = DefaultMetricsNamespace
	}

	return nil
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return DefaultConfig()
	}

	clone := *c
	return &clone
}

// ParseConfig decodes a YAML document over the default configuration
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, WrapError(err, "parse_config", "failed to decode YAML configuration")
		}
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML configuration from r
func LoadConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, WrapError(err, "load_config", "failed to read configuration")
	}
	return ParseConfig(data)
}
