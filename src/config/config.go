// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/marshal-buffer/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/marshal-buffer/src/logger"
	"github.com/H0llyW00dzZ/marshal-buffer/src/marshal"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigFile names the configuration file when no path is given.
	EnvConfigFile = "MARSHAL_BUFFER_CONFIG_FILE"
	// EnvMaxCapacity overrides buffer.maxCapacity.
	EnvMaxCapacity = "MARSHAL_BUFFER_MAX_CAPACITY"

	// DefaultMaxCapacity matches the usual 1 MiB message size ceiling of the wire layer.
	DefaultMaxCapacity = 1 << 20
)

// Allocator names accepted by buffer.allocator.
const (
	AllocatorHeap = "heap"
	AllocatorPool = "pool"
)

// Log formats accepted by log.format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

//go:embed schema.json
var schema string

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the marshal-buffer configuration structure.
type Config struct {
	// Buffer: settings for every marshaling buffer built from this config
	Buffer struct {
		// MaxCapacity: soft ceiling for speculative doubling
		MaxCapacity int `json:"maxCapacity" yaml:"maxCapacity"`
		// Allocator: storage allocator, "heap" or "pool"
		Allocator string `json:"allocator" yaml:"allocator"`
		// AllocationLimit: hard per-allocation ceiling in bytes, 0 for none
		AllocationLimit int `json:"allocationLimit,omitempty" yaml:"allocationLimit,omitempty"`
	} `json:"buffer" yaml:"buffer"`

	// Log: logger settings
	Log struct {
		// Format: "text" for human-readable lines, "json" for structured lines
		Format string `json:"format" yaml:"format"`
		// Silent: suppress all output
		Silent bool `json:"silent,omitempty" yaml:"silent,omitempty"`
	} `json:"log" yaml:"log"`
}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	cfg := &Config{}
	cfg.Buffer.MaxCapacity = DefaultMaxCapacity
	cfg.Buffer.Allocator = AllocatorHeap
	cfg.Log.Format = LogFormatText
	return cfg
}

// detectConfigFormat determines the configuration file format based on file extension.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
// Keys absent from data keep their current values.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load loads configuration from a JSON or YAML file or applies defaults.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - *Config: the loaded and validated configuration
//   - error: if the file cannot be read or parsed, or validation fails
//
// Configuration Priority:
//  1. Default values are set
//  2. MARSHAL_BUFFER_CONFIG_FILE is used if configPath is empty
//  3. Config file values override defaults
//  4. MARSHAL_BUFFER_MAX_CAPACITY overrides buffer.maxCapacity
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
			return nil, err
		}
	}

	if raw := strings.TrimSpace(os.Getenv(EnvMaxCapacity)); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvMaxCapacity, raw, err)
		}
		config.Buffer.MaxCapacity = v
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration against the embedded JSON schema.
// All violations are reported in a single error.
func (c *Config) Validate() error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(c),
	)
	if err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
}

// NewAllocator builds the storage allocator described by buffer.allocator and
// buffer.allocationLimit.
func (c *Config) NewAllocator() marshal.Allocator {
	var a gc.Allocator = gc.Heap
	if c.Buffer.Allocator == AllocatorPool {
		a = gc.NewPooled()
	}
	if c.Buffer.AllocationLimit > 0 {
		a = gc.Limited(a, c.Buffer.AllocationLimit)
	}
	return a
}

// NewLogger builds the logger described by the log section, writing to w.
func (c *Config) NewLogger(w io.Writer) logger.Logger {
	if c.Log.Silent {
		w = io.Discard
	}

	if c.Log.Format == LogFormatJSON {
		return logger.NewJSONLogger(w, c.Log.Silent)
	}

	l := logger.NewCLILogger()
	l.SetOutput(w)
	return l
}

// NewBuffer builds a marshaling buffer from the buffer section.
// A nil log disables reallocation logging.
//
// With an allocation limit set, speculative doubling stops at the limit, so
// any message that fits under it can be received whatever the buffer held
// before. Only explicit requests beyond the limit fail.
func (c *Config) NewBuffer(log logger.Logger) *marshal.Buffer {
	opts := []marshal.Option{marshal.WithAllocator(c.NewAllocator())}
	if log != nil {
		opts = append(opts, marshal.WithLogger(log))
	}
	return marshal.New(c.effectiveMaxCapacity(), opts...)
}

// effectiveMaxCapacity is buffer.maxCapacity lowered to buffer.allocationLimit when one is set.
func (c *Config) effectiveMaxCapacity() int {
	if c.Buffer.AllocationLimit > 0 {
		return min(c.Buffer.MaxCapacity, c.Buffer.AllocationLimit)
	}
	return c.Buffer.MaxCapacity
}
