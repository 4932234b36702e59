// Package config loads the configuration of the strptime command.
//
// A configuration file is either YAML (.yaml, .yml) or JSON with
// comments and trailing commas (.json, .jsonc):
//
//	# formats.yaml
//	formats:
//	  iso: "%Y-%m-%d"
//	  stamp: "%Y-%m-%dT%H:%M:%S"
//	pivot: 69
//	output: json
//	fail_limit: 10
//
// Command line flags take precedence over values from the file.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/fractalqb/strptime"
)

// Output encodings
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputCBOR = "cbor"
)

var ErrUnknownFormat = errors.New("unknown format name")

type Config struct {
	// Formats maps names to format strings.
	Formats map[string]string `yaml:"formats" json:"formats"`
	// Pivot for two-digit years, see strptime.WithPivot
	Pivot int `yaml:"pivot" json:"pivot"`
	// Output is one of OutputText, OutputJSON, OutputCBOR.
	Output string `yaml:"output" json:"output"`
	// FailLimit aborts parsing after that many failed lines; 0 means no
	// limit.
	FailLimit int `yaml:"fail_limit" json:"fail_limit"`
}

// Default returns the configuration used without a config file.
func Default() *Config {
	return &Config{
		Formats: make(map[string]string),
		Pivot:   strptime.DefaultPivot,
		Output:  OutputText,
	}
}

// LoadFile reads the file at path on top of Default and validates the
// result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = cfg.parseYAML(data)
	case ".json", ".jsonc":
		err = cfg.parseJSONC(data)
	default:
		return nil, fmt.Errorf("%s: unsupported config file type '%s'", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (cfg *Config) parseYAML(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing yaml: %w", err)
	}
	return nil
}

func (cfg *Config) parseJSONC(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parsing json: %w", err)
	}
	return nil
}

// Validate checks the output encoding, the pivot and that all formats
// compile.
func (cfg *Config) Validate() error {
	switch cfg.Output {
	case OutputText, OutputJSON, OutputCBOR:
	default:
		return fmt.Errorf("invalid output '%s'", cfg.Output)
	}
	if cfg.Pivot < 0 || cfg.Pivot > 100 {
		return fmt.Errorf("pivot %d not in 0…100", cfg.Pivot)
	}
	if cfg.FailLimit < 0 {
		return fmt.Errorf("negative fail limit %d", cfg.FailLimit)
	}
	for _, name := range cfg.Names() {
		if _, err := strptime.Compile(cfg.Formats[name]); err != nil {
			return fmt.Errorf("format '%s': %w", name, err)
		}
	}
	return nil
}

// Names returns the sorted names of all formats.
func (cfg *Config) Names() []string {
	names := make([]string, 0, len(cfg.Formats))
	for n := range cfg.Formats {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Parser compiles the named format with the configured pivot.
func (cfg *Config) Parser(name string) (*strptime.Parser, error) {
	format, ok := cfg.Formats[name]
	if !ok {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownFormat, name)
	}
	return strptime.Compile(format, strptime.WithPivot(cfg.Pivot))
}
