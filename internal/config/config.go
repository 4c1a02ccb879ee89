// Package config loads generator settings from an optional YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tuplegen/internal/gen"
)

// File is the YAML shape of a tuplegen configuration file. Every
// field is optional; zero values fall back to the generator defaults.
type File struct {
	// FileSuffix overrides the generated filename suffix.
	FileSuffix string `yaml:"file_suffix,omitempty"`
	// TupleImport overrides the tuple package import path.
	TupleImport string `yaml:"tuple_import,omitempty"`
	// Header overrides the generated-file header comment.
	Header string `yaml:"header,omitempty"`
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &f, nil
}

// GenConfig merges the file over the generator defaults.
func (f *File) GenConfig() gen.Config {
	cfg := gen.DefaultConfig()

	if f.FileSuffix != "" {
		cfg.FileSuffix = f.FileSuffix
	}

	if f.TupleImport != "" {
		cfg.TuplePkg = f.TupleImport
	}

	if f.Header != "" {
		cfg.Header = f.Header
	}

	return cfg
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
