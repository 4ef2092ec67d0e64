// Package config loads the defaults used by the unibinary command from an
// optional TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/mnightingale/unibinary"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".unibinary.toml"

// Config holds the command defaults. Flags given on the command line
// override the values loaded from a file.
type Config struct {
	// LineLength breaks encoded output every LineLength symbols, 0 disables it.
	LineLength int `toml:"line_length"`

	// TextEncoding is "utf-8", "utf-16le" or "utf-16be".
	TextEncoding string `toml:"text_encoding"`

	ASCIIPairs bool `toml:"ascii_pairs"`
	ModuloRuns bool `toml:"modulo_runs"`

	// Jobs bounds how many files are processed at once.
	Jobs int `toml:"jobs"`

	// MaxInputSize bounds the encoded text accepted by decode, in bytes.
	MaxInputSize int `toml:"max_input_size"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TextEncoding: unibinary.UTF8.String(),
		ASCIIPairs:   true,
		Jobs:         runtime.NumCPU(),
		MaxInputSize: 1 << 30,
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes TOML data into cfg, rejecting unknown keys, and
// validates the result.
func Parse(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return err
	}

	return cfg.Validate()
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if c.LineLength < 0 {
		return fmt.Errorf("line_length must not be negative, got %d", c.LineLength)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if c.MaxInputSize < 1 {
		return fmt.Errorf("max_input_size must be positive, got %d", c.MaxInputSize)
	}
	if _, err := ParseTextEncoding(c.TextEncoding); err != nil {
		return err
	}

	return nil
}

// ParseTextEncoding maps a text encoding name to its value.
func ParseTextEncoding(name string) (unibinary.TextEncoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unibinary.UTF8, nil
	case "utf-16le", "utf16le", "utf-16", "utf16":
		return unibinary.UTF16LE, nil
	case "utf-16be", "utf16be":
		return unibinary.UTF16BE, nil
	}

	return 0, fmt.Errorf("unknown text_encoding %q", name)
}

// Encoding returns the packing strategies selected by the config.
func (c *Config) Encoding() *unibinary.Encoding {
	var opts []unibinary.EncodingOption
	if !c.ASCIIPairs {
		opts = append(opts, unibinary.WithoutASCIIPairs())
	}
	if c.ModuloRuns {
		opts = append(opts, unibinary.ModuloRunChunking())
	}

	return unibinary.NewEncoding(opts...)
}

// EncoderOptions converts the config to stream encoder options.
// The config must have passed Validate.
func (c *Config) EncoderOptions() []unibinary.EncoderOption {
	text, _ := ParseTextEncoding(c.TextEncoding)

	return []unibinary.EncoderOption{
		unibinary.WithEncoding(c.Encoding()),
		unibinary.WithLineLength(c.LineLength),
		unibinary.WithOutputEncoding(text),
	}
}

// DecoderOptions converts the config to stream decoder options. The text
// encoding is only forced when it is not UTF-8, so UTF-8 input still
// gets byte order mark detection.
func (c *Config) DecoderOptions() []unibinary.DecoderOption {
	opts := []unibinary.DecoderOption{
		unibinary.WithMaxInputSize(c.MaxInputSize),
	}

	if text, _ := ParseTextEncoding(c.TextEncoding); text != unibinary.UTF8 {
		opts = append(opts, unibinary.WithInputEncoding(text))
	}

	return opts
}
