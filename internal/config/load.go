package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "CHATVIM_"

// Format identifies a config file encoding.
type Format int

const (
	// FormatTOML is the default format.
	FormatTOML Format = iota

	// FormatYAML is selected by .yaml and .yml extensions.
	FormatYAML
)

// String returns the format name.
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

// FormatFor returns the format for a file path based on its extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", "":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// DefaultPath returns the user config file path, or "" when the user
// config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "chatvim", "config.toml")
}

// Load reads the config file at path over the defaults and applies
// environment overrides. An empty path or a missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads the config file at path over the defaults without
// environment overrides.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // File doesn't exist, not an error
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := Decode(cfg, path, data, format); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses data into cfg. Fields absent from data keep their
// current values.
func Decode(cfg *Config, source string, data []byte, format Format) error {
	var err error
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			err = nil // empty document
		}
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err == nil {
		return nil
	}

	pe := &ParseError{Path: source, Message: err.Error(), Err: err}
	var decErr *toml.DecodeError
	if errors.As(err, &decErr) {
		pe.Line, pe.Column = decErr.Position()
	}
	return pe
}

// envSetting maps an environment variable to a config field.
type envSetting struct {
	name string
	set  func(cfg *Config, value string) error
}

var envSettings = []envSetting{
	{"VIM", func(cfg *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		cfg.Editor.Vim = b
		return nil
	}},
	{"START_MODE", func(cfg *Config, v string) error {
		cfg.Editor.StartMode = v
		return nil
	}},
	{"EXIT_KEY", func(cfg *Config, v string) error {
		cfg.Editor.ExitKey = v
		return nil
	}},
	{"REGISTER", func(cfg *Config, v string) error {
		cfg.Editor.Register = v
		return nil
	}},
	{"CLIPBOARD", func(cfg *Config, v string) error {
		cfg.Clipboard.Backend = v
		return nil
	}},
	{"OSC52_TMUX", func(cfg *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		cfg.Clipboard.OSC52Tmux = b
		return nil
	}},
	{"LOG_LEVEL", func(cfg *Config, v string) error {
		cfg.Log.Level = v
		return nil
	}},
	{"LOG_FILE", func(cfg *Config, v string) error {
		cfg.Log.File = v
		return nil
	}},
}

// EnvNames returns the recognized environment variable names.
func EnvNames() []string {
	names := make([]string, len(envSettings))
	for i, s := range envSettings {
		names[i] = EnvPrefix + s.name
	}
	return names
}

// ApplyEnv overrides cfg with CHATVIM_* variables found through lookup.
// Empty values are ignored.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	for _, s := range envSettings {
		name := EnvPrefix + s.name
		v, ok := lookup(name)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			continue
		}
		if err := s.set(cfg, v); err != nil {
			return fmt.Errorf("%s: %w: %w", name, ErrInvalidEnv, err)
		}
	}
	return nil
}
