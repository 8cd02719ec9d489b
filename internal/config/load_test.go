package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"config.toml", FormatTOML, false},
		{"CONFIG.TOML", FormatTOML, false},
		{"config", FormatTOML, false},
		{"config.yaml", FormatYAML, false},
		{"config.yml", FormatYAML, false},
		{"config.json", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("FormatFor(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatFor(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("FormatFor(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoadFileTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[editor]
exit_key = "<C-c>"
register = "+"

[clipboard]
backend = "osc52"
osc52_tmux = true
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Editor.ExitKey != "<C-c>" {
		t.Errorf("ExitKey = %q, want %q", cfg.Editor.ExitKey, "<C-c>")
	}
	if cfg.Editor.Register != "+" {
		t.Errorf("Register = %q, want %q", cfg.Editor.Register, "+")
	}
	if cfg.Clipboard.Backend != "osc52" || !cfg.Clipboard.OSC52Tmux {
		t.Errorf("Clipboard = %+v", cfg.Clipboard)
	}
	// Absent keys keep their defaults.
	if !cfg.Editor.Vim {
		t.Error("Vim should keep its default")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
editor:
  vim: false
  start_mode: insert
log:
  level: debug
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Editor.Vim {
		t.Error("Vim = true, want false")
	}
	if cfg.Editor.StartMode != "insert" {
		t.Errorf("StartMode = %q, want %q", cfg.Editor.StartMode, "insert")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Clipboard.Backend != "system" {
		t.Errorf("Clipboard.Backend = %q, want default", cfg.Clipboard.Backend)
	}
}

func TestLoadFileEmptyYAML(t *testing.T) {
	path := writeFile(t, "config.yml", "")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("empty file should yield defaults, got %+v", cfg)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}

	cfg, err = LoadFile("")
	if err != nil || *cfg != *Default() {
		t.Errorf("LoadFile(\"\") = %+v, %v", cfg, err)
	}
}

func TestLoadFileParseError(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml syntax", "config.toml", "[editor\nvim = true\n"},
		{"yaml syntax", "config.yaml", "editor:\n  vim: [\n"},
		{"yaml unknown field", "config.yaml", "editor:\n  colour: red\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			_, err := LoadFile(path)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("LoadFile() error = %v, want *ParseError", err)
			}
			if pe.Path != path {
				t.Errorf("ParseError.Path = %q, want %q", pe.Path, path)
			}
			if pe.Unwrap() == nil {
				t.Error("ParseError should wrap the decoder error")
			}
		})
	}
}

func TestLoadFileTOMLPosition(t *testing.T) {
	path := writeFile(t, "config.toml", "[editor]\nvim = \n")

	_, err := LoadFile(path)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("LoadFile() error = %v, want *ParseError", err)
	}
	if pe.Line == 0 {
		t.Errorf("ParseError.Line = 0, want a position")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"CHATVIM_VIM":        "false",
		"CHATVIM_EXIT_KEY":   "<C-[>",
		"CHATVIM_REGISTER":   " * ",
		"CHATVIM_CLIPBOARD":  "memory",
		"CHATVIM_LOG_LEVEL":  "warn",
		"CHATVIM_START_MODE": "",
	}
	lookup := func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}

	cfg := Default()
	if err := ApplyEnv(cfg, lookup); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.Editor.Vim {
		t.Error("Vim = true, want false")
	}
	if cfg.Editor.ExitKey != "<C-[>" {
		t.Errorf("ExitKey = %q", cfg.Editor.ExitKey)
	}
	if cfg.Editor.Register != "*" {
		t.Errorf("Register = %q, want %q", cfg.Editor.Register, "*")
	}
	if cfg.Clipboard.Backend != "memory" {
		t.Errorf("Backend = %q", cfg.Clipboard.Backend)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Level = %q", cfg.Log.Level)
	}
	if cfg.Editor.StartMode != "normal" {
		t.Errorf("empty override should be ignored, StartMode = %q", cfg.Editor.StartMode)
	}
}

func TestApplyEnvInvalidBool(t *testing.T) {
	lookup := func(name string) (string, bool) {
		if name == "CHATVIM_VIM" {
			return "sometimes", true
		}
		return "", false
	}

	err := ApplyEnv(Default(), lookup)
	if !errors.Is(err, ErrInvalidEnv) {
		t.Errorf("ApplyEnv() error = %v, want ErrInvalidEnv", err)
	}
}

func TestLoadAppliesEnv(t *testing.T) {
	path := writeFile(t, "config.toml", "[editor]\nregister = \"a\"\n")
	t.Setenv("CHATVIM_REGISTER", "b")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Editor.Register != "b" {
		t.Errorf("Register = %q, want env override %q", cfg.Editor.Register, "b")
	}
}

func TestEnvNames(t *testing.T) {
	names := EnvNames()
	if len(names) != len(envSettings) {
		t.Fatalf("EnvNames() = %d names, want %d", len(names), len(envSettings))
	}
	for _, n := range names {
		if n[:len(EnvPrefix)] != EnvPrefix {
			t.Errorf("%q lacks prefix %q", n, EnvPrefix)
		}
	}
}
