package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const FileName = ".skribi.yml"

// Config holds the shell settings. Fields missing from the file keep their
// defaults; command line flags are applied on top by the caller.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	ShellLabel  string `yaml:"shell_label"`
	DumpTokens  bool   `yaml:"dump_tokens"`
	DumpAst     bool   `yaml:"dump_ast"`
}

func Default() *Config {
	return &Config{
		Prompt:      "skribi> ",
		HistoryFile: "~/.skribi_history",
		ShellLabel:  "<stdin>",
	}
}

// DefaultPath is the config file in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve user home: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// Load reads the YAML file at path. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	return Decode(file, path)
}

// LoadOptional is Load, except that a missing file yields the defaults.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func Decode(r io.Reader, name string) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	cfg := Default()
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", name, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var issues []string
	if strings.TrimSpace(c.ShellLabel) == "" {
		issues = append(issues, "shell_label must be a non-empty string")
	}
	if strings.ContainsAny(c.Prompt, "\n\r") {
		issues = append(issues, "prompt must fit on one line")
	}
	if len(issues) == 0 {
		return nil
	}
	return errors.New(strings.Join(issues, "; "))
}

// HistoryPath expands a leading "~/" in HistoryFile. An empty HistoryFile
// disables history.
func (c *Config) HistoryPath() (string, error) {
	if c.HistoryFile == "" {
		return "", nil
	}
	if !strings.HasPrefix(c.HistoryFile, "~/") {
		return c.HistoryFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve user home: %w", err)
	}
	return filepath.Join(home, c.HistoryFile[2:]), nil
}
