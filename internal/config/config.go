package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultDirName  = "argv"
	defaultFileName = "config.json"
	defaultHistory  = "history"
	defaultPrompt   = "argv> "
	currentVersion  = 1
	envConfigPath   = "ARGV_CONFIG"
	envConfigDir    = "ARGV_CONFIG_DIR"
)

// Report formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

var (
	// ErrConfigNotFound indicates the config file does not exist yet.
	ErrConfigNotFound = errors.New("config file not found")
)

// Config is the persisted argv configuration.
type Config struct {
	Version        int    `json:"version"`
	Format         string `json:"format"`
	RenderMarkdown bool   `json:"render_markdown"`
	Prompt         string `json:"prompt"`
	HistoryFile    string `json:"history_file,omitempty"`
}

// ResolvePath resolves config file path from CLI override, environment, or default.
func ResolvePath(pathOverride string) (string, error) {
	if path := strings.TrimSpace(pathOverride); path != "" {
		return filepath.Clean(path), nil
	}
	if path := strings.TrimSpace(os.Getenv(envConfigPath)); path != "" {
		return filepath.Clean(path), nil
	}
	return DefaultPath()
}

// DefaultDir returns the default directory where argv stores its config.
func DefaultDir() (string, error) {
	if custom := strings.TrimSpace(os.Getenv(envConfigDir)); custom != "" {
		return filepath.Clean(custom), nil
	}

	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "", fmt.Errorf("resolve user home directory: %w", err)
	}
	return filepath.Join(home, "."+defaultDirName), nil
}

// DefaultPath returns the default full path to config.json.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultFileName), nil
}

// HistoryPathForConfig returns the REPL history path that sits next to configPath.
func HistoryPathForConfig(configPath string) string {
	path := strings.TrimSpace(configPath)
	if path == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(path), defaultHistory)
}

// Load reads config from path. When missing, it returns DefaultConfig and ErrConfigNotFound.
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), ErrConfigNotFound
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save persists config to path.
func Save(path string, cfg *Config) error {
	cfg.normalize()
	return writeSecureJSON(path, cfg)
}

// DefaultConfig returns a new default configuration.
func DefaultConfig() *Config {
	cfg := &Config{
		Version:        currentVersion,
		Format:         FormatText,
		RenderMarkdown: true,
		Prompt:         defaultPrompt,
	}
	cfg.normalize()
	return cfg
}

// ValidFormat reports whether format names a known report format.
func ValidFormat(format string) bool {
	switch format {
	case FormatText, FormatJSON, FormatMarkdown:
		return true
	}
	return false
}

// SetFormat validates and stores the default report format.
func (c *Config) SetFormat(format string) error {
	format = strings.ToLower(strings.TrimSpace(format))
	if !ValidFormat(format) {
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, FormatText, FormatJSON, FormatMarkdown)
	}
	c.Format = format
	return nil
}

// ResolveHistoryPath returns the configured history file, or the default one
// next to configPath.
func (c *Config) ResolveHistoryPath(configPath string) string {
	if path := strings.TrimSpace(c.HistoryFile); path != "" {
		return filepath.Clean(path)
	}
	return HistoryPathForConfig(configPath)
}

func (c *Config) normalize() {
	if c.Version == 0 {
		c.Version = currentVersion
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if !ValidFormat(c.Format) {
		c.Format = FormatText
	}
	if c.Prompt == "" {
		c.Prompt = defaultPrompt
	}
	c.HistoryFile = strings.TrimSpace(c.HistoryFile)
}

// writeSecureJSON writes payload through a uniquely named temp file in the
// target directory, so a crash or a concurrent argv never leaves a torn file.
func writeSecureJSON(path string, payload any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config directory %s: %w", dir, err)
	}
	if err := os.Chmod(dir, 0o700); err != nil {
		return fmt.Errorf("set config directory permissions: %w", err)
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	encoded = append(encoded, '\n')

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("set config file permissions: %w", err)
	}
	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace config %s: %w", path, err)
	}
	return nil
}
