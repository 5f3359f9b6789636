package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bounds for ipc.max_candidates.
const (
	MinCandidates = 1
	MaxCandidates = 64
)

// Config represents the presence configuration.
type Config struct {
	Client ClientConfig `yaml:"client"`
	IPC    IPCConfig    `yaml:"ipc"`
	Log    LogConfig    `yaml:"log"`
}

// ClientConfig holds client identity settings.
type ClientConfig struct {
	ClientID string `yaml:"client_id"` // Application id sent in the handshake
}

// IPCConfig holds pipe discovery settings.
type IPCConfig struct {
	PipeRoot      string `yaml:"pipe_root"`      // Directory/namespace holding the pipes (empty = platform default)
	PipePrefix    string `yaml:"pipe_prefix"`    // Pipe name prefix
	MaxCandidates int    `yaml:"max_candidates"` // Number of sequential pipe indexes probed
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file path (empty = stderr, "auto" = Paths.LogFile)
}

// LogFileAuto selects the per-user default log file.
const LogFileAuto = "auto"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		IPC: IPCConfig{
			PipePrefix:    "discord-ipc-",
			MaxCandidates: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load returns the effective configuration: the default config file with
// PRESENCE_* environment overrides applied.
func Load() (*Config, error) {
	return LoadFromFile(DefaultPaths().ConfigFile)
}

// LoadFromFile loads configuration from path and applies environment
// overrides. A missing file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	return load(path, true)
}

// LoadStored loads only what is persisted at path, without environment
// overrides. Use it for a config that is going to be written back.
func LoadStored(path string) (*Config, error) {
	return load(path, false)
}

func load(path string, withEnv bool) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if withEnv {
		cfg.ApplyEnvOverrides()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes the configuration to path.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the value of a dotted key such as "ipc.pipe_root".
func (c *Config) Get(key string) (string, error) {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return "", errors.New("key must be in format 'section.key'")
	}

	section, field := parts[0], parts[1]

	switch section {
	case "client":
		return c.getClientField(field)
	case "ipc":
		return c.getIPCField(field)
	case "log":
		return c.getLogField(field)
	default:
		return "", fmt.Errorf("unknown section: %s", section)
	}
}

// Set assigns value to a dotted key.
func (c *Config) Set(key, value string) error {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return errors.New("key must be in format 'section.key'")
	}

	section, field := parts[0], parts[1]

	switch section {
	case "client":
		return c.setClientField(field, value)
	case "ipc":
		return c.setIPCField(field, value)
	case "log":
		return c.setLogField(field, value)
	default:
		return fmt.Errorf("unknown section: %s", section)
	}
}

func (c *Config) getClientField(field string) (string, error) {
	switch field {
	case "client_id":
		return c.Client.ClientID, nil
	default:
		return "", fmt.Errorf("unknown field: client.%s", field)
	}
}

func (c *Config) setClientField(field, value string) error {
	switch field {
	case "client_id":
		c.Client.ClientID = value
	default:
		return fmt.Errorf("unknown field: client.%s", field)
	}
	return nil
}

func (c *Config) getIPCField(field string) (string, error) {
	switch field {
	case "pipe_root":
		return c.IPC.PipeRoot, nil
	case "pipe_prefix":
		return c.IPC.PipePrefix, nil
	case "max_candidates":
		return strconv.Itoa(c.IPC.MaxCandidates), nil
	default:
		return "", fmt.Errorf("unknown field: ipc.%s", field)
	}
}

func (c *Config) setIPCField(field, value string) error {
	switch field {
	case "pipe_root":
		c.IPC.PipeRoot = value
	case "pipe_prefix":
		if value == "" {
			return errors.New("invalid pipe_prefix: must not be empty")
		}
		c.IPC.PipePrefix = value
	case "max_candidates":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for max_candidates: %w", err)
		}
		if v < MinCandidates || v > MaxCandidates {
			return fmt.Errorf("invalid max_candidates: must be between %d and %d", MinCandidates, MaxCandidates)
		}
		c.IPC.MaxCandidates = v
	default:
		return fmt.Errorf("unknown field: ipc.%s", field)
	}
	return nil
}

func (c *Config) getLogField(field string) (string, error) {
	switch field {
	case "level":
		return c.Log.Level, nil
	case "file":
		return c.Log.File, nil
	default:
		return "", fmt.Errorf("unknown field: log.%s", field)
	}
}

func (c *Config) setLogField(field, value string) error {
	switch field {
	case "level":
		if !isValidLogLevel(value) {
			return fmt.Errorf("invalid level: %s (must be debug, info, warn, or error)", value)
		}
		c.Log.Level = value
	case "file":
		c.Log.File = value
	default:
		return fmt.Errorf("unknown field: log.%s", field)
	}
	return nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.IPC.PipePrefix == "" {
		return errors.New("ipc.pipe_prefix must not be empty")
	}

	if c.IPC.MaxCandidates < MinCandidates || c.IPC.MaxCandidates > MaxCandidates {
		return fmt.Errorf("ipc.max_candidates must be between %d and %d (got: %d)", MinCandidates, MaxCandidates, c.IPC.MaxCandidates)
	}

	if !isValidLogLevel(c.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, or error (got: %s)", c.Log.Level)
	}

	return nil
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// SlogLevel maps log.level to a slog level. Unknown values map to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ApplyEnvOverrides applies PRESENCE_* environment variables on top of the
// loaded values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("PRESENCE_CLIENT_ID"); v != "" {
		c.Client.ClientID = v
	}
	if v := os.Getenv("PRESENCE_PIPE_ROOT"); v != "" {
		c.IPC.PipeRoot = v
	}
	if v := os.Getenv("PRESENCE_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			c.Log.Level = "debug"
		}
	}
	if v := os.Getenv("PRESENCE_LOG_LEVEL"); v != "" {
		if isValidLogLevel(v) {
			c.Log.Level = v
		}
	}
}

// EnvOverrides reports which keys the current environment overrides,
// mapped to the variable responsible. It follows ApplyEnvOverrides.
func EnvOverrides() map[string]string {
	out := make(map[string]string)
	if os.Getenv("PRESENCE_CLIENT_ID") != "" {
		out["client.client_id"] = "PRESENCE_CLIENT_ID"
	}
	if os.Getenv("PRESENCE_PIPE_ROOT") != "" {
		out["ipc.pipe_root"] = "PRESENCE_PIPE_ROOT"
	}
	if b, err := strconv.ParseBool(os.Getenv("PRESENCE_DEBUG")); err == nil && b {
		out["log.level"] = "PRESENCE_DEBUG"
	}
	if isValidLogLevel(os.Getenv("PRESENCE_LOG_LEVEL")) {
		out["log.level"] = "PRESENCE_LOG_LEVEL"
	}
	return out
}

// ListKeys returns all settable configuration keys.
func ListKeys() []string {
	return []string{
		"client.client_id",
		"ipc.pipe_root",
		"ipc.pipe_prefix",
		"ipc.max_candidates",
		"log.level",
		"log.file",
	}
}
