// Package config loads and persists presencectl settings.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDir = "presence"

// ConfigEnv names a config file that replaces the per-user default.
const ConfigEnv = "PRESENCE_CONFIG"

// Paths locates presencectl's files on disk.
type Paths struct {
	// ConfigFile is config.yaml under os.UserConfigDir, or $PRESENCE_CONFIG.
	ConfigFile string

	// StateDir holds the default log file (XDG_STATE_HOME, or
	// %LOCALAPPDATA% on Windows).
	StateDir string
}

// DefaultPaths resolves the per-user locations for this platform.
func DefaultPaths() *Paths {
	return &Paths{
		ConfigFile: configFile(),
		StateDir:   stateDir(),
	}
}

// LogFile is where log output goes when log.file is "auto".
func (p *Paths) LogFile() string {
	return filepath.Join(p.StateDir, "presencectl.log")
}

func configFile() string {
	if v := os.Getenv(ConfigEnv); v != "" {
		return v
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appDir, "config.yaml")
}

func stateDir() string {
	if runtime.GOOS == "windows" {
		// UserCacheDir is %LocalAppData% on Windows.
		if dir, err := os.UserCacheDir(); err == nil {
			return filepath.Join(dir, appDir)
		}
	}
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return filepath.Join(v, appDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appDir)
	}
	return filepath.Join(home, ".local", "state", appDir)
}
