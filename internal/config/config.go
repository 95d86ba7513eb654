// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvConfigPath overrides the default config location
const EnvConfigPath = "LB_CONFIG"

// v is replaced, never mutated in place, when the file changes on disk.
// Every access goes through mu.
var (
	mu         sync.RWMutex
	v          *viper.Viper
	configFile string
	watcher    *fsnotify.Watcher
	handlers   []func()
)

// DefaultColors are the seeds written to a new config file
var DefaultColors = map[string]string{
	"primary":   "#ff8800",
	"secondary": "#00bfa5",
	"tertiary":  "#3b82f6",
	"success":   "#22c55e",
	"warning":   "#f59e0b",
	"error":     "#ef4444",
	"info":      "#3b82f6",
	"neutral":   "#6b7280",
}

// DefaultPath returns $LB_CONFIG, or ~/.littlebrand/config.yaml
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(dataDir(), "config.yaml")
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".littlebrand"
	}
	return filepath.Join(home, ".littlebrand")
}

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	stopWatching()

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	nv, err := readConfig(configPath)
	if err != nil {
		// If config doesn't exist, create it with defaults
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		if err := nv.WriteConfigAs(configPath); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	mu.Lock()
	v = nv
	configFile = filepath.Clean(configPath)
	handlers = nil
	mu.Unlock()

	return nil
}

// readConfig loads path into a new viper with defaults set. The viper is
// returned even when the read fails.
func readConfig(path string) (*viper.Viper, error) {
	nv := viper.New()
	setDefaults(nv)
	nv.SetConfigFile(path)
	nv.SetConfigType("yaml")
	return nv, nv.ReadInConfig()
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Theme defaults
	for role, hex := range DefaultColors {
		v.SetDefault("theme.colors."+role, hex)
	}
	v.SetDefault("theme.background", "neutral")
	v.SetDefault("theme.curve", "natural")
	v.SetDefault("theme.dark", false)
	v.SetDefault("theme.palette", "")

	// Server defaults
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("server.tls_enabled", false)
	v.SetDefault("server.tls_cert", "")
	v.SetDefault("server.tls_key", "")
	v.SetDefault("server.rate_limit", 60) // requests per minute on /api
	v.SetDefault("server.trusted_proxies", []string{})

	// Auth defaults
	v.SetDefault("auth.jwt_secret", "") // empty leaves POST /api/mode open
	v.SetDefault("auth.jwt_expiry_hours", 720)

	// Database defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", filepath.Join(dataDir(), "littlebrand.db"))

	// Output defaults
	v.SetDefault("output.css_path", "littlebrand.css")

	// Backup defaults
	v.SetDefault("backup.path", filepath.Join(dataDir(), "theme-exports"))
	v.SetDefault("backup.interval", "0s") // 0 disables scheduled exports
	v.SetDefault("backup.retention", 10)

	v.SetDefault("log.level", "info")
}

// GetString returns a config value as string
func GetString(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetStringSlice returns a config value as []string
func GetStringSlice(key string) []string {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	mu.Lock()
	defer mu.Unlock()
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		return nil
	}
	return v.AllSettings()
}

// Keys returns every known config key in sorted order
func Keys() []string {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		return nil
	}
	keys := v.AllKeys()
	sort.Strings(keys)
	return keys
}

// ThemeColors returns theme.colors merged with theme.background, keyed by role
func ThemeColors() map[string]string {
	mu.RLock()
	defer mu.RUnlock()

	colors := make(map[string]string)
	if v == nil {
		return colors
	}

	const prefix = "theme.colors."
	for _, key := range v.AllKeys() {
		if strings.HasPrefix(key, prefix) {
			colors[strings.TrimPrefix(key, prefix)] = v.GetString(key)
		}
	}
	if bg := v.GetString("theme.background"); bg != "" {
		colors["background"] = bg
	}
	return colors
}

// SetThemeColors writes every role in colors to the config file
func SetThemeColors(colors map[string]string) error {
	mu.Lock()
	defer mu.Unlock()
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	for role, value := range colors {
		key := "theme.colors." + strings.ToLower(role)
		if role == "background" {
			key = "theme.background"
		}
		v.Set(key, value)
	}

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// OnChange calls fn each time the config file changes on disk, after the
// new contents are loaded. The first call starts watching the file.
func OnChange(fn func()) error {
	mu.Lock()
	defer mu.Unlock()

	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	handlers = append(handlers, fn)
	if watcher != nil {
		return nil
	}

	// Watch the directory so editors that replace the file are seen
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to watch config: %w", err)
	}
	if err := w.Add(filepath.Dir(configFile)); err != nil {
		w.Close()
		return fmt.Errorf("failed to watch config: %w", err)
	}
	watcher = w

	go watch(w, configFile)
	return nil
}

func watch(w *fsnotify.Watcher, file string) {
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != file || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if reload(w, file) {
				notifyChange()
			}
		case _, ok := <-w.Errors:
			if !ok {
				return
			}
		}
	}
}

// reload swaps in a freshly read config. A file that cannot be read, such
// as one caught mid-write, keeps the current config.
func reload(w *fsnotify.Watcher, file string) bool {
	nv, err := readConfig(file)
	if err != nil {
		return false
	}

	mu.Lock()
	defer mu.Unlock()
	if watcher != w {
		return false
	}
	v = nv
	return true
}

func stopWatching() {
	mu.Lock()
	w := watcher
	watcher = nil
	mu.Unlock()

	if w != nil {
		w.Close()
	}
}

func notifyChange() {
	mu.RLock()
	fns := make([]func(), len(handlers))
	copy(fns, handlers)
	mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
