package config

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/chess10kp/dexrun/internal/logging"
)

const (
	EnvDataDirs  = "XDG_DATA_DIRS"
	EnvDataHome  = "XDG_DATA_HOME"
	EnvHome      = "HOME"
	EnvRunnerCmd = "RUNNER_CMD"

	FallbackAppsDir = "/usr/share/applications"
	appsSubdir      = "applications"
	listSeparator   = ":"
)

var log = logging.Get("config")

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

type Config struct {
	// DataDirs are the system application directories, in XDG_DATA_DIRS order.
	DataDirs  []string `toml:"data_dirs"`
	UserDir   string   `toml:"user_dir"`
	RunnerCmd string   `toml:"runner_cmd"`
	Launcher  string   `toml:"launcher"`
	Workers   int      `toml:"workers"`
	UseSway   bool     `toml:"use_sway"`
	Fuzzy     bool     `toml:"fuzzy"`
	CacheSize int      `toml:"cache_size"`
}

var DefaultConfig = Config{
	DataDirs:  []string{FallbackAppsDir},
	Launcher:  "dex",
	Workers:   6,
	CacheSize: 512,
}

// FromEnv resolves the directory set and runner from the environment on top of DefaultConfig.
func FromEnv(lookup LookupFunc) (*Config, error) {
	cfg := DefaultConfig
	cfg.DataDirs = SystemAppDirs(lookup)

	userDir, err := UserAppDir(lookup)
	if err != nil {
		return nil, err
	}
	cfg.UserDir = userDir

	if runner, ok := lookup(EnvRunnerCmd); ok {
		cfg.RunnerCmd = strings.TrimSpace(runner)
	}

	log.Debugf("Resolved %d system dirs, user dir %s, runner %q", len(cfg.DataDirs), cfg.UserDir, cfg.RunnerCmd)
	return &cfg, nil
}

// SystemAppDirs returns <root>/applications for each XDG_DATA_DIRS root, dropping
// empty segments. A repeated root keeps only its last position, since later
// directories win the fold. Without XDG_DATA_DIRS it is just FallbackAppsDir.
func SystemAppDirs(lookup LookupFunc) []string {
	dataDirs, ok := lookup(EnvDataDirs)
	if !ok {
		return []string{FallbackAppsDir}
	}

	roots := strings.Split(dataDirs, listSeparator)
	seen := mapset.NewSet[string]()
	dirs := []string{}
	for i := len(roots) - 1; i >= 0; i-- {
		if roots[i] == "" {
			continue
		}
		dir := filepath.Join(roots[i], appsSubdir)
		if !seen.Add(dir) {
			log.Debugf("Skipping earlier repeat of data dir %s", roots[i])
			continue
		}
		dirs = append(dirs, dir)
	}
	slices.Reverse(dirs)
	return dirs
}

// UserAppDir returns the user override directory.
func UserAppDir(lookup LookupFunc) (string, error) {
	if dataHome, ok := lookup(EnvDataHome); ok && dataHome != "" {
		return filepath.Join(dataHome, appsSubdir), nil
	}

	home, ok := lookup(EnvHome)
	if !ok || home == "" {
		return "", &ConfigurationError{Msg: "unable to determine home directory"}
	}
	return filepath.Join(home, ".local", "share", appsSubdir), nil
}

func (c *Config) HasRunner() bool {
	return c.RunnerCmd != ""
}

func (c *Config) Validate() error {
	if err := c.validateWorkers(); err != nil {
		return err
	}
	if err := c.validateLauncher(); err != nil {
		return err
	}
	if err := c.validateDirs(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateWorkers() error {
	if c.Workers < 1 || c.Workers > 64 {
		return fmt.Errorf("invalid workers: %d (must be 1-64)", c.Workers)
	}
	if c.CacheSize < 1 || c.CacheSize > 100000 {
		return fmt.Errorf("invalid cache_size: %d (must be 1-100000)", c.CacheSize)
	}
	return nil
}

func (c *Config) validateLauncher() error {
	if strings.TrimSpace(c.Launcher) == "" {
		return fmt.Errorf("launcher must not be empty")
	}
	return nil
}

func (c *Config) validateDirs() error {
	if c.UserDir == "" {
		return fmt.Errorf("user_dir must not be empty")
	}
	for _, dir := range c.DataDirs {
		if !filepath.IsAbs(dir) {
			log.Warningf("Data dir %s is relative and will resolve against the working directory", dir)
		}
	}
	return nil
}

// WriteTOML dumps the resolved configuration.
func (c *Config) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ValidateEnv resolves and validates the configuration in one step.
func ValidateEnv(lookup LookupFunc) (*Config, error) {
	cfg, err := FromEnv(lookup)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}
