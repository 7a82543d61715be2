// Package config loads the oncelist dev tool configuration.
//
// Configuration is JSONC (JSON with comments and trailing commas) and is
// layered, highest precedence last:
//  1. Defaults
//  2. Global user config ($XDG_CONFIG_HOME/oncelist/config.json or
//     ~/.config/oncelist/config.json)
//  3. Project config (.oncelist.json in the working directory), or an
//     explicit file passed with --config
//  4. Command-line flags, applied by the caller
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/oncelist/pkg/oncelist"
)

// Errors returned by Load.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config")
)

// FileName is the project config file name.
const FileName = ".oncelist.json"

// Config holds the dev tool settings.
type Config struct {
	// Cache is the cache mode name used by stress, bench and repl.
	Cache string `json:"cache"`

	// Workers is the number of concurrent appenders for stress.
	Workers int `json:"workers"`

	// PerWorker is the number of values each stress appender pushes.
	PerWorker int `json:"per_worker"`

	// Batch is the Extend batch size for stress; 1 means PushBack.
	Batch int `json:"batch"`

	// BenchCount is the number of values pushed per bench round.
	BenchCount int `json:"bench_count"`

	// History is the repl history file. Empty disables history.
	History string `json:"history,omitempty"`

	// Resolved values (computed, not serialized)
	EffectiveCwd string             `json:"-"`
	CacheMode    oncelist.CacheMode `json:"-"`

	// Sources tracks which config files were loaded (for diagnostics)
	Sources Sources `json:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Cache:      oncelist.WithTailLen.String(),
		Workers:    8,
		PerWorker:  10_000,
		Batch:      1,
		BenchCount: 100_000,
	}
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // -c/--config flag value
	Env             map[string]string // environment variables
}

// Load resolves the layered configuration. Flags are not applied here.
func Load(input LoadInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg := Default()

	if path := globalPath(input.Env); path != "" {
		overlay, loaded, err := loadFile(path, false)
		if err != nil {
			return Config{}, err
		}

		if loaded {
			cfg = merge(cfg, overlay)
			cfg.Sources.Global = path
		}
	}

	projectFile, mustExist := filepath.Join(workDir, FileName), false

	if input.ConfigPath != "" {
		projectFile, mustExist = input.ConfigPath, true
		if !filepath.IsAbs(projectFile) {
			projectFile = filepath.Join(workDir, projectFile)
		}

		if _, err := os.Stat(projectFile); err != nil {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigFileNotFound, input.ConfigPath)
		}
	}

	overlay, loaded, err := loadFile(projectFile, mustExist)
	if err != nil {
		return Config{}, err
	}

	if loaded {
		cfg = merge(cfg, overlay)
		cfg.Sources.Project = projectFile
	}

	cfg.EffectiveCwd = workDir

	err = cfg.Resolve()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Resolve validates cfg and fills the computed fields. Call it again after
// applying flag overrides.
func (c *Config) Resolve() error {
	mode, err := oncelist.ParseCacheMode(c.Cache)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}

	c.CacheMode = mode

	switch {
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrConfigInvalid, c.Workers)
	case c.PerWorker <= 0:
		return fmt.Errorf("%w: per_worker must be positive, got %d", ErrConfigInvalid, c.PerWorker)
	case c.Batch <= 0:
		return fmt.Errorf("%w: batch must be positive, got %d", ErrConfigInvalid, c.Batch)
	case c.BenchCount <= 0:
		return fmt.Errorf("%w: bench_count must be positive, got %d", ErrConfigInvalid, c.BenchCount)
	}

	return nil
}

// Format renders the serialized fields as indented JSON.
func Format(cfg Config) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("format config: %w", err)
	}

	return string(data), nil
}

// globalPath returns the global config file path, or "" if no home is known.
func globalPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "oncelist", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "oncelist", "config.json")
	}

	return ""
}

// loadFile reads one JSONC file. Missing optional files report loaded=false.
func loadFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, false, nil
		}

		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, true, nil
}

func parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	err = json.Unmarshal(standardized, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return cfg, nil
}

// merge overlays the non-zero fields of overlay onto base.
func merge(base, overlay Config) Config {
	if overlay.Cache != "" {
		base.Cache = overlay.Cache
	}

	if overlay.Workers != 0 {
		base.Workers = overlay.Workers
	}

	if overlay.PerWorker != 0 {
		base.PerWorker = overlay.PerWorker
	}

	if overlay.Batch != 0 {
		base.Batch = overlay.Batch
	}

	if overlay.BenchCount != 0 {
		base.BenchCount = overlay.BenchCount
	}

	if overlay.History != "" {
		base.History = overlay.History
	}

	return base
}
