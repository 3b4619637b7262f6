// Package config loads scriptcontext settings with koanf.
// Priority: environment variables (SCRIPTCONTEXT_*) > config file > defaults.
// The config file is either the path given with --config or the first
// .scriptcontext.{yml,yaml,json,toml} found in the package directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides
const EnvPrefix = "SCRIPTCONTEXT_"

// FileBase is the config file name without extension
const FileBase = ".scriptcontext"

// HookConfig binds a lifecycle event to an explicit command
type HookConfig struct {
	Command string   `koanf:"command" yaml:"command"`
	Args    []string `koanf:"args" yaml:"args,omitempty"`
}

// Configuration represents the scriptcontext settings
type Configuration struct {
	// Delimiter joins the lifecycle event and the context suffix into a
	// script name ("postinstall" + ":" + "project").
	Delimiter     string `koanf:"delimiter" yaml:"delimiter"`
	ProjectSuffix string `koanf:"project_suffix" yaml:"project_suffix"`
	PackageSuffix string `koanf:"package_suffix" yaml:"package_suffix"`

	// Events a follow-up command is bound to when no hooks table is given.
	Events []string `koanf:"events" yaml:"events"`

	// Hooks is an explicit event -> command table. Takes precedence over
	// the "<pm> run <event>:<suffix>" script convention.
	Hooks map[string]HookConfig `koanf:"hooks" yaml:"hooks,omitempty"`

	// PackageManager overrides detection from $_ / npm_config_user_agent.
	PackageManager string `koanf:"package_manager" yaml:"package_manager"`

	// FindManifestRoot moves both directory signals up to the nearest
	// directory containing Manifest before comparing them.
	FindManifestRoot bool   `koanf:"find_manifest_root" yaml:"find_manifest_root"`
	Manifest         string `koanf:"manifest" yaml:"manifest"`

	LogLevel string `koanf:"log_level" yaml:"log_level"`
	NoColor  bool   `koanf:"no_color" yaml:"no_color"`

	// Source is the config file that was loaded, if any
	Source string `koanf:"-" yaml:"-"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ConfigPath is an explicit config file. It must exist.
	ConfigPath string
	// SearchDir is searched for .scriptcontext.* when ConfigPath is empty.
	SearchDir string
	// Environ is used instead of the process environment when non-nil.
	Environ []string
}

// Load loads configuration from defaults, a config file and the environment
func Load(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	path, err := findConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}

	if err := loadEnvironmentConfig(k, opts.Environ); err != nil {
		return nil, err
	}

	cfg, err := finalizeConfig(k)
	if err != nil {
		return nil, err
	}
	cfg.Source = path
	return cfg, nil
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// findConfigFile returns the explicit path or the first matching file in
// SearchDir. An empty result means no file.
func findConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigPath != "" {
		if !fileExists(opts.ConfigPath) {
			return "", fmt.Errorf("config file %s not found", opts.ConfigPath)
		}
		return opts.ConfigPath, nil
	}
	if opts.SearchDir == "" {
		return "", nil
	}
	for _, ext := range []string{".yml", ".yaml", ".json", ".toml"} {
		candidate := filepath.Join(opts.SearchDir, FileBase+ext)
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", nil
}

// loadFile picks a parser from the file extension
func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	case ".toml":
		parser = TOMLParser()
	default:
		return fmt.Errorf("unsupported config format %q (use .yml, .yaml, .json or .toml)", filepath.Ext(path))
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return nil
}

// loadEnvironmentConfig loads SCRIPTCONTEXT_* overrides
func loadEnvironmentConfig(k *koanf.Koanf, environ []string) error {
	if environ == nil {
		if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
			return fmt.Errorf("failed to load environment config: %w", err)
		}
		return nil
	}

	// Same transform, explicit environment (tests, embedding hosts).
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		k.Set(envTransform(key), value)
	}
	return nil
}

// finalizeConfig unmarshals and validates
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Events = NormalizeEvents(cfg.Events)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// NormalizeEvents trims entries and splits comma lists that came in as a
// single element
func NormalizeEvents(events []string) []string {
	var out []string
	for _, e := range events {
		for _, part := range strings.Split(e, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// fileExists returns true if path exists and is not a directory
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// envTransform converts environment variable names to config keys.
// SCRIPTCONTEXT_LOG_LEVEL -> log_level, SCRIPTCONTEXT_HOOKS__POSTINSTALL__COMMAND -> hooks.postinstall.command
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}
