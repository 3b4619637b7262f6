package config

import (
	"fmt"
	"strings"

	"github.com/codysoyland/scriptcontext/internal/logging"
	"github.com/codysoyland/scriptcontext/pkg/hostenv"
)

// Validate checks a loaded configuration
func Validate(cfg *Configuration) error {
	if cfg.Delimiter == "" {
		return fmt.Errorf("delimiter must not be empty")
	}
	if strings.TrimSpace(cfg.ProjectSuffix) == "" {
		return fmt.Errorf("project_suffix must not be empty")
	}
	if strings.TrimSpace(cfg.PackageSuffix) == "" {
		return fmt.Errorf("package_suffix must not be empty")
	}
	if cfg.ProjectSuffix == cfg.PackageSuffix {
		return fmt.Errorf("project_suffix and package_suffix must differ, both are %q", cfg.ProjectSuffix)
	}
	if cfg.PackageManager != "" && hostenv.ParsePackageManager(cfg.PackageManager) == hostenv.Unknown {
		return fmt.Errorf("package_manager %q is not one of npm, pnpm, yarn, bun", cfg.PackageManager)
	}
	if cfg.FindManifestRoot && strings.TrimSpace(cfg.Manifest) == "" {
		return fmt.Errorf("manifest must not be empty when find_manifest_root is enabled")
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	for event, h := range cfg.Hooks {
		if strings.TrimSpace(event) == "" {
			return fmt.Errorf("hooks: event name must not be empty")
		}
		if strings.TrimSpace(h.Command) == "" {
			return fmt.Errorf("hooks.%s: command must not be empty", event)
		}
	}
	return nil
}
