package hostenv

import (
	"path/filepath"
	"strings"
)

// PackageManager identifies the tool that invoked the lifecycle script
type PackageManager string

const (
	Unknown PackageManager = ""
	Npm     PackageManager = "npm"
	Pnpm    PackageManager = "pnpm"
	Yarn    PackageManager = "yarn"
	Bun     PackageManager = "bun"
)

// ParsePackageManager maps a name or executable path to a PackageManager
func ParsePackageManager(s string) PackageManager {
	name := strings.ToLower(filepath.Base(strings.TrimSpace(s)))
	name = strings.TrimSuffix(name, ".exe")
	name = strings.TrimSuffix(name, ".cmd")
	name = strings.TrimSuffix(name, ".js")
	name = strings.TrimSuffix(name, "-cli")

	switch name {
	case "npm":
		return Npm
	case "pnpm":
		return Pnpm
	case "yarn", "yarnpkg":
		return Yarn
	case "bun":
		return Bun
	default:
		return Unknown
	}
}

// DetectPackageManager checks "$_" first and falls back to the first token
// of npm_config_user_agent, e.g. "pnpm/9.1.0 npm/? node/v20.11.0".
func DetectPackageManager(lookup LookupFunc) PackageManager {
	if pm := ParsePackageManager(value(lookup, EnvUnderscore)); pm != Unknown {
		return pm
	}

	agent := value(lookup, EnvUserAgent)
	if agent == "" {
		return Unknown
	}
	first, _, _ := strings.Cut(strings.Fields(agent)[0], "/")
	return ParsePackageManager(first)
}

// String returns the executable name
func (p PackageManager) String() string {
	return string(p)
}
