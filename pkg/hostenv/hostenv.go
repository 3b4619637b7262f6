// Package hostenv collects the signals a package manager exports to
// lifecycle scripts and turns them into values the dispatcher understands.
package hostenv

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/codysoyland/scriptcontext/pkg/hook"
	"github.com/codysoyland/scriptcontext/pkg/installctx"
)

// Environment variables read from the package manager
const (
	EnvInitCwd        = "INIT_CWD"
	EnvPwd            = "PWD"
	EnvLifecycleEvent = "npm_lifecycle_event"
	EnvUnderscore     = "_"
	EnvUserAgent      = "npm_config_user_agent"
)

// DefaultManifest is the file that marks a package root
const DefaultManifest = "package.json"

// LookupFunc has the signature of os.LookupEnv
type LookupFunc func(key string) (string, bool)

// MapLookup returns a LookupFunc backed by m
func MapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// Signals is what the host knows about the current lifecycle invocation
type Signals struct {
	Lifecycle hook.Event
	Dirs      installctx.Dirs
	Manager   PackageManager
}

// FromOS gathers signals from the process environment
func FromOS() Signals {
	return Gather(os.LookupEnv)
}

// Gather reads the signals through lookup. Unset and empty variables are
// reported as absent.
func Gather(lookup LookupFunc) Signals {
	return Signals{
		Lifecycle: hook.Event(value(lookup, EnvLifecycleEvent)),
		Dirs: installctx.Dirs{
			Project: optional(lookup, EnvInitCwd),
			Package: optional(lookup, EnvPwd),
		},
		Manager: DetectPackageManager(lookup),
	}
}

// ResolveManifestRoots moves each present directory up to the closest
// directory containing manifest. A directory with no manifest above it
// becomes absent.
func (s Signals) ResolveManifestRoots(manifest string) Signals {
	s.Dirs.Project = manifestRoot(s.Dirs.Project, manifest)
	s.Dirs.Package = manifestRoot(s.Dirs.Package, manifest)
	return s
}

func manifestRoot(dir *string, manifest string) *string {
	if dir == nil {
		return nil
	}
	root, ok := FindManifestDir(*dir, manifest)
	if !ok {
		return nil
	}
	return &root
}

// FindManifestDir walks from start towards the filesystem root and returns
// the first directory holding manifest. The manifest is only stat'ed.
func FindManifestDir(start, manifest string) (string, bool) {
	if start == "" {
		return "", false
	}
	if manifest == "" {
		manifest = DefaultManifest
	}

	dir := installctx.Canonical(start)
	for {
		info, err := os.Stat(filepath.Join(dir, manifest))
		if err == nil && !info.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func value(lookup LookupFunc, key string) string {
	v, ok := lookup(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

// optional returns a directory variable as given. Paths may legitimately end
// in whitespace, so only the empty value counts as absent.
func optional(lookup LookupFunc, key string) *string {
	v, ok := lookup(key)
	if !ok || v == "" {
		return nil
	}
	return &v
}
