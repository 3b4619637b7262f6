// Package installctx classifies a lifecycle script invocation as running for
// the package's own top-level checkout or for a dependency install nested
// under some other project.
package installctx

import (
	"path/filepath"
)

// InstallContext is the result of classifying a directory pair.
type InstallContext int

const (
	// Package means the script runs because this package is being installed
	// as a dependency elsewhere. It is the zero value.
	Package InstallContext = iota
	// Project means the install and the script share the same directory.
	Project
)

// String returns "project" or "package".
func (c InstallContext) String() string {
	if c == Project {
		return "project"
	}
	return "package"
}

// MarshalText implements encoding.TextMarshaler.
func (c InstallContext) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Dirs holds the two directory signals. A nil field means the signal is absent.
type Dirs struct {
	Project *string // directory the install was started from (INIT_CWD)
	Package *string // directory the script executes in (PWD)
}

// Dir returns a pointer to path, for building Dirs literals.
func Dir(path string) *string {
	return &path
}

// Resolve classifies d.
func (d Dirs) Resolve() InstallContext {
	return Resolve(d.Project, d.Package)
}

// Resolve compares the initiating directory with the current directory.
// An absent or empty signal always yields Package.
func Resolve(initiating, current *string) InstallContext {
	if initiating == nil || current == nil || *initiating == "" || *current == "" {
		return Package
	}
	if Canonical(*initiating) == Canonical(*current) {
		return Project
	}
	return Package
}

// Canonical cleans path and makes it absolute. Relative paths are resolved
// against the process working directory. Symlinks are left alone.
func Canonical(path string) string {
	cleaned := filepath.Clean(path)
	if filepath.IsAbs(cleaned) {
		return cleaned
	}
	abs, err := filepath.Abs(cleaned)
	if err != nil {
		return cleaned
	}
	return abs
}
