package errors

import "fmt"

// InvalidConfig reports a configuration file or env value that failed to load.
func InvalidConfig(err error) *CLIError {
	cliErr := NewConfigError(fmt.Sprintf("invalid configuration: %v", err),
		"Check the file passed with --config or .scriptcontext.{yml,yaml,json,toml}",
		"Run 'scriptcontext config' to see the effective settings",
		"Unset SCRIPTCONTEXT_* environment variables you did not mean to set",
	)
	cliErr.Err = err
	return cliErr
}

// UnknownPackageManager reports a --package-manager value that is not recognized.
func UnknownPackageManager(name string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unknown package manager %q", name),
		"scriptcontext run --package-manager <npm|pnpm|yarn|bun>",
		"Use one of npm, pnpm, yarn or bun",
	)
}

// MissingEvent reports a query that needs a lifecycle event but has none.
func MissingEvent() *CLIError {
	return NewPrerequisiteError(
		"no lifecycle event available",
		"Run from a package.json script so npm_lifecycle_event is set",
		"Or pass --event <name>",
	)
}
