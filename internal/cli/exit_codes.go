package cli

// Exit codes for the scriptcontext CLI. When the follow-up command itself
// exits non-zero, its exit code is passed through instead.
const (
	// ExitSuccess indicates the hook completed (with or without a spawn)
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure, including a follow-up
	// command that could not be started
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 2

	// ExitConfiguration indicates an invalid configuration file or env value
	ExitConfiguration = 3
)
