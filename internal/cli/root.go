// Package cli implements the scriptcontext command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	clierrors "github.com/codysoyland/scriptcontext/internal/errors"
	"github.com/codysoyland/scriptcontext/pkg/executor"
)

// Execute runs the CLI against the real process environment and returns the
// exit code
func Execute() int {
	return run(newApp(), os.Args[1:], os.Stdout, os.Stderr)
}

func run(a *app, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	return report(stderr, err)
}

// report prints err and maps it to an exit code
func report(w io.Writer, err error) int {
	if code, ok := executor.ExitCode(err); ok {
		fmt.Fprintf(w, "%v\n", err)
		return code
	}

	cliErr := clierrors.AsCLIError(err)
	if cliErr == nil {
		cliErr = clierrors.Wrap(err, clierrors.Runtime)
	}
	clierrors.FprintError(w, cliErr)

	switch cliErr.Category {
	case clierrors.Argument:
		return ExitInvalidArguments
	case clierrors.Configuration:
		return ExitConfiguration
	default:
		return ExitFailure
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scriptcontext",
		Short: "Run install hooks only for the package's own project",
		Long: `scriptcontext runs inside a package.json lifecycle script and tells apart
installing the package's own project from installing it as a dependency of
another project. The follow-up command only runs for the project itself.`,
		Example: `  # package.json: "postinstall": "scriptcontext run"
  # runs "npm run postinstall:project" for the top-level checkout only
  scriptcontext run

  # run an explicit command instead
  scriptcontext run -- make build

  # print "project" or "package"
  scriptcontext context`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default: .scriptcontext.{yml,yaml,json,toml} in the package directory)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.StringVar(&a.event, "event", "", "lifecycle event (default: $npm_lifecycle_event)")
	flags.StringVar(&a.projectDir, "project-dir", "", "directory the install started from (default: $INIT_CWD)")
	flags.StringVar(&a.packageDir, "package-dir", "", "directory of the running package (default: $PWD)")
	flags.StringVarP(&a.delimiter, "delimiter", "d", ":", "separator between event and suffix in script names")
	flags.StringVar(&a.projectSfx, "project", "project", "script suffix for the project context")
	flags.StringVar(&a.packageSfx, "package", "package", "script suffix for the package context")
	flags.StringVar(&a.manager, "package-manager", "", "package manager to run scripts with (default: detected)")

	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newContextCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
