package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/codysoyland/scriptcontext/internal/config"
	"github.com/codysoyland/scriptcontext/pkg/scriptcontext"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		dryRun bool
		events []string
	)

	cmd := &cobra.Command{
		Use:   "run [flags] [-- command [args...]]",
		Short: "Run the follow-up command when installing the project itself",
		Long: `Resolve the install context from INIT_CWD and PWD and, for the project
context only, run the follow-up command for the current lifecycle event.

Without a trailing command the follow-up is taken from the hooks table in the
config file. Events the table does not bind run
"<package manager> run <event><delimiter><project suffix>".
Dependency installs never run anything.`,
		Example: `  scriptcontext run
  scriptcontext run --events postinstall -- go generate ./...
  scriptcontext run --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("events") {
				a.cfg.Events = config.NormalizeEvents(events)
			}

			s := a.signals()
			d, err := scriptcontext.New(
				scriptcontext.WithPolicy(a.policy(args, s)),
				scriptcontext.WithLogger(a.log),
			)
			if err != nil {
				return err
			}

			spawner := a.spawner
			if dryRun {
				spawner = dryRunSpawner(cmd)
			}

			return d.Dispatch(scriptcontext.Request{
				Lifecycle: s.Lifecycle,
				Dirs:      s.Dirs,
				Spawn:     spawner,
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the follow-up command instead of running it")
	cmd.Flags().StringSliceVar(&events, "events", nil, "events the follow-up command is bound to (default from config)")

	return cmd
}

// formatCommand renders a command line for display
func formatCommand(command string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	for _, p := range append([]string{command}, args...) {
		if p == "" || strings.ContainsAny(p, " \t\"'") {
			p = "'" + strings.ReplaceAll(p, "'", `'\''`) + "'"
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, " ")
}
