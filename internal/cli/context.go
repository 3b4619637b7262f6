package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	clierrors "github.com/codysoyland/scriptcontext/internal/errors"
	"github.com/codysoyland/scriptcontext/pkg/hook"
	"github.com/codysoyland/scriptcontext/pkg/installctx"
	"github.com/codysoyland/scriptcontext/pkg/scriptcontext"
)

func newContextCmd(a *app) *cobra.Command {
	var script bool

	cmd := &cobra.Command{
		Use:   "context",
		Short: "Print the install context (project or package)",
		Long: `Print "project" when the lifecycle script runs for the package's own
top-level checkout and "package" when it runs because the package is being
installed as a dependency. Nothing is spawned.

With --script, print the script name for the resolved context instead,
e.g. "postinstall:project" or "postinstall:package".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.signals()
			ic := scriptcontext.Context(s.Dirs)

			if !script {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), ic.String())
				return err
			}

			if s.Lifecycle == "" {
				return clierrors.MissingEvent()
			}
			suffix := a.cfg.PackageSuffix
			if ic == installctx.Project {
				suffix = a.cfg.ProjectSuffix
			}
			name := hook.Script{Lifecycle: s.Lifecycle, Delimiter: a.cfg.Delimiter, Suffix: suffix}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), name.String())
			return err
		},
	}

	cmd.Flags().BoolVar(&script, "script", false, "print the script name for the resolved context")
	return cmd
}
