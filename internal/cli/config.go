package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codysoyland/scriptcontext/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var template bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Example: `  scriptcontext config
  scriptcontext config --template > .scriptcontext.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if template {
				_, err := fmt.Fprint(out, config.GetDefaultConfigTemplate())
				return err
			}

			if a.cfg.Source != "" {
				fmt.Fprintf(out, "# source: %s\n", a.cfg.Source)
			}
			data, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&template, "template", false, "print a commented config file")
	return cmd
}
