package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwmp-go/tr069/pkg/model"
)

func newPathsCommand(a *app) *cobra.Command {
	var (
		standard string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List object paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := a.registry.Objects()
			if standard != "" {
				std, err := model.ParseStandard(standard)
				if err != nil {
					return err
				}
				defs = a.registry.ByStandard(std)
			}

			for _, def := range defs {
				if verbose {
					fmt.Fprintf(a.out, "%-60s %s %s\n", def.Path, def.Standard, def.Name)
					continue
				}
				fmt.Fprintln(a.out, def.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&standard, "standard", "s", "", "Only list objects of this standard (e.g. TR-181)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the standard and type name of each object")
	return cmd
}
