package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCommand(a *app) *cobra.Command {
	var (
		metadata     bool
		descriptions bool
	)

	cmd := &cobra.Command{
		Use:   "show <path>",
		Short: "Describe an object",
		Long: `Show the definition of an object: parameters with types and
constraints, and its child objects. The path may be a template
("Device.DynamicDNS.Client.{i}.") or a concrete path ("dev.DynamicDNS.Client.2").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, _, err := a.definition(args[0])
			if err != nil {
				return err
			}
			a.formatter.ShowMetadata = metadata
			a.formatter.ShowDescriptions = descriptions
			fmt.Fprint(a.out, a.formatter.FormatDefinition(def))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&metadata, "metadata", "m", true, "Show access, constraints and defaults")
	cmd.Flags().BoolVarP(&descriptions, "descriptions", "d", false, "Show parameter descriptions")
	return cmd
}
