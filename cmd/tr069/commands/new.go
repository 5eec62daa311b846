package commands

import (
	"encoding/xml"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwmp-go/tr069/pkg/model"
	"github.com/cwmp-go/tr069/pkg/types"
)

func newNewCommand(a *app) *cobra.Command {
	var noAlias bool

	cmd := &cobra.Command{
		Use:   "new <path>",
		Short: "Print an XML skeleton of a new object",
		Long: `Print a new object with its default values as XML. Objects with an
Alias parameter get a CPE-assigned alias unless --no-alias is given. For a
concrete table path the instance number is taken from the path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, p, err := a.definition(args[0])
			if err != nil {
				return err
			}
			if def.New == nil {
				return fmt.Errorf("%w: %s has no constructor", model.ErrInvalidObject, def.Path)
			}
			obj := def.New()

			if def.HasAlias() && !noAlias {
				alias := types.NewCPEAlias()
				if err := model.SetParamValue(obj, "Alias", string(alias)); err != nil {
					return err
				}
				a.logger.Debug("assigned alias", zap.String("alias", string(alias)))
			}

			last := p.Segments[len(p.Segments)-1]
			if def.IsMultiInstance() && last.Instance > 0 {
				if err := model.SetInstanceNumber(obj, last.Instance); err != nil {
					return err
				}
			}

			enc := xml.NewEncoder(a.out)
			enc.Indent("", "  ")
			start := xml.StartElement{Name: xml.Name{Local: def.ElementName()}}
			if err := enc.EncodeElement(obj, start); err != nil {
				return err
			}
			if err := enc.Close(); err != nil {
				return err
			}
			fmt.Fprintln(a.out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noAlias, "no-alias", false, "Leave the Alias parameter empty")
	return cmd
}
