package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwmp-go/tr069/pkg/catalog"
	"github.com/cwmp-go/tr069/pkg/model"
)

func newExportCommand(a *app) *cobra.Command {
	var (
		format   string
		output   string
		standard string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the object catalog",
		Long: `Write every object definition as a JSON, YAML or CBOR document.
CBOR output uses canonical encoding, so equal catalogs produce equal bytes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := catalog.ParseFormat(format)
			if err != nil {
				return err
			}

			reg := a.registry
			if standard != "" {
				std, err := model.ParseStandard(standard)
				if err != nil {
					return err
				}
				reg = model.NewRegistry()
				for _, def := range a.registry.ByStandard(std) {
					if err := reg.Register(def); err != nil {
						return err
					}
				}
			}

			var w io.Writer = a.out
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}

			if err := catalog.Export(w, reg, f); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			a.logger.Info("catalog exported",
				zap.String("format", string(f)),
				zap.Int("objects", reg.Len()),
				zap.String("output", output),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, yaml, cbor)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of standard output")
	cmd.Flags().StringVarP(&standard, "standard", "s", "", "Only export objects of this standard")
	return cmd
}
