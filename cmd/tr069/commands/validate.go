package commands

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwmp-go/tr069/pkg/model"
	"github.com/cwmp-go/tr069/pkg/validate"
)

func newValidateCommand(a *app) *cobra.Command {
	var showMetrics bool

	cmd := &cobra.Command{
		Use:   "validate <path> <file.xml>",
		Short: "Validate an XML instance document",
		Long: `Decode an XML document as an instance of the object at <path> and
check it and all of its children. Use "-" to read the document from
standard input. The command exits with status 2 when violations are found.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, p, err := a.definition(args[0])
			if err != nil {
				return err
			}
			if def.New == nil {
				return fmt.Errorf("%w: %s has no constructor", model.ErrInvalidObject, def.Path)
			}

			data, err := readInput(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}
			obj := def.New()
			if err := xml.Unmarshal(data, obj); err != nil {
				return fmt.Errorf("decoding %s: %w", args[1], err)
			}

			a.logger.Info("validating", zap.String("path", p.String()), zap.String("file", args[1]))
			err = a.validator().Tree(obj, p.String())

			if showMetrics {
				defer a.printMetrics()
			}
			if err == nil {
				fmt.Fprintf(a.out, "OK: %s\n", p.String())
				return nil
			}

			vs := validate.Violations(err)
			if vs == nil {
				return err
			}
			for _, v := range vs {
				fmt.Fprintf(a.out, "%s [%s]\n", v.Error(), v.Rule)
			}
			return fmt.Errorf("%w: %d violations in %s", validate.ErrValidation, len(vs), args[1])
		},
	}

	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print validation counters when done")
	return cmd
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

// printMetrics writes the counters gathered during this run.
func (a *app) printMetrics() {
	families, err := a.promRegistry.Gather()
	if err != nil {
		a.logger.Warn("gathering metrics failed", zap.Error(err))
		return
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		fmt.Fprintln(a.out, line)
	}
}
