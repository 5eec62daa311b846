package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwmp-go/tr069/cmd/tr069/shell"
	"github.com/cwmp-go/tr069/pkg/validate"
)

func newShellCommand(a *app) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Browse the data models interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRole(role)
			if err != nil {
				return err
			}
			sh := shell.New(shell.Config{
				Registry:  a.registry,
				Validator: a.validator(),
				Formatter: a.formatter,
				Logger:    a.logger,
				Role:      r,
			}, a.out)
			return sh.Run()
		},
	}

	cmd.Flags().StringVar(&role, "role", "acs", "Writer role for set commands (acs, cpe)")
	return cmd
}

func parseRole(s string) (validate.Role, error) {
	switch strings.ToLower(s) {
	case "acs":
		return validate.RoleACS, nil
	case "cpe":
		return validate.RoleCPE, nil
	default:
		return 0, fmt.Errorf("invalid role: %s", s)
	}
}
