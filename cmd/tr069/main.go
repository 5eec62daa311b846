// Command tr069 browses, validates and exports the TR-069 data models.
package main

import (
	"fmt"
	"os"

	"github.com/cwmp-go/tr069/cmd/tr069/commands"
)

func main() {
	if err := commands.NewRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(commands.ExitCode(err))
	}
}
