// Command musafirctl runs maintenance tasks against the admin database.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "musafirctl",
		Short:         "Maintenance commands for the Musafir admin API",
		SilenceUsage: true,
	}
	root.AddCommand(newMigrateCmd(), newCreateAdminCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
