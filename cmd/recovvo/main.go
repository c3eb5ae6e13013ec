package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/recovvo-inc/recovvo/internal/interfaces/cli/migrate"
	"github.com/recovvo-inc/recovvo/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "recovvo",
		Short: "Recovvo - relationship intelligence backend",
		Long:  `Recovvo aggregates provider mailboxes and contacts per organization and serves visibility-controlled relationship data over a multi-tenant REST API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
