package main

import (
	"os"

	"github.com/spf13/cobra"

	"homeward/internal/interfaces/cli/migrate"
	"homeward/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "homeward",
		Short: "Homeward - property warranty tracking",
		Long:  `Homeward tracks new-construction properties and the warranty tickets filed against them.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
