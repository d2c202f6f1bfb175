package main

import (
	"os"

	"github.com/spf13/cobra"

	"clubcms/internal/interfaces/cli/migrate"
	"clubcms/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clubcms",
		Short: "Club CMS - website backend",
		Long:  `Club CMS is the backend for the club website: authentication, news, calendar, image uploads and the contact form.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
