// Init and version commands for the shelf CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshelf/pkg/bookshelf"
)

func newInitCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize shelf configuration and storage",
		Long: `Init creates the configuration directory with a default config.yaml
and writes an empty catalog file if none exists. An existing catalog is
left as it is.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := app.library()
			if err != nil {
				return err
			}
			if lib.Len() == 0 {
				if err := lib.Save(); err != nil {
					return &systemError{err}
				}
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Shelf initialized successfully")
			fmt.Fprintln(w, "  config: ", app.configDir)
			fmt.Fprintln(w, "  catalog:", lib.Path())
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the shelf version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shelf v%s\n", bookshelf.Version)
		},
	}
}
