// Edit and remove commands change a book found by name.
package main

import (
	"github.com/spf13/cobra"
)

func newEditCmd(app *application) *cobra.Command {
	var (
		shelf  int
		status string
	)

	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Change the shelf and status of a book",
		Long: `Edit sets a new shelf and status on the first book with the given
name. Name, author and id are not changed.

Example:
  shelf edit dune --shelf 3 --status lost`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := app.library()
			if err != nil {
				return err
			}
			if err := lib.Edit(args[0], shelf, status); err != nil {
				return err
			}

			book, err := lib.Search(args[0])
			if err != nil {
				return err
			}
			return app.report(cmd.OutOrStdout(), book, "Updated %q", book.Name)
		},
	}

	cmd.Flags().IntVar(&shelf, "shelf", 0, "new shelf number (required)")
	cmd.Flags().StringVar(&status, "status", "", "new status (required)")
	_ = cmd.MarkFlagRequired("shelf")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newRemoveCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a book from the catalog",
		Long: `Remove deletes the first book with the given name, ignoring case.

Example:
  shelf remove dune`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := app.library()
			if err != nil {
				return err
			}
			if err := lib.Remove(args[0]); err != nil {
				return err
			}

			result := map[string]string{
				"removed": args[0],
				"status":  "success",
			}
			return app.report(cmd.OutOrStdout(), result, "Removed %q", args[0])
		},
	}
}
