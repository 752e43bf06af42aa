// Add command appends a book to the catalog.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

func newAddCmd(app *application) *cobra.Command {
	var book types.Book

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Long: `Add appends a book to the catalog. Books with the same name are
allowed; search, edit and remove act on the first one added.

When --id is omitted a UUID is generated.

Example:
  shelf add --name Dune --author Herbert --id 1 --shelf 2 --status available
  shelf add --name "The Dispossessed" --author "Le Guin" --shelf 4 --status "checked out"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := app.library()
			if err != nil {
				return err
			}

			added, err := lib.Add(book)
			if err != nil {
				return err
			}
			return app.report(cmd.OutOrStdout(), added, "Added %q (id %s)", added.Name, added.BookID)
		},
	}

	cmd.Flags().StringVar(&book.Name, "name", "", "book name (required)")
	cmd.Flags().StringVar(&book.Author, "author", "", "author name (required)")
	cmd.Flags().StringVar(&book.BookID, "id", "", "book identifier (default: generated)")
	cmd.Flags().IntVar(&book.Shelf, "shelf", 0, "shelf number, 1 or greater (required)")
	cmd.Flags().StringVar(&book.Status, "status", "", `status, e.g. "available" (required)`)
	for _, name := range []string{"name", "author", "shelf", "status"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
