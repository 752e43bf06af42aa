// List command prints the catalog in a chosen order.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshelf/internal/library"
	"github.com/mesh-intelligence/bookshelf/internal/output"
	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

func newListCmd(app *application) *cobra.Command {
	var sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books sorted by author or shelf",
		Long: `List prints every book in the catalog.

Authors are compared case-insensitively. Books that tie keep the order in
which they were added.

Example:
  shelf list
  shelf list --sort shelf
  shelf list --sort none -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := library.ParseOrder(sortBy)
			if err != nil {
				return err
			}

			lib, err := app.library()
			if err != nil {
				return err
			}
			books, err := lib.List(order)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if app.out != output.FormatTable {
				if books == nil {
					books = []types.Book{}
				}
				return app.render(w, books)
			}
			if len(books) == 0 {
				fmt.Fprintln(w, "No books found.")
				return nil
			}
			if err := app.render(w, books); err != nil {
				return err
			}
			fmt.Fprintf(w, "Total: %d book(s)\n", len(books))
			return nil
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", string(library.OrderAuthor), "sort order: author, shelf, none")
	return cmd
}
