// Search and status commands look up a book by name.
package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshelf/internal/output"
	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

func newSearchCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Show the book with the given name",
		Long: `Search finds a book by exact name, ignoring case. With several books
of the same name the first one added is shown.

Example:
  shelf search dune
  shelf search "the dispossessed" -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := app.library()
			if err != nil {
				return err
			}
			book, err := lib.Search(args[0])
			if err != nil {
				return err
			}

			if app.out == output.FormatTable {
				printBookDetails(cmd.OutOrStdout(), book)
				return nil
			}
			return app.render(cmd.OutOrStdout(), book)
		},
	}
}

func newStatusCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "status <name>",
		Short: "Print the status of a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := app.library()
			if err != nil {
				return err
			}
			status, err := lib.Status(args[0])
			if err != nil {
				return err
			}

			result := map[string]string{
				"name":   args[0],
				"status": status,
			}
			return app.report(cmd.OutOrStdout(), result, "%s: %s", args[0], status)
		},
	}
}

// printBookDetails prints book fields in human-readable format.
func printBookDetails(w io.Writer, b types.Book) {
	fmt.Fprintf(w, "Name:    %s\n", b.Name)
	fmt.Fprintf(w, "Author:  %s\n", b.Author)
	fmt.Fprintf(w, "ID:      %s\n", b.BookID)
	fmt.Fprintf(w, "Shelf:   %d\n", b.Shelf)
	fmt.Fprintf(w, "Status:  %s\n", b.Status)
}
