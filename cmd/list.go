package cmd

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"movie-catalog-cli/catalog"
	"movie-catalog-cli/model"
	"movie-catalog-cli/store"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		page          int
		sortBy        string
		search        string
		favoritesOnly bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the catalog as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := setup(opts)
			if err != nil {
				return err
			}
			defer d.Close()

			result, err := d.client.FetchPage(cmd.Context(), page)
			if err != nil {
				return fmt.Errorf("fetch page %d: %w", page, err)
			}
			favorites, err := store.LoadFavorites(d.store)
			if err != nil {
				d.logger.Warn("failed to read favorites", "error", err)
				favorites = catalog.NewFavorites()
			}

			movies := catalog.Derive(result.Movies, catalog.Query{
				Search:        search,
				FavoritesOnly: favoritesOnly,
				Favorites:     favorites,
				Sort:          catalog.ParseSortKey(sortBy),
			})
			out := cmd.OutOrStdout()
			if len(movies) == 0 {
				fmt.Fprintln(out, "No movies found.")
			} else {
				renderMovies(out, movies, favorites)
			}
			fmt.Fprintf(out, "Page %d of %d\n", page, result.TotalPages)
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number, starting at 1")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", string(catalog.SortByTitle), "sort by title or rating")
	cmd.Flags().StringVarP(&search, "search", "q", "", "only titles containing this text")
	cmd.Flags().BoolVarP(&favoritesOnly, "favorites", "f", false, "only favorite movies")
	return cmd
}

func renderMovies(out io.Writer, movies []model.Movie, favorites catalog.Favorites) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"", "Title", "Year", "Rating", "Language", "ID"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignCenter},
		{Number: 2, WidthMax: 36},
		{Number: 4, Align: text.AlignRight},
	})
	t.Style().Options.SeparateRows = false

	for _, movie := range movies {
		mark := "♡"
		if favorites.Contains(movie.Id) {
			mark = "♥"
		}
		t.AppendRow(table.Row{
			mark,
			movie.Title(),
			movie.Year(),
			movie.RatingLabel(),
			movie.Language(),
			string(movie.Id),
		})
	}
	t.Render()
}
