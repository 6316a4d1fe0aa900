package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"movie-catalog-cli/catalog"
	"movie-catalog-cli/model"
	"movie-catalog-cli/store"
)

var errNoMovies = errors.New("no movies on this page")

func newFavoriteCmd(opts *rootOptions) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "favorite [id]",
		Short: "Toggle a movie in the favorites",
		Long:  `Toggle a movie in the favorites. Without an id, pick a movie from a page of the catalog.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := setup(opts)
			if err != nil {
				return err
			}
			defer d.Close()

			favorites, err := store.LoadFavorites(d.store)
			if err != nil {
				return fmt.Errorf("read favorites: %w", err)
			}

			var (
				id    model.MovieID
				title string
			)
			if len(args) == 1 {
				id = model.MovieID(strings.TrimSpace(args[0]))
				title = string(id)
			} else {
				result, err := d.client.FetchPage(cmd.Context(), page)
				if err != nil {
					return fmt.Errorf("fetch page %d: %w", page, err)
				}
				movie, err := promptSelectMovie(catalog.Derive(result.Movies, catalog.Query{Sort: catalog.SortByTitle}), favorites)
				if err != nil {
					return err
				}
				id, title = movie.Id, movie.Title()
			}
			if id == "" {
				return errors.New("movie id is required")
			}

			favorites = favorites.Toggle(id)
			if err := store.SaveFavorites(d.store, favorites); err != nil {
				return fmt.Errorf("save favorites: %w", err)
			}
			if favorites.Contains(id) {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites\n", title)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites\n", title)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to pick from when no id is given")
	return cmd
}

func promptSelectMovie(movies []model.Movie, favorites catalog.Favorites) (model.Movie, error) {
	if len(movies) == 0 {
		return model.Movie{}, errNoMovies
	}

	items := make([]string, len(movies))
	for i, movie := range movies {
		mark := "♡"
		if favorites.Contains(movie.Id) {
			mark = "♥"
		}
		items[i] = fmt.Sprintf("%s %s (%s)", mark, movie.Title(), movie.Year())
	}

	searcher := func(input string, index int) bool {
		return strings.Contains(strings.ToLower(items[index]), strings.ToLower(strings.TrimSpace(input)))
	}

	selectMovie := promptui.Select{
		Label:    "Select Movie",
		Items:    items,
		Size:     10,
		Searcher: searcher,
	}
	index, _, err := selectMovie.Run()
	if err != nil {
		return model.Movie{}, fmt.Errorf("select movie: %w", err)
	}
	return movies[index], nil
}
