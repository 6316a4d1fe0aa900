package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"movie-catalog-cli/model"
)

// Query is everything the visible list depends on besides the movies.
type Query struct {
	Search        string
	FavoritesOnly bool
	Favorites     Favorites
	Sort          SortKey
}

// Derive filters and orders movies for display. It never mutates the input
// and is recomputed on every render.
func Derive(movies []model.Movie, q Query) []model.Movie {
	term := strings.ToLower(q.Search)

	out := make([]model.Movie, 0, len(movies))
	for _, movie := range movies {
		if !movie.HasTitle() {
			continue
		}
		if !strings.Contains(strings.ToLower(movie.Title()), term) {
			continue
		}
		if q.FavoritesOnly && !q.Favorites.Contains(movie.Id) {
			continue
		}
		out = append(out, movie)
	}

	switch q.Sort {
	case SortByTitle:
		col := collate.New(language.Und)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Title(), out[j].Title()) < 0
		})
	case SortByRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating() > out[j].Rating()
		})
	}
	return out
}
