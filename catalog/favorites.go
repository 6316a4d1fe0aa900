package catalog

import "movie-catalog-cli/model"

// Favorites is a set of movie ids. Values are immutable: Toggle returns a new
// set so a copied model never shares state with its predecessor.
type Favorites struct {
	ids []model.MovieID
}

func NewFavorites(ids ...model.MovieID) Favorites {
	var f Favorites
	for _, id := range ids {
		if id == "" || f.Contains(id) {
			continue
		}
		f.ids = append(f.ids, id)
	}
	return f
}

func (f Favorites) Contains(id model.MovieID) bool {
	for _, existing := range f.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Toggle adds id when absent and removes it when present.
func (f Favorites) Toggle(id model.MovieID) Favorites {
	next := make([]model.MovieID, 0, len(f.ids)+1)
	found := false
	for _, existing := range f.ids {
		if existing == id {
			found = true
			continue
		}
		next = append(next, existing)
	}
	if !found {
		next = append(next, id)
	}
	return Favorites{ids: next}
}

func (f Favorites) Len() int {
	return len(f.ids)
}

// IDs returns the ids in insertion order.
func (f Favorites) IDs() []model.MovieID {
	out := make([]model.MovieID, len(f.ids))
	copy(out, f.ids)
	return out
}
