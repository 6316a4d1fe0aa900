package store

import (
	"encoding/json"
	"errors"

	"movie-catalog-cli/catalog"
	"movie-catalog-cli/model"
)

const (
	DarkModeKey  = "darkMode"
	FavoritesKey = "favorites"
)

// LoadDarkMode returns the persisted theme, or fallback() when nothing was
// ever saved. Any stored value other than "true" means light mode.
func LoadDarkMode(s Store, fallback func() bool) (bool, error) {
	value, ok, err := s.Get(DarkModeKey)
	if err != nil || !ok {
		if fallback == nil {
			return false, err
		}
		return fallback(), err
	}
	return value == "true", nil
}

func SaveDarkMode(s Store, dark bool) error {
	if dark {
		return s.Set(DarkModeKey, "true")
	}
	return s.Set(DarkModeKey, "false")
}

// LoadFavorites reads the favorite ids. A missing key is an empty set.
func LoadFavorites(s Store) (catalog.Favorites, error) {
	value, ok, err := s.Get(FavoritesKey)
	if err != nil {
		return catalog.Favorites{}, err
	}
	if !ok || value == "" {
		return catalog.Favorites{}, nil
	}
	var ids []model.MovieID
	if err := json.Unmarshal([]byte(value), &ids); err != nil {
		return catalog.Favorites{}, errors.New("invalid favorites format")
	}
	return catalog.NewFavorites(ids...), nil
}

func SaveFavorites(s Store, favorites catalog.Favorites) error {
	payload, err := json.Marshal(favorites.IDs())
	if err != nil {
		return err
	}
	return s.Set(FavoritesKey, string(payload))
}
