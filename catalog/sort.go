package catalog

import "strings"

type SortKey string

const (
	SortByTitle  SortKey = "title"
	SortByRating SortKey = "rating"
)

var sortKeys = []SortKey{SortByTitle, SortByRating}

// ParseSortKey accepts the key names case-insensitively. Unknown names are
// kept as-is; Derive leaves the order untouched for them.
func ParseSortKey(value string) SortKey {
	return SortKey(strings.ToLower(strings.TrimSpace(value)))
}

// Next cycles title -> rating -> title.
func (k SortKey) Next() SortKey {
	for i, key := range sortKeys {
		if key == k {
			return sortKeys[(i+1)%len(sortKeys)]
		}
	}
	return SortByTitle
}

func (k SortKey) Label() string {
	switch k {
	case SortByTitle:
		return "Title"
	case SortByRating:
		return "Rating"
	default:
		return string(k)
	}
}
