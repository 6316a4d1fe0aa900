package model

import (
	"bytes"
	"encoding/json"
)

// MoviePage is one page of the catalog. The endpoint answers either with a
// bare array of movies or with an object wrapping them in "data".
type MoviePage struct {
	Movies     []Movie
	TotalPages int
}

type moviePageEnvelope struct {
	Data       []Movie `json:"data"`
	TotalPages int     `json:"totalPages"`
}

func (p *MoviePage) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var movies []Movie
		if err := json.Unmarshal(data, &movies); err != nil {
			return err
		}
		*p = MoviePage{Movies: movies, TotalPages: 1}
		return nil
	}

	var envelope moviePageEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	*p = MoviePage{Movies: envelope.Data, TotalPages: envelope.TotalPages}
	p.Normalize()
	return nil
}

// Normalize fills the defaults for fields the server left out.
func (p *MoviePage) Normalize() {
	if p.Movies == nil {
		p.Movies = []Movie{}
	}
	if p.TotalPages < 1 {
		p.TotalPages = 1
	}
}
