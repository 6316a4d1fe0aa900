package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// NotAvailable is shown in place of any missing movie field.
const NotAvailable = "N/A"

const noDescription = "No description available."

// MovieID is the upstream identifier. The API sends strings, but numeric ids
// are accepted and kept in their textual form.
type MovieID string

func (id *MovieID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = MovieID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = MovieID(n.String())
	return nil
}

type Movie struct {
	Id               MovieID  `json:"id"`
	OriginalTitle    *string  `json:"original_title"`
	ReleaseDate      string   `json:"release_date"`
	PosterPath       string   `json:"poster_path"`
	Overview         string   `json:"overview"`
	VoteAverage      *float64 `json:"vote_average"`
	OriginalLanguage string   `json:"original_language"`
}

// HasTitle reports whether the upstream sent a title at all.
func (m Movie) HasTitle() bool {
	return m.OriginalTitle != nil
}

func (m Movie) Title() string {
	if m.OriginalTitle == nil {
		return ""
	}
	return *m.OriginalTitle
}

// Year is the part of the release date before the first dash.
func (m Movie) Year() string {
	if m.ReleaseDate == "" {
		return NotAvailable
	}
	year, _, _ := strings.Cut(m.ReleaseDate, "-")
	return year
}

// Rating returns the average vote, treating a missing value as 0.
func (m Movie) Rating() float64 {
	if m.VoteAverage == nil {
		return 0
	}
	return *m.VoteAverage
}

// RatingLabel formats the rating; zero counts as missing.
func (m Movie) RatingLabel() string {
	rating := m.Rating()
	if rating == 0 {
		return NotAvailable
	}
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

func (m Movie) Description() string {
	if strings.TrimSpace(m.Overview) == "" {
		return noDescription
	}
	return m.Overview
}

// Genre is constant: the upstream catalog has no genre data.
func (m Movie) Genre() string {
	return NotAvailable
}

func (m Movie) Language() string {
	if m.OriginalLanguage == "" {
		return NotAvailable
	}
	return m.OriginalLanguage
}

func (m Movie) HasPoster() bool {
	return strings.TrimSpace(m.PosterPath) != ""
}
