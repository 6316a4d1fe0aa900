package service

import (
	"net/url"
	"strings"
)

const lookupBaseURL = "https://www.imdb.com/find?q="

// LookupURL links a title to the IMDb search page. Spaces are encoded as %20
// rather than '+'.
func LookupURL(title string) string {
	return lookupBaseURL + strings.ReplaceAll(url.QueryEscape(title), "+", "%20")
}
