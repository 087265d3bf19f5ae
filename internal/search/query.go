package search

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/artisanfinder/web/internal/domain"
)

const (
	// Path is the route of the search page.
	Path = "/search"

	paramSkill    = "skill"
	paramLocation = "location"
)

// ParseQuery reads a SearchQuery from query-string values.
func ParseQuery(values url.Values) domain.SearchQuery {
	return domain.NewSearchQuery(values.Get(paramSkill), values.Get(paramLocation))
}

// Values encodes q for a query string, omitting empty terms.
func Values(q domain.SearchQuery) url.Values {
	q = q.Normalize()
	values := url.Values{}
	if q.Skill != "" {
		values.Set(paramSkill, q.Skill)
	}
	if q.Location != "" {
		values.Set(paramLocation, q.Location)
	}
	return values
}

// URL is the bookmarkable search page address for q.
func URL(q domain.SearchQuery) string {
	encoded := Values(q).Encode()
	if encoded == "" {
		return Path
	}
	return Path + "?" + encoded
}

// Summary renders the result count line, e.g. "2 artisans found for Plumber in Nairobi".
func Summary(count int, q domain.SearchQuery) string {
	noun := "artisans"
	if count == 1 {
		noun = "artisan"
	}
	line := fmt.Sprintf("%d %s found", count, noun)

	q = q.Normalize()
	terms := make([]string, 0, 2)
	for _, term := range []string{q.Skill, q.Location} {
		if term != "" {
			terms = append(terms, term)
		}
	}
	if len(terms) > 0 {
		line += " for " + strings.Join(terms, " in ")
	}
	return line
}
