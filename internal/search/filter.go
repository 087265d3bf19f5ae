// Package search narrows the artisan list to a skill/location query.
package search

import (
	"strings"

	"github.com/artisanfinder/web/internal/domain"
)

// Filter returns the artisans whose skill and location contain the query terms,
// compared case-insensitively. Empty or placeholder terms match everything.
// Input order is kept and the input slice is never modified.
func Filter(artisans []domain.Artisan, q domain.SearchQuery) []domain.Artisan {
	q = q.Normalize()
	skill := strings.ToLower(q.Skill)
	location := strings.ToLower(q.Location)

	out := make([]domain.Artisan, 0, len(artisans))
	for _, a := range artisans {
		if !contains(a.Skill, skill) || !contains(a.Location, location) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Matches reports whether a single artisan satisfies q.
func Matches(a domain.Artisan, q domain.SearchQuery) bool {
	q = q.Normalize()
	return contains(a.Skill, strings.ToLower(q.Skill)) && contains(a.Location, strings.ToLower(q.Location))
}

func contains(field, loweredTerm string) bool {
	if loweredTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(field), loweredTerm)
}
