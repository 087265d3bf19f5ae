// Package components holds the render-ready views consumed by the page snapshots.
package components

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/artisanfinder/web/internal/domain"
)

// ArtisanCard is the list entry for one artisan. Optional fields are nil/empty when absent.
type ArtisanCard struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Initials      string   `json:"initials"`
	Skill         string   `json:"skill"`
	Location      string   `json:"location"`
	Phone         string   `json:"phone"`
	Experience    string   `json:"experience"`
	Rating        *float64 `json:"rating,omitempty"`
	CompletedJobs *int     `json:"completedJobs,omitempty"`
	Avatar        string   `json:"avatar,omitempty"`
	ProfileURL    string   `json:"profileUrl"`
}

// NewArtisanCard builds the card view of a.
func NewArtisanCard(a domain.Artisan) ArtisanCard {
	card := ArtisanCard{
		ID:         a.ID,
		Name:       a.Name,
		Initials:   Initials(a.Name),
		Skill:      a.Skill,
		Location:   a.Location,
		Phone:      a.Phone,
		Experience: a.Experience,
		Avatar:     a.Avatar,
		ProfileURL: ProfileURL(a.ID),
	}
	// zero values are hidden like missing ones
	if a.Rating != nil && *a.Rating != 0 {
		rating := *a.Rating
		card.Rating = &rating
	}
	if a.CompletedJobs != nil && *a.CompletedJobs != 0 {
		jobs := *a.CompletedJobs
		card.CompletedJobs = &jobs
	}
	return card
}

// NewArtisanCards maps a list preserving order.
func NewArtisanCards(artisans []domain.Artisan) []ArtisanCard {
	cards := make([]ArtisanCard, 0, len(artisans))
	for _, a := range artisans {
		cards = append(cards, NewArtisanCard(a))
	}
	return cards
}

// ProfileURL is the route of an artisan's profile page.
func ProfileURL(id int) string {
	return "/artisan/" + strconv.Itoa(id)
}

// Initials returns the upper-cased first letter of every word of name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
