package pages

import (
	"context"
	"sync"

	"github.com/artisanfinder/web/internal/components"
	"github.com/artisanfinder/web/internal/search"
)

// Feature is a selling point shown on the landing page.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var homeFeatures = []Feature{
	{Title: "Verified Artisans", Description: "All artisans are verified with proven experience and skills"},
	{Title: "Trusted Platform", Description: "Safe and secure platform with ratings and reviews"},
	{Title: "Quick Response", Description: "Connect with available artisans in your area instantly"},
}

// HomeSnapshot is the landing page view.
type HomeSnapshot struct {
	SearchBar components.SearchBarView `json:"searchBar"`
	Features  []Feature                `json:"features"`
	BrowseURL string                   `json:"browseUrl"`
	JoinURL   string                   `json:"joinUrl"`
	Redirect  string                   `json:"redirect,omitempty"`
}

// HomePage forwards searches to the search page.
type HomePage struct {
	mu       sync.Mutex
	bar      *components.SearchBar
	redirect string
}

// NewHomePage constructs page.
func NewHomePage() *HomePage {
	return &HomePage{bar: components.NewSearchBar()}
}

// Dispatch handles Mount and SubmitSearch.
func (p *HomePage) Dispatch(_ context.Context, cmd Command) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch c := cmd.(type) {
	case Mount:
		p.redirect = ""
	case SubmitSearch:
		p.bar.SetSkill(c.Skill)
		p.bar.SetLocation(c.Location)
		p.redirect = search.URL(p.bar.Submit())
	default:
		return errUnsupported("home", cmd)
	}
	return nil
}

// Snapshot copies the current view.
func (p *HomePage) Snapshot() HomeSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return HomeSnapshot{
		SearchBar: p.bar.View(),
		Features:  append([]Feature(nil), homeFeatures...),
		BrowseURL: search.Path,
		JoinURL:   "/register",
		Redirect:  p.redirect,
	}
}
