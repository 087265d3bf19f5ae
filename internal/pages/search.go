package pages

import (
	"context"
	"sync"

	"github.com/artisanfinder/web/internal/components"
	"github.com/artisanfinder/web/internal/domain"
	"github.com/artisanfinder/web/internal/search"
)

// SearchSnapshot is the search results view.
type SearchSnapshot struct {
	Status    Status                   `json:"status"`
	Error     string                   `json:"error,omitempty"`
	Query     domain.SearchQuery       `json:"query"`
	URL       string                   `json:"url"`
	SearchBar components.SearchBarView `json:"searchBar"`
	Results   []components.ArtisanCard `json:"results"`
	Count     int                      `json:"count"`
	Summary   string                   `json:"summary"`
	Empty     bool                     `json:"empty"`
}

// SearchPage fetches the artisan list and filters it by the current query.
type SearchPage struct {
	mu       sync.Mutex
	artisans ArtisanLister
	state    loadState
	bar      *components.SearchBar
	query    domain.SearchQuery
	results  []domain.Artisan
}

// NewSearchPage builds an idle search page.
func NewSearchPage(artisans ArtisanLister) *SearchPage {
	return &SearchPage{
		artisans: artisans,
		state:    newLoadState(),
		bar:      components.NewSearchBar(),
	}
}

// Dispatch handles Mount, SubmitSearch and Retry. Each one fetches the list again.
func (p *SearchPage) Dispatch(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case Mount:
		p.load(ctx, c.Query.Normalize())
	case SubmitSearch:
		p.load(ctx, domain.NewSearchQuery(c.Skill, c.Location))
	case Retry:
		p.mu.Lock()
		q := p.query
		p.mu.Unlock()
		p.load(ctx, q)
	default:
		return errUnsupported("search", cmd)
	}
	return nil
}

func (p *SearchPage) load(ctx context.Context, q domain.SearchQuery) {
	p.mu.Lock()
	seq := p.state.begin()
	p.query = q
	p.bar.SetSkill(q.Skill)
	p.bar.SetLocation(q.Location)
	p.mu.Unlock()

	list, err := p.artisans.ListArtisans(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.stale(seq) {
		return
	}
	if err != nil {
		p.results = nil
		p.state.fail(MsgLoadArtisans)
		return
	}
	p.results = search.Filter(list, q)
	p.state.succeed()
}

// Snapshot copies the current view.
func (p *SearchPage) Snapshot() SearchSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := SearchSnapshot{
		Status:    p.state.status,
		Error:     p.state.errMsg,
		Query:     p.query,
		URL:       search.URL(p.query),
		SearchBar: p.bar.View(),
		Results:   components.NewArtisanCards(p.results),
		Count:     len(p.results),
	}
	snap.Summary = search.Summary(snap.Count, p.query)
	snap.Empty = p.state.status == StatusLoaded && snap.Count == 0
	return snap
}
