package components

import "github.com/artisanfinder/web/internal/domain"

// SearchBar holds the two pending inputs until the search is submitted.
type SearchBar struct {
	skill    string
	location string
}

// SearchBarView is what the renderer draws.
type SearchBarView struct {
	Skill           string   `json:"skill"`
	Location        string   `json:"location"`
	SkillOptions    []string `json:"skillOptions"`
	LocationOptions []string `json:"locationOptions"`
	SkillHint       string   `json:"skillHint"`
	LocationHint    string   `json:"locationHint"`
}

// NewSearchBar starts with both inputs empty.
func NewSearchBar() *SearchBar {
	return &SearchBar{}
}

// SetSkill changes the pending skill.
func (s *SearchBar) SetSkill(skill string) {
	s.skill = skill
}

// SetLocation changes the pending location.
func (s *SearchBar) SetLocation(location string) {
	s.location = location
}

// Submit returns the pending inputs as a query. Placeholders are dropped.
func (s *SearchBar) Submit() domain.SearchQuery {
	return domain.NewSearchQuery(s.skill, s.location)
}

// View snapshots the bar.
func (s *SearchBar) View() SearchBarView {
	return SearchBarView{
		Skill:           s.skill,
		Location:        s.location,
		SkillOptions:    append([]string(nil), domain.Skills...),
		LocationOptions: append([]string(nil), domain.Locations...),
		SkillHint:       "Select skill",
		LocationHint:    "Enter location",
	}
}
