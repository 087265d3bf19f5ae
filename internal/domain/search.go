package domain

// Placeholder options meaning "no constraint". They never reach the backend.
const (
	AllSkills    = "All Skills"
	AllLocations = "All Locations"
)

// SearchQuery filters the artisan list. Empty fields do not constrain.
type SearchQuery struct {
	Skill    string `json:"skill"`
	Location string `json:"location"`
}

// NewSearchQuery drops the placeholder options. Terms are kept as typed.
func NewSearchQuery(skill, location string) SearchQuery {
	return SearchQuery{Skill: skill, Location: location}.Normalize()
}

// Normalize returns q with the exact sentinel values replaced by "".
func (q SearchQuery) Normalize() SearchQuery {
	return SearchQuery{
		Skill:    normalizeTerm(q.Skill, AllSkills),
		Location: normalizeTerm(q.Location, AllLocations),
	}
}

// IsEmpty reports whether q constrains nothing.
func (q SearchQuery) IsEmpty() bool {
	n := q.Normalize()
	return n.Skill == "" && n.Location == ""
}

func normalizeTerm(term, sentinel string) string {
	if term == sentinel {
		return ""
	}
	return term
}
