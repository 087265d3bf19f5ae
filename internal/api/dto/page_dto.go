package dto

// SearchRequest payload for a search bar submit.
type SearchRequest struct {
	Skill    string `json:"skill"`
	Location string `json:"location"`
}

// FieldRequest payload for editing one form input.
type FieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ReviewRequest payload for a new review.
type ReviewRequest struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// PageResponse is the envelope of every page route.
type PageResponse struct {
	Navbar any `json:"navbar"`
	Page   any `json:"page"`
}
