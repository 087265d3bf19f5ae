package domain

// Review is a customer's rating of an artisan.
type Review struct {
	ID        int     `json:"id,omitempty"`
	ArtisanID int     `json:"artisanId"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
}
