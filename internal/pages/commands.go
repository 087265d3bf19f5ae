package pages

import (
	"fmt"

	"github.com/artisanfinder/web/internal/domain"
)

// Command is a message dispatched from the presentation layer to a page.
type Command interface {
	isCommand()
}

// Mount enters a page with its route parameters: Query for the search page, ID for a profile.
type Mount struct {
	Query domain.SearchQuery
	ID    int
}

// Retry repeats the last load ("Try Again").
type Retry struct{}

// SubmitSearch is emitted by the search bar.
type SubmitSearch struct {
	Skill    string
	Location string
}

// SetField changes one form input.
type SetField struct {
	Field string
	Value string
}

// StartCreate opens an empty artisan draft.
type StartCreate struct{}

// StartEdit opens a draft prefilled from a listed artisan.
type StartEdit struct {
	ID int
}

// CancelEdit discards the draft.
type CancelEdit struct{}

// SubmitForm submits the page's form.
type SubmitForm struct {
	Token string
}

// DeleteArtisan removes an artisan.
type DeleteArtisan struct {
	ID    int
	Token string
}

// SubmitReview posts a review for the artisan shown on a profile.
type SubmitReview struct {
	Rating  float64
	Comment string
	Token   string
}

func (Mount) isCommand()         {}
func (Retry) isCommand()         {}
func (SubmitSearch) isCommand()  {}
func (SetField) isCommand()      {}
func (StartCreate) isCommand()   {}
func (StartEdit) isCommand()     {}
func (CancelEdit) isCommand()    {}
func (SubmitForm) isCommand()    {}
func (DeleteArtisan) isCommand() {}
func (SubmitReview) isCommand()  {}

func commandName(cmd Command) string {
	return fmt.Sprintf("%T", cmd)
}
