package pages

import (
	"context"

	"github.com/artisanfinder/web/internal/domain"
)

// ArtisanLister loads the full artisan list.
type ArtisanLister interface {
	ListArtisans(ctx context.Context) ([]domain.Artisan, error)
}

// ArtisanReader loads one artisan.
type ArtisanReader interface {
	GetArtisan(ctx context.Context, id int) (*domain.Artisan, error)
}

// ArtisanStore is the full artisan surface used by the admin page.
type ArtisanStore interface {
	ArtisanLister
	CreateArtisan(ctx context.Context, artisan domain.Artisan, token string) (*domain.Artisan, error)
	UpdateArtisan(ctx context.Context, id int, artisan domain.Artisan, token string) (*domain.Artisan, error)
	DeleteArtisan(ctx context.Context, id int, token string) error
}

// ReviewStore lists and adds reviews.
type ReviewStore interface {
	ListReviews(ctx context.Context, artisanID int) ([]domain.Review, error)
	CreateReview(ctx context.Context, review domain.Review, token string) (*domain.Review, error)
}

// AccountStore registers and authenticates users.
type AccountStore interface {
	RegisterUser(ctx context.Context, user domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, email, password string) (*domain.LoginResult, error)
}
