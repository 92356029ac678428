package listings

import (
	"context"

	"github.com/hollowmere/adventure-bot/internal/domain/game/market"
)

// Repository defines storage for marketplace listings
type Repository interface {
	// Create stores a new listing
	Create(ctx context.Context, l *market.Listing) error

	// Get retrieves a listing by ID
	Get(ctx context.Context, id string) (*market.Listing, error)

	// ListByRealm returns every open listing in a realm
	ListByRealm(ctx context.Context, realmID string) ([]*market.Listing, error)

	// Delete removes a listing after sale or cancellation
	Delete(ctx context.Context, id string) error
}
