package players

import (
	"context"

	"github.com/hollowmere/adventure-bot/internal/domain/game/player"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=mockplayers -source=interface.go

// Repository defines the interface for persistent player storage,
// keyed by (realm ID, user ID) with get-or-create semantics
type Repository interface {
	// GetOrCreate returns the player record, creating a fresh one on
	// first contact
	GetOrCreate(ctx context.Context, realmID, userID, displayName string) (*player.Player, error)

	// Get returns the player record or a not-found error
	Get(ctx context.Context, realmID, userID string) (*player.Player, error)

	// Update persists changes to an existing player
	Update(ctx context.Context, p *player.Player) error

	// ListByRealm returns every player known to a realm
	ListByRealm(ctx context.Context, realmID string) ([]*player.Player, error)
}
