package runs

import (
	"context"

	"github.com/hollowmere/adventure-bot/internal/domain/game/run"
)

// Repository defines storage for active dungeon runs. Runs are
// ephemeral per-adventure state: they are discarded on victory,
// defeat or abandonment and never join the persistent player save, so
// the only implementation is in-memory.
type Repository interface {
	// Create registers a new active run
	Create(ctx context.Context, r *run.DungeonRun) error

	// Get retrieves a run by ID
	Get(ctx context.Context, id string) (*run.DungeonRun, error)

	// GetByChannel retrieves the active run for a channel, if any
	GetByChannel(ctx context.Context, realmID, channelID string) (*run.DungeonRun, error)

	// Update replaces the stored run state
	Update(ctx context.Context, r *run.DungeonRun) error

	// Delete discards a run
	Delete(ctx context.Context, id string) error
}
