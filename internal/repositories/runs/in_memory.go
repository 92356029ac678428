package runs

import (
	"context"
	"sync"

	"github.com/hollowmere/adventure-bot/internal/domain/game/run"
	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu   sync.RWMutex
	runs map[string]*run.DungeonRun
}

// NewInMemoryRepository creates a new in-memory run repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		runs: make(map[string]*run.DungeonRun),
	}
}

func (r *inMemoryRepository) Create(ctx context.Context, dr *run.DungeonRun) error {
	if dr == nil {
		return apperrors.InvalidArgument("run cannot be nil")
	}
	if dr.ID == "" {
		return apperrors.InvalidArgument("run ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[dr.ID]; exists {
		return apperrors.AlreadyExists("run already exists: " + dr.ID)
	}

	cp := *dr
	r.runs[dr.ID] = &cp
	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, id string) (*run.DungeonRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dr, exists := r.runs[id]
	if !exists {
		return nil, apperrors.NotFound("run not found: " + id)
	}

	cp := *dr
	return &cp, nil
}

func (r *inMemoryRepository) GetByChannel(ctx context.Context, realmID, channelID string) (*run.DungeonRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, dr := range r.runs {
		if dr.RealmID == realmID && dr.ChannelID == channelID && dr.IsActive() {
			cp := *dr
			return &cp, nil
		}
	}

	return nil, apperrors.NotFound("no active run in channel " + channelID)
}

func (r *inMemoryRepository) Update(ctx context.Context, dr *run.DungeonRun) error {
	if dr == nil {
		return apperrors.InvalidArgument("run cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[dr.ID]; !exists {
		return apperrors.NotFound("run not found: " + dr.ID)
	}

	cp := *dr
	r.runs[dr.ID] = &cp
	return nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[id]; !exists {
		return apperrors.NotFound("run not found: " + id)
	}

	delete(r.runs, id)
	return nil
}
