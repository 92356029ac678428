package listings

import (
	"context"
	"sync"

	"github.com/hollowmere/adventure-bot/internal/domain/game/market"
	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
)

type inMemoryRepository struct {
	mu       sync.RWMutex
	listings map[string]*market.Listing
}

// NewInMemoryRepository creates a new in-memory listing repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		listings: make(map[string]*market.Listing),
	}
}

func (r *inMemoryRepository) Create(ctx context.Context, l *market.Listing) error {
	if l == nil {
		return apperrors.InvalidArgument("listing cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.listings[l.ID]; exists {
		return apperrors.AlreadyExists("listing already exists: " + l.ID)
	}

	cp := *l
	r.listings[l.ID] = &cp
	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, id string) (*market.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, exists := r.listings[id]
	if !exists {
		return nil, apperrors.NotFound("listing not found: " + id)
	}

	cp := *l
	return &cp, nil
}

func (r *inMemoryRepository) ListByRealm(ctx context.Context, realmID string) ([]*market.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*market.Listing
	for _, l := range r.listings {
		if l.RealmID == realmID {
			cp := *l
			out = append(out, &cp)
		}
	}

	return out, nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.listings[id]; !exists {
		return apperrors.NotFound("listing not found: " + id)
	}

	delete(r.listings, id)
	return nil
}
