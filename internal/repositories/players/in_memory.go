package players

import (
	"context"
	"sync"
	"time"

	"github.com/hollowmere/adventure-bot/internal/domain/game/player"
	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu      sync.RWMutex
	players map[string]*player.Player
}

// NewInMemoryRepository creates a new in-memory player repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		players: make(map[string]*player.Player),
	}
}

func (r *inMemoryRepository) GetOrCreate(ctx context.Context, realmID, userID, displayName string) (*player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, exists := r.players[playerKey(realmID, userID)]; exists {
		cp := *p
		return &cp, nil
	}

	p := player.New(realmID, userID, displayName)
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.players[playerKey(realmID, userID)] = p

	cp := *p
	return &cp, nil
}

func (r *inMemoryRepository) Get(ctx context.Context, realmID, userID string) (*player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.players[playerKey(realmID, userID)]
	if !exists {
		return nil, apperrors.NotFoundf("player %s not found in realm %s", userID, realmID)
	}

	cp := *p
	return &cp, nil
}

func (r *inMemoryRepository) Update(ctx context.Context, p *player.Player) error {
	if p == nil {
		return apperrors.InvalidArgument("player cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := playerKey(p.RealmID, p.UserID)
	if _, exists := r.players[key]; !exists {
		return apperrors.NotFoundf("player %s not found in realm %s", p.UserID, p.RealmID)
	}

	p.UpdatedAt = time.Now().UTC()
	cp := *p
	r.players[key] = &cp

	return nil
}

func (r *inMemoryRepository) ListByRealm(ctx context.Context, realmID string) ([]*player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*player.Player
	for _, p := range r.players {
		if p.RealmID == realmID {
			cp := *p
			out = append(out, &cp)
		}
	}

	return out, nil
}
