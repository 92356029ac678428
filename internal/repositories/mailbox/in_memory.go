package mailbox

import (
	"context"
	"sync"

	"github.com/hollowmere/adventure-bot/internal/domain/game/mail"
	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
)

type inMemoryRepository struct {
	mu       sync.RWMutex
	messages map[string]*mail.Message
}

// NewInMemoryRepository creates a new in-memory mailbox repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		messages: make(map[string]*mail.Message),
	}
}

func (r *inMemoryRepository) Create(ctx context.Context, m *mail.Message) error {
	if m == nil {
		return apperrors.InvalidArgument("message cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.messages[m.ID]; exists {
		return apperrors.AlreadyExists("message already exists: " + m.ID)
	}

	cp := *m
	r.messages[m.ID] = &cp
	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, id string) (*mail.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, exists := r.messages[id]
	if !exists {
		return nil, apperrors.NotFound("message not found: " + id)
	}

	cp := *m
	return &cp, nil
}

func (r *inMemoryRepository) ListByRecipient(ctx context.Context, realmID, userID string) ([]*mail.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*mail.Message
	for _, m := range r.messages {
		if m.RealmID == realmID && m.ToUserID == userID && !m.Claimed {
			cp := *m
			out = append(out, &cp)
		}
	}

	return out, nil
}

func (r *inMemoryRepository) Update(ctx context.Context, m *mail.Message) error {
	if m == nil {
		return apperrors.InvalidArgument("message cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.messages[m.ID]; !exists {
		return apperrors.NotFound("message not found: " + m.ID)
	}

	cp := *m
	r.messages[m.ID] = &cp
	return nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.messages[id]; !exists {
		return apperrors.NotFound("message not found: " + id)
	}

	delete(r.messages, id)
	return nil
}
