package mailbox

import (
	"context"

	"github.com/hollowmere/adventure-bot/internal/domain/game/mail"
)

// Repository defines storage for mail messages
type Repository interface {
	// Create stores a new message in the recipient's mailbox
	Create(ctx context.Context, m *mail.Message) error

	// Get retrieves a message by ID
	Get(ctx context.Context, id string) (*mail.Message, error)

	// ListByRecipient returns the unclaimed messages waiting for a user
	ListByRecipient(ctx context.Context, realmID, userID string) ([]*mail.Message, error)

	// Update persists changes to a message
	Update(ctx context.Context, m *mail.Message) error

	// Delete removes a message
	Delete(ctx context.Context, id string) error
}
