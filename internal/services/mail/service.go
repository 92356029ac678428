package mail

import (
	"context"
	"time"

	"github.com/hollowmere/adventure-bot/internal/domain/game/mail"
	"github.com/hollowmere/adventure-bot/internal/domain/game/player"
	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
	"github.com/hollowmere/adventure-bot/internal/repositories/mailbox"
	"github.com/hollowmere/adventure-bot/internal/repositories/players"
	"github.com/hollowmere/adventure-bot/internal/uuid"
)

// Service handles gifting between players
type Service interface {
	// SendGift moves coins/items out of the sender and into a mailbox
	// message for the recipient
	SendGift(ctx context.Context, input *SendGiftInput) (*mail.Message, error)

	// ListMail returns the unclaimed messages waiting for a user
	ListMail(ctx context.Context, realmID, userID string) ([]*mail.Message, error)

	// Claim transfers a message's contents to the recipient
	Claim(ctx context.Context, realmID, userID, displayName, messageID string) (*player.Player, error)
}

// SendGiftInput contains data for sending a gift
type SendGiftInput struct {
	RealmID    string
	FromUserID string
	FromName   string
	ToUserID   string
	Note       string
	Coins      int
	Items      map[string]int
}

type service struct {
	playerRepo players.Repository
	mailRepo   mailbox.Repository
	uuidGen    uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	PlayerRepository  players.Repository // Required
	MailboxRepository mailbox.Repository // Required
	UUIDGenerator     uuid.Generator     // Optional
}

// NewService creates a new mail service
func NewService(cfg *ServiceConfig) Service {
	if cfg.PlayerRepository == nil {
		panic("player repository is required")
	}
	if cfg.MailboxRepository == nil {
		panic("mailbox repository is required")
	}

	svc := &service{
		playerRepo: cfg.PlayerRepository,
		mailRepo:   cfg.MailboxRepository,
		uuidGen:    cfg.UUIDGenerator,
	}
	if svc.uuidGen == nil {
		svc.uuidGen = uuid.NewGenerator()
	}

	return svc
}

// SendGift moves coins/items out of the sender into a mailbox message
func (s *service) SendGift(ctx context.Context, input *SendGiftInput) (*mail.Message, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}
	if input.FromUserID == input.ToUserID {
		return nil, apperrors.InvalidArgument("you cannot mail yourself")
	}
	if input.Coins < 0 {
		return nil, apperrors.InvalidArgument("coins cannot be negative")
	}
	if input.Coins == 0 && len(input.Items) == 0 && input.Note == "" {
		return nil, apperrors.InvalidArgument("the gift is empty")
	}

	sender, err := s.playerRepo.GetOrCreate(ctx, input.RealmID, input.FromUserID, input.FromName)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load sender")
	}

	// Deduct everything up front; the message escrows it until claimed.
	if input.Coins > 0 {
		if err := sender.SpendCoins(input.Coins); err != nil {
			return nil, err
		}
	}
	for key, count := range input.Items {
		if count <= 0 {
			return nil, apperrors.InvalidArgumentf("invalid count for %s", key)
		}
		if err := sender.RemoveItem(key, count); err != nil {
			return nil, err
		}
	}

	message := &mail.Message{
		ID:         s.uuidGen.New(),
		RealmID:    input.RealmID,
		FromUserID: input.FromUserID,
		ToUserID:   input.ToUserID,
		Note:       input.Note,
		Coins:      input.Coins,
		Items:      input.Items,
		SentAt:     time.Now(),
	}

	if err := s.mailRepo.Create(ctx, message); err != nil {
		return nil, apperrors.Wrap(err, "failed to store message")
	}
	if err := s.playerRepo.Update(ctx, sender); err != nil {
		return nil, apperrors.Wrap(err, "failed to save sender")
	}

	return message, nil
}

// ListMail returns the unclaimed messages waiting for a user
func (s *service) ListMail(ctx context.Context, realmID, userID string) ([]*mail.Message, error) {
	return s.mailRepo.ListByRecipient(ctx, realmID, userID)
}

// Claim transfers a message's contents to the recipient. Mail can be
// addressed to users who have never played, so claiming may mint the
// recipient's save; displayName seeds it.
func (s *service) Claim(ctx context.Context, realmID, userID, displayName, messageID string) (*player.Player, error) {
	message, err := s.mailRepo.Get(ctx, messageID)
	if err != nil {
		return nil, err
	}

	if message.RealmID != realmID || message.ToUserID != userID {
		return nil, apperrors.PermissionDenied("this mail is not addressed to you")
	}
	if message.Claimed {
		return nil, apperrors.InvalidArgument("this mail was already claimed")
	}

	recipient, err := s.playerRepo.GetOrCreate(ctx, realmID, userID, displayName)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load recipient")
	}

	recipient.AddCoins(message.Coins)
	for key, count := range message.Items {
		recipient.AddItem(key, count)
	}

	message.Claimed = true
	if err := s.mailRepo.Update(ctx, message); err != nil {
		return nil, apperrors.Wrap(err, "failed to mark mail claimed")
	}
	if err := s.playerRepo.Update(ctx, recipient); err != nil {
		return nil, apperrors.Wrap(err, "failed to save recipient")
	}

	return recipient, nil
}
