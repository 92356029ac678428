package mailbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hollowmere/adventure-bot/internal/domain/game/mail"
	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
)

type redisRepo struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed mailbox repository
func NewRedis(client *redis.Client) Repository {
	return &redisRepo{client: client}
}

func messageKey(id string) string {
	return fmt.Sprintf("mail:%s", id)
}

func mailboxKey(realmID, userID string) string {
	return fmt.Sprintf("mailbox:%s:%s", realmID, userID)
}

func (r *redisRepo) Create(ctx context.Context, m *mail.Message) error {
	if m == nil {
		return apperrors.InvalidArgument("message cannot be nil")
	}

	data, err := json.Marshal(m)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal message")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, messageKey(m.ID), string(data), 0)
	pipe.SAdd(ctx, mailboxKey(m.RealmID, m.ToUserID), m.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(err, "failed to store message in Redis")
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*mail.Message, error) {
	data, err := r.client.Get(ctx, messageKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFound("message not found: " + id)
		}
		return nil, apperrors.Wrap(err, "failed to get message from Redis")
	}

	var m mail.Message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal message")
	}

	return &m, nil
}

func (r *redisRepo) ListByRecipient(ctx context.Context, realmID, userID string) ([]*mail.Message, error) {
	ids, err := r.client.SMembers(ctx, mailboxKey(realmID, userID)).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get mailbox from Redis")
	}

	var out []*mail.Message
	for _, id := range ids {
		m, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if !m.Claimed {
			out = append(out, m)
		}
	}

	return out, nil
}

func (r *redisRepo) Update(ctx context.Context, m *mail.Message) error {
	if m == nil {
		return apperrors.InvalidArgument("message cannot be nil")
	}

	data, err := json.Marshal(m)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal message")
	}

	if err := r.client.Set(ctx, messageKey(m.ID), string(data), 0).Err(); err != nil {
		return apperrors.Wrap(err, "failed to update message in Redis")
	}

	return nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	m, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, messageKey(id))
	pipe.SRem(ctx, mailboxKey(m.RealmID, m.ToUserID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(err, "failed to delete message from Redis")
	}

	return nil
}
