package players

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/hollowmere/adventure-bot/internal/domain/game/player"
	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
)

type redisRepo struct {
	client       *redis.Client
	timeProvider TimeProvider
}

// NewRedis creates a Redis-backed player repository
func NewRedis(client *redis.Client, timeProvider TimeProvider) Repository {
	return &redisRepo{
		client:       client,
		timeProvider: timeProvider,
	}
}

func playerKey(realmID, userID string) string {
	return fmt.Sprintf("player:%s:%s", realmID, userID)
}

func realmIndexKey(realmID string) string {
	return fmt.Sprintf("realm:%s:players", realmID)
}

func (r *redisRepo) GetOrCreate(ctx context.Context, realmID, userID, displayName string) (*player.Player, error) {
	p, err := r.Get(ctx, realmID, userID)
	if err == nil {
		return p, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, err
	}

	p = player.New(realmID, userID, displayName)
	now := r.timeProvider.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := r.set(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *redisRepo) Get(ctx context.Context, realmID, userID string) (*player.Player, error) {
	data, err := r.client.Get(ctx, playerKey(realmID, userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("player %s not found in realm %s", userID, realmID)
		}
		return nil, apperrors.Wrap(err, "failed to get player from Redis")
	}

	var p player.Player
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal player data")
	}

	return &p, nil
}

func (r *redisRepo) Update(ctx context.Context, p *player.Player) error {
	if p == nil {
		return apperrors.InvalidArgument("player cannot be nil")
	}

	p.UpdatedAt = r.timeProvider.Now()
	return r.set(ctx, p)
}

func (r *redisRepo) set(ctx context.Context, p *player.Player) error {
	data, err := json.Marshal(p)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal player data")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, playerKey(p.RealmID, p.UserID), string(data), 0)
	pipe.SAdd(ctx, realmIndexKey(p.RealmID), p.UserID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(err, "failed to set player in Redis")
	}

	return nil
}

func (r *redisRepo) ListByRealm(ctx context.Context, realmID string) ([]*player.Player, error) {
	userIDs, err := r.client.SMembers(ctx, realmIndexKey(realmID)).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get realm players from Redis")
	}

	out := make([]*player.Player, len(userIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, userID := range userIDs {
		i, userID := i, userID
		g.Go(func() error {
			p, err := r.Get(ctx, realmID, userID)
			if err != nil {
				return err
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
