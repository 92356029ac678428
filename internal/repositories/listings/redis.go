package listings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/hollowmere/adventure-bot/internal/domain/game/market"
	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
)

type redisRepo struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed listing repository
func NewRedis(client *redis.Client) Repository {
	return &redisRepo{client: client}
}

func listingKey(id string) string {
	return fmt.Sprintf("listing:%s", id)
}

func marketKey(realmID string) string {
	return fmt.Sprintf("market:%s:listings", realmID)
}

func (r *redisRepo) Create(ctx context.Context, l *market.Listing) error {
	if l == nil {
		return apperrors.InvalidArgument("listing cannot be nil")
	}

	data, err := json.Marshal(l)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal listing")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, listingKey(l.ID), string(data), 0)
	pipe.SAdd(ctx, marketKey(l.RealmID), l.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(err, "failed to store listing in Redis")
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*market.Listing, error) {
	data, err := r.client.Get(ctx, listingKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFound("listing not found: " + id)
		}
		return nil, apperrors.Wrap(err, "failed to get listing from Redis")
	}

	var l market.Listing
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal listing")
	}

	return &l, nil
}

func (r *redisRepo) ListByRealm(ctx context.Context, realmID string) ([]*market.Listing, error) {
	ids, err := r.client.SMembers(ctx, marketKey(realmID)).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get market listings from Redis")
	}

	out := make([]*market.Listing, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			l, err := r.Get(ctx, id)
			if err != nil {
				return err
			}
			out[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	l, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, listingKey(id))
	pipe.SRem(ctx, marketKey(l.RealmID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(err, "failed to delete listing from Redis")
	}

	return nil
}
