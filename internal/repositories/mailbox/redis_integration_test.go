package mailbox_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowmere/adventure-bot/internal/domain/game/mail"
	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
	"github.com/hollowmere/adventure-bot/internal/repositories/mailbox"
	"github.com/hollowmere/adventure-bot/internal/testutils"
)

func message(id, toUserID string) *mail.Message {
	return &mail.Message{
		ID:         id,
		RealmID:    "realm-1",
		FromUserID: "sender",
		ToUserID:   toUserID,
		Note:       "a small something",
		Coins:      10,
		SentAt:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	ctx := context.Background()
	repo := mailbox.NewRedis(client)

	t.Run("create and get round-trip", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, message("msg-1", "friend")))

		got, err := repo.Get(ctx, "msg-1")
		require.NoError(t, err)
		assert.Equal(t, "friend", got.ToUserID)
		assert.Equal(t, 10, got.Coins)
		assert.True(t, got.SentAt.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("get missing message", func(t *testing.T) {
		_, err := repo.Get(ctx, "no-such-message")
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("list filters claimed mail", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, message("msg-2", "friend")))

		claimed := message("msg-3", "friend")
		claimed.Claimed = true
		require.NoError(t, repo.Create(ctx, claimed))

		inbox, err := repo.ListByRecipient(ctx, "realm-1", "friend")
		require.NoError(t, err)

		ids := make([]string, 0, len(inbox))
		for _, m := range inbox {
			ids = append(ids, m.ID)
		}
		assert.ElementsMatch(t, []string{"msg-1", "msg-2"}, ids)
	})

	t.Run("update marks claimed", func(t *testing.T) {
		got, err := repo.Get(ctx, "msg-2")
		require.NoError(t, err)

		got.Claimed = true
		require.NoError(t, repo.Update(ctx, got))

		inbox, err := repo.ListByRecipient(ctx, "realm-1", "friend")
		require.NoError(t, err)
		require.Len(t, inbox, 1)
		assert.Equal(t, "msg-1", inbox[0].ID)
	})

	t.Run("delete removes message and mailbox entry", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "msg-1"))

		_, err := repo.Get(ctx, "msg-1")
		assert.True(t, apperrors.IsNotFound(err))

		inbox, err := repo.ListByRecipient(ctx, "realm-1", "friend")
		require.NoError(t, err)
		assert.Empty(t, inbox)
	})

	t.Run("mailboxes are scoped per recipient", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, message("msg-4", "other")))

		inbox, err := repo.ListByRecipient(ctx, "realm-1", "friend")
		require.NoError(t, err)
		assert.Empty(t, inbox)

		other, err := repo.ListByRecipient(ctx, "realm-1", "other")
		require.NoError(t, err)
		require.Len(t, other, 1)
		assert.Equal(t, "msg-4", other[0].ID)
	})
}
