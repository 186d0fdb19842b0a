package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const flashTTL = 30 * time.Minute

// FlashStore holds per-session, consume-once flash messages in Redis lists.
// Key format: flash:<session_id>:<category>
type FlashStore struct {
	client *redis.Client
}

// NewFlashStore creates a FlashStore wrapping the given Redis client.
func NewFlashStore(client *redis.Client) *FlashStore {
	return &FlashStore{client: client}
}

// Push appends messages to the session's category queue. Unread entries
// expire with the key after flashTTL.
func (f *FlashStore) Push(ctx context.Context, sessionID, category string, messages ...string) error {
	if len(messages) == 0 {
		return nil
	}

	values := make([]interface{}, len(messages))
	for i, m := range messages {
		values[i] = m
	}

	key := f.key(sessionID, category)
	pipe := f.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.Expire(ctx, key, flashTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("flash push: %w", err)
	}
	return nil
}

// Drain returns all queued entries for the category and clears them in one
// MULTI/EXEC transaction, so no request ever observes a partial drain. A
// missing key yields an empty slice.
func (f *FlashStore) Drain(ctx context.Context, sessionID, category string) ([]string, error) {
	key := f.key(sessionID, category)

	pipe := f.client.TxPipeline()
	rangeCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("flash drain: %w", err)
	}

	return rangeCmd.Val(), nil
}

func (f *FlashStore) key(sessionID, category string) string {
	return fmt.Sprintf("flash:%s:%s", sessionID, category)
}
