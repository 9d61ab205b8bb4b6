// Package cache provides a Redis read-through cache in front of the board
// store.
//
// Only FindByID is cached: it backs every board existence check. Writes go
// to the underlying store first and then evict the entry. Redis failures
// never fail a call; the cache falls back to the store.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/kanban-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

var _ ports.BoardStore = (*BoardStore)(nil)

const keyPrefix = "kanban:board:"

// entry is the cached form of a board. Tasks are not cached.
type entry struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// BoardStore wraps a ports.BoardStore. Methods it does not override are
// served by the wrapped store directly.
type BoardStore struct {
	ports.BoardStore
	redis  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewBoardStore wraps base. A zero ttl disables population while still
// evicting on writes.
func NewBoardStore(base ports.BoardStore, client *redis.Client, ttl time.Duration, logger *slog.Logger) *BoardStore {
	if base == nil {
		panic("cache.NewBoardStore: base store is nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &BoardStore{BoardStore: base, redis: client, ttl: ttl, logger: logger}
}

func (c *BoardStore) FindByID(ctx context.Context, id int64) (*board.Board, error) {
	if b, ok := c.load(ctx, id); ok {
		return b, nil
	}

	b, err := c.BoardStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, b)
	return b, nil
}

func (c *BoardStore) Save(ctx context.Context, b *board.Board) (*board.Board, error) {
	saved, err := c.BoardStore.Save(ctx, b)
	if err != nil {
		return nil, err
	}
	c.evict(ctx, saved.ID)
	return saved, nil
}

func (c *BoardStore) DeleteByID(ctx context.Context, id int64) error {
	if err := c.BoardStore.DeleteByID(ctx, id); err != nil {
		return err
	}
	c.evict(ctx, id)
	return nil
}

func (c *BoardStore) UpdateStatus(ctx context.Context, id int64, status board.Status) error {
	if err := c.BoardStore.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	c.evict(ctx, id)
	return nil
}

func (c *BoardStore) load(ctx context.Context, id int64) (*board.Board, bool) {
	if c.redis == nil {
		return nil, false
	}
	data, err := c.redis.Get(ctx, key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.DebugContext(ctx, "board cache read failed", slog.Int64("board_id", id), slog.Any("error", err))
			_ = c.redis.Del(ctx, key(id)).Err()
		}
		return nil, false
	}

	var e entry
	if err := sonic.Unmarshal(data, &e); err != nil {
		_ = c.redis.Del(ctx, key(id)).Err()
		return nil, false
	}
	return &board.Board{ID: e.ID, Name: e.Name, Status: board.Status(e.Status)}, true
}

func (c *BoardStore) store(ctx context.Context, b *board.Board) {
	if c.redis == nil || c.ttl == 0 {
		return
	}
	data, err := sonic.Marshal(entry{ID: b.ID, Name: b.Name, Status: string(b.Status)})
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key(b.ID), data, c.ttl).Err(); err != nil {
		c.logger.DebugContext(ctx, "board cache write failed", slog.Int64("board_id", b.ID), slog.Any("error", err))
	}
}

func (c *BoardStore) evict(ctx context.Context, id int64) {
	if c.redis == nil {
		return
	}
	if err := c.redis.Del(ctx, key(id)).Err(); err != nil {
		c.logger.WarnContext(ctx, "board cache eviction failed", slog.Int64("board_id", id), slog.Any("error", err))
	}
}

func key(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}
