package storage

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"feastly/order-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCartStore keeps each customer's cart in a redis hash keyed by dish
// id. Carts are working state, not records: they expire after the TTL and
// are wiped on successful checkout.
type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) cartKey(userID int) string {
	return "cart:" + strconv.Itoa(userID)
}

func (s *RedisCartStore) GetItems(ctx context.Context, userID int) ([]domain.CartItem, error) {
	fields, err := s.Client.HGetAll(ctx, s.cartKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.CartItem, 0, len(fields))
	for _, raw := range fields {
		var item domain.CartItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			log.Printf("[order-svc] skipping unreadable cart entry: %v", err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *RedisCartStore) SetItem(ctx context.Context, userID int, item domain.CartItem) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return err
	}

	key := s.cartKey(userID)
	if err := s.Client.HSet(ctx, key, strconv.Itoa(item.DishID), payload).Err(); err != nil {
		return err
	}
	return s.Client.Expire(ctx, key, s.TTL).Err()
}

func (s *RedisCartStore) RemoveItem(ctx context.Context, userID, dishID int) error {
	removed, err := s.Client.HDel(ctx, s.cartKey(userID), strconv.Itoa(dishID)).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return domain.ErrItemNotInCart
	}
	return nil
}

func (s *RedisCartStore) Clear(ctx context.Context, userID int) error {
	return s.Client.Del(ctx, s.cartKey(userID)).Err()
}
