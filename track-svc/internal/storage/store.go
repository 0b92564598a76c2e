package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"feastly/track-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

var ErrOrderNotTracked = errors.New("order not tracked")

// Store keeps the live tracking state in redis. Tracking data is a
// projection of the order-events stream and can always be rebuilt by
// replaying it, so everything here carries a TTL.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func trackKey(orderID int) string {
	return fmt.Sprintf("track:order:%d", orderID)
}

func historyKey(orderID int) string {
	return fmt.Sprintf("track:order:%d:history", orderID)
}

func (s *Store) RecordStatus(ctx context.Context, evt domain.OrderEvent) error {
	key := trackKey(evt.OrderID)
	err := s.rdb.HSet(ctx, key, map[string]interface{}{
		"status":        evt.Status,
		"restaurant_id": evt.RestaurantID,
		"customer_id":   evt.CustomerID,
		"updated_at":    evt.Timestamp.Format(time.RFC3339),
	}).Err()
	if err != nil {
		return err
	}
	if err := s.rdb.Expire(ctx, key, 48*time.Hour).Err(); err != nil {
		return err
	}

	change, err := json.Marshal(domain.StatusChange{Status: evt.Status, Timestamp: evt.Timestamp})
	if err != nil {
		return err
	}
	hKey := historyKey(evt.OrderID)
	if err := s.rdb.RPush(ctx, hKey, change).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, hKey, 48*time.Hour).Err()
}

// IncrementDelivered bumps the per-restaurant delivery counter for the day
// the order completed.
func (s *Store) IncrementDelivered(ctx context.Context, restaurantID int, day time.Time) error {
	key := "deliveries:daily:" + day.Format("2006-01-02")
	if err := s.rdb.ZIncrBy(ctx, key, 1, strconv.Itoa(restaurantID)).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, 30*24*time.Hour).Err()
}

func (s *Store) GetTracking(ctx context.Context, orderID int) (*domain.TrackingInfo, error) {
	fields, err := s.rdb.HGetAll(ctx, trackKey(orderID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrOrderNotTracked
	}

	info := &domain.TrackingInfo{
		OrderID: orderID,
		Status:  fields["status"],
	}
	info.RestaurantID, _ = strconv.Atoi(fields["restaurant_id"])
	if ts, err := time.Parse(time.RFC3339, fields["updated_at"]); err == nil {
		info.UpdatedAt = ts
	}

	raw, err := s.rdb.LRange(ctx, historyKey(orderID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	for _, entry := range raw {
		var change domain.StatusChange
		if err := json.Unmarshal([]byte(entry), &change); err != nil {
			continue
		}
		info.History = append(info.History, change)
	}
	return info, nil
}

// DeliveredCounts returns restaurant delivery totals for a day, best first.
func (s *Store) DeliveredCounts(ctx context.Context, day time.Time) (map[int]int, error) {
	key := "deliveries:daily:" + day.Format("2006-01-02")
	entries, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int, len(entries))
	for _, entry := range entries {
		id, err := strconv.Atoi(fmt.Sprint(entry.Member))
		if err != nil {
			continue
		}
		counts[id] = int(entry.Score)
	}
	return counts, nil
}
