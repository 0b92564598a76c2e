package service

import (
	"context"
	"time"

	"feastly/track-svc/internal/domain"
	"feastly/track-svc/internal/storage"
)

type StoreInterface interface {
	RecordStatus(ctx context.Context, evt domain.OrderEvent) error
	IncrementDelivered(ctx context.Context, restaurantID int, day time.Time) error
	GetTracking(ctx context.Context, orderID int) (*domain.TrackingInfo, error)
	DeliveredCounts(ctx context.Context, day time.Time) (map[int]int, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, evt domain.OrderEvent)
}

var _ StoreInterface = (*storage.Store)(nil)
