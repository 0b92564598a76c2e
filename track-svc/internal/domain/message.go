package domain

import "time"

// OrderEvent mirrors the payload order-svc publishes on the order-events
// topic.
type OrderEvent struct {
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	RestaurantID int       `json:"restaurant_id"`
	CustomerID   int       `json:"customer_id"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}

const (
	EventOrderPlaced   = "order_placed"
	EventStatusChanged = "status_changed"
)

// TrackingInfo is what the tracker page renders: the live status plus the
// trail of statuses the order has moved through.
type TrackingInfo struct {
	OrderID      int            `json:"order_id"`
	RestaurantID int            `json:"restaurant_id"`
	Status       string         `json:"status"`
	UpdatedAt    time.Time      `json:"updated_at"`
	History      []StatusChange `json:"history"`
}

type StatusChange struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
