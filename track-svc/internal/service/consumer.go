package service

import (
	"context"
	"encoding/json"
	"log"

	"feastly/track-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Tracking Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Tracking Service consumer stopping")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var evt domain.OrderEvent
		if err := json.Unmarshal(message.Value, &evt); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(ctx, evt)
	}
}

// ProcessEvent projects one order event into the tracking store. Events are
// idempotent per (order, status): replaying one overwrites the hash with the
// same values and only pads the history.
func (c *Consumer) ProcessEvent(ctx context.Context, evt domain.OrderEvent) {
	switch evt.Type {
	case domain.EventOrderPlaced, domain.EventStatusChanged:
	default:
		return
	}

	log.Printf("Processing event: OrderID=%d, Status=%s", evt.OrderID, evt.Status)

	if err := c.Store.RecordStatus(ctx, evt); err != nil {
		log.Printf("Error recording status: %v", err)
		return
	}

	if evt.Status == "delivered" {
		if err := c.Store.IncrementDelivered(ctx, evt.RestaurantID, evt.Timestamp); err != nil {
			log.Printf("Error counting delivery: %v", err)
			return
		}
	}
}

var _ ConsumerInterface = (*Consumer)(nil)
