package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"feastly/order-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

// KafkaOrderEvents publishes lifecycle events to the order-events topic,
// keyed by order id so one order's events stay in one partition, in order.
type KafkaOrderEvents struct {
	Writer *kafka.Writer
}

func NewKafkaOrderEvents(writer *kafka.Writer) *KafkaOrderEvents {
	return &KafkaOrderEvents{Writer: writer}
}

func (p *KafkaOrderEvents) PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(evt.OrderID)),
		Value: payload,
	})
}
