package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Lead lifecycle event names carried on the leads exchange.
const (
	EventLeadCreated        = "lead.created"
	EventLeadArchived       = "lead.archived"
	EventLeadRestored       = "lead.restored"
	EventLeadPurged         = "lead.purged"
	EventOfferStatusChanged = "lead.offer_status_changed"
)

type LeadEventPayload struct {
	Event         string    `json:"event"`
	UserID        string    `json:"user_id"`
	PropertyID    string    `json:"property_id"`
	Address       string    `json:"address"`
	OfferStatus   string    `json:"offer_status,omitempty"`
	PurchasePrice float64   `json:"purchase_price,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishLeadEvent(ctx context.Context, payload LeadEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal lead event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish lead event: %w", err)
	}

	return nil
}
