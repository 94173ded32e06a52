package queue

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/brickmate/leadbook/internal/entity"
	"github.com/brickmate/leadbook/internal/logger"
)

// UserFinder resolves the owner of a lead so the worker knows where to send
// notifications.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

type OfferMailer interface {
	SendOfferAccepted(to, address string, purchasePrice float64) error
}

// Worker drains the lead-event queue. Right now the only event with a side
// effect is an accepted offer, which triggers the congratulations email.
type Worker struct {
	Channel *amqp.Channel
	Users   UserFinder
	Mailer  OfferMailer
}

func NewWorker(ch *amqp.Channel, users UserFinder, mailer OfferMailer) *Worker {
	return &Worker{Channel: ch, Users: users, Mailer: mailer}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		logger.Log.Fatalf("failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadEventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				logger.Log.Warnf("worker: invalid JSON: %s", err)
				// Malformed message, reject without requeue so it hits the DLQ.
				d.Nack(false, false)
				continue
			}

			if err := w.processMessage(context.Background(), payload); err != nil {
				logger.Log.WithFields(logrus.Fields{
					"event":       payload.Event,
					"property_id": payload.PropertyID,
				}).Errorf("worker: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	logger.Log.Infof("worker waiting on queue %q", queueName)
	<-forever
}

func (w *Worker) processMessage(ctx context.Context, payload LeadEventPayload) error {
	if payload.Event != EventOfferStatusChanged || payload.OfferStatus != string(entity.OfferAccepted) {
		return nil
	}

	user, err := w.Users.FindByID(ctx, payload.UserID)
	if err != nil {
		return err
	}

	return w.Mailer.SendOfferAccepted(user.Email, payload.Address, payload.PurchasePrice)
}
