package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/streadway/amqp"
	"go.uber.org/zap"
)

// AccountEventsQueue is the durable queue account lifecycle events are sent to.
const AccountEventsQueue = "account_events"

// Account event types.
const (
	EventAccountRegistered = "account.registered"
	EventAccountDeleted    = "account.deleted"
)

// AccountEvent is the JSON body of an account lifecycle message.
type AccountEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	AccountID  uint      `json:"account_id"`
	Email      string    `json:"email,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewAccountEvent stamps a new event with a fresh ID and the current time.
func NewAccountEvent(eventType string, accountID uint, email string) AccountEvent {
	return AccountEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		AccountID:  accountID,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	}
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	log     *zap.Logger
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares the account
// events queue.
func NewClient(cfg Config, log *zap.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := declareQueue(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	log.Info("RabbitMQ client connected", zap.String("queue", AccountEventsQueue))

	return &Client{
		conn:    conn,
		channel: ch,
		log:     log,
	}, nil
}

func declareQueue(ch *amqp.Channel) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		AccountEventsQueue, // name
		true,               // durable
		false,              // delete when unused
		false,              // exclusive
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		return q, fmt.Errorf("failed to declare %s: %w", AccountEventsQueue, err)
	}
	return q, nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// PublishAccountEvent sends event to the account events queue as a persistent
// JSON message.
func (c *Client) PublishAccountEvent(event AccountEvent) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal account event: %w", err)
	}

	err = c.channel.Publish(
		"",                 // default exchange
		AccountEventsQueue, // routing key: the queue name
		false,              // mandatory
		false,              // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.ID,
			Type:         event.Type,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}

	c.log.Debug("account event published", zap.String("type", event.Type), zap.Uint("account_id", event.AccountID))
	return nil
}

// ConsumeAccountEvents delivers every message on the account events queue to
// handler from a background goroutine. Messages are acked when handler returns
// nil and requeued otherwise.
func (c *Client) ConsumeAccountEvents(handler func(AccountEvent) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	queue, err := declareQueue(c.channel)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		queue.Name, // queue
		"",         // consumer tag
		false,      // auto-ack
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			c.handleDelivery(msg, handler)
		}
	}()
	return nil
}

func (c *Client) handleDelivery(msg amqp.Delivery, handler func(AccountEvent) error) {
	event, err := DecodeAccountEvent(msg.Body)
	if err != nil {
		// A malformed body will never decode; drop it instead of requeueing forever.
		c.log.Error("discarding malformed account event", zap.Uint64("delivery_tag", msg.DeliveryTag), zap.Error(err))
		if nackErr := msg.Nack(false, false); nackErr != nil {
			c.log.Error("failed to nack message", zap.Uint64("delivery_tag", msg.DeliveryTag), zap.Error(nackErr))
		}
		return
	}

	if err := handler(event); err != nil {
		c.log.Warn("account event handler failed, requeueing", zap.String("event_id", event.ID), zap.Error(err))
		if nackErr := msg.Nack(false, true); nackErr != nil {
			c.log.Error("failed to nack message", zap.Uint64("delivery_tag", msg.DeliveryTag), zap.Error(nackErr))
		}
		return
	}

	if ackErr := msg.Ack(false); ackErr != nil {
		c.log.Error("failed to ack message", zap.Uint64("delivery_tag", msg.DeliveryTag), zap.Error(ackErr))
	}
}

// DecodeAccountEvent parses a message body produced by PublishAccountEvent.
func DecodeAccountEvent(body []byte) (AccountEvent, error) {
	var event AccountEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return AccountEvent{}, fmt.Errorf("failed to decode account event: %w", err)
	}
	if event.Type == "" {
		return AccountEvent{}, fmt.Errorf("account event %q has no type", event.ID)
	}
	return event, nil
}
