package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	amqp "github.com/streadway/amqp"
)

// DefaultQueue receives every domain event.
const DefaultQueue = "civic_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL   string
	Queue string
}

// Event is the envelope published for every domain event.
type Event struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// NewClient creates a new RabbitMQ client.
// It connects to RabbitMQ, sets up a channel and declares the event queue.
func NewClient(cfg Config) (*Client, error) {
	queue := cfg.Queue
	if queue == "" {
		queue = DefaultQueue
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareQueue(ch, queue); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	log.WithField("queue", queue).Info("RabbitMQ client connected")

	return &Client{
		conn:    conn,
		channel: ch,
		queue:   queue,
	}, nil
}

func declareQueue(ch *amqp.Channel, name string) error {
	_, err := ch.QueueDeclare(
		name,  // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare %s: %w", name, err)
	}
	return nil
}

// Close closes the RabbitMQ connection and channel.
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

// EncodeEvent wraps payload in an Event envelope and marshals it to JSON.
func EncodeEvent(routingKey string, payload interface{}, at time.Time) ([]byte, error) {
	body, err := json.Marshal(Event{Type: routingKey, OccurredAt: at, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s event: %w", routingKey, err)
	}
	return body, nil
}

// PublishEvent publishes a persistent JSON event to the client's queue.
// routingKey is carried as the message type.
func (c *Client) PublishEvent(routingKey string, payload interface{}) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	now := time.Now().UTC()
	body, err := EncodeEvent(routingKey, payload, now)
	if err != nil {
		return err
	}

	err = c.channel.Publish(
		"",      // exchange: default exchange
		c.queue, // routing key: the queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         routingKey,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    now,
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", routingKey, err)
	}

	log.WithField("event", routingKey).Debug("Event published")
	return nil
}

// ConsumeEvents starts a goroutine delivering messages from the queue to
// messageHandler. Messages are acked on success and requeued on error.
func (c *Client) ConsumeEvents(messageHandler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	if err := declareQueue(c.channel, c.queue); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		c.queue, // queue
		"",      // consumer tag
		false,   // auto-ack
		false,   // exclusive
		false,   // no-local
		false,   // no-wait
		nil,     // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			if err := messageHandler(msg); err != nil {
				log.WithError(err).WithField("delivery_tag", msg.DeliveryTag).Error("Error processing event")
				if requeueErr := msg.Nack(false, true); requeueErr != nil {
					log.WithError(requeueErr).WithField("delivery_tag", msg.DeliveryTag).Error("Error nacking event")
				}
				continue
			}
			if ackErr := msg.Ack(false); ackErr != nil {
				log.WithError(ackErr).WithField("delivery_tag", msg.DeliveryTag).Error("Error acking event")
			}
		}
	}()

	return nil
}

// LogEvent is a message handler that decodes an event and writes it to the log.
// Undecodable messages are dropped rather than requeued forever.
func LogEvent(msg amqp.Delivery) error {
	var event Event
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.WithError(err).WithField("delivery_tag", msg.DeliveryTag).Warn("Dropping malformed event")
		return nil
	}
	log.WithFields(log.Fields{
		"event":       event.Type,
		"occurred_at": event.OccurredAt,
		"payload":     event.Payload,
	}).Info("Received event")
	return nil
}
