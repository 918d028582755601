package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/streadway/amqp"
)

// matchQueue is the durable queue match lifecycle events are published to.
const matchQueue = "match_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares the match
// event queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		matchQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", matchQueue, err)
	}

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
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
		return fmt.Errorf("errors closing RabbitMQ client: %v", errs)
	}
	return nil
}

// PublishMatchEvent publishes a match lifecycle event to the match queue,
// marshaled to JSON and stamped with a unique event id.
func (c *Client) PublishMatchEvent(event map[string]interface{}) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	event["event_id"] = uuid.New().String()
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal match event: %w", err)
	}

	err = c.channel.Publish(
		"",         // default exchange
		matchQueue, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish match event: %w", err)
	}
	return nil
}

// ConsumeMatchEvents registers a consumer on the match queue and processes
// deliveries with the given handler in a background goroutine. A handler
// error nacks the delivery back onto the queue.
func (c *Client) ConsumeMatchEvents(messageHandler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	msgs, err := c.channel.Consume(
		matchQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go dispatch(msgs, messageHandler)

	return nil
}

// dispatch feeds deliveries to the handler until the channel closes. A
// handler error nacks the delivery back onto the queue; success acks it.
func dispatch(msgs <-chan amqp.Delivery, messageHandler func(msg amqp.Delivery) error) {
	for msg := range msgs {
		if err := messageHandler(msg); err != nil {
			log.Printf("Error processing match event %d: %v", msg.DeliveryTag, err)
			if nackErr := msg.Nack(false, true); nackErr != nil {
				log.Printf("Error nacking match event %d: %v", msg.DeliveryTag, nackErr)
			}
			continue
		}
		if ackErr := msg.Ack(false); ackErr != nil {
			log.Printf("Error acking match event %d: %v", msg.DeliveryTag, ackErr)
		}
	}
}

// HandleMatchEvent is the default consumer handler: it decodes the event and
// logs it. A payload that is not valid JSON is an error, which sends the
// delivery back onto the queue.
func HandleMatchEvent(msg amqp.Delivery) error {
	var event map[string]interface{}
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("failed to decode match event: %w", err)
	}
	log.Printf("Received match event %v (tag %d): %s", event["event"], msg.DeliveryTag, msg.Body)
	return nil
}
