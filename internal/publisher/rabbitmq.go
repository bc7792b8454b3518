package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/ludodefgh/planif-neige-public-api/internal/domain"
)

// RabbitMQ publishes fetch outcomes so that downstream automation can react
// to failures, for instance waiting out a rate limit before the next run.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	fail := func(step string, err error) (*RabbitMQ, error) {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("%s: %w", step, err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		return fail("declare exchange", err)
	}

	if cfg.QueueName != "" {
		q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
		if err != nil {
			return fail("declare queue", err)
		}
		if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
			return fail("bind queue", err)
		}
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// OutcomeMessage announces how a pipeline run ended.
type OutcomeMessage struct {
	Pipeline    string    `json:"pipeline"`
	RunID       string    `json:"run_id"`
	Status      string    `json:"status"` // "success", "empty" or "error"
	RecordCount int       `json:"record_count"`
	FromDate    string    `json:"from_date,omitempty"`
	Error       string    `json:"error,omitempty"`
	Retryable   bool      `json:"retryable"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewOutcomeMessage(outcome *domain.FetchOutcome) OutcomeMessage {
	return OutcomeMessage{
		Pipeline:    outcome.Pipeline,
		RunID:       outcome.RunID,
		Status:      string(outcome.Kind),
		RecordCount: outcome.RecordCount,
		FromDate:    outcome.FromDate,
		Error:       outcome.ErrorMessage(),
		Retryable:   outcome.Retryable,
		Timestamp:   outcome.At.UTC(),
	}
}

func (r *RabbitMQ) Publish(ctx context.Context, outcome *domain.FetchOutcome) error {
	msg := NewOutcomeMessage(outcome)

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    outcome.RunID,
			Type:         outcome.Pipeline,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published outcome",
		"pipeline", outcome.Pipeline,
		"status", msg.Status,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
