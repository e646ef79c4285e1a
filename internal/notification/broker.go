package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"
	"github.com/stpnv0/StageBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const publishTimeout = 5 * time.Second

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// BrokerPublisher sends booking events to a RabbitMQ topic exchange, routed
// by event type. An empty URL disables publishing.
type BrokerPublisher struct {
	conn     io.Closer
	ch       channel
	exchange string
	cb       *gobreaker.CircuitBreaker
	logger   logger.Logger

	// amqp channels are not safe for concurrent publishes
	mu sync.Mutex
}

func NewBrokerPublisher(url, exchange string, logger logger.Logger) (*BrokerPublisher, error) {
	if url == "" {
		logger.Warn("broker url is empty, booking events disabled")
		return newPublisher(nil, nil, exchange, logger), nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return newPublisher(conn, ch, exchange, logger), nil
}

func newPublisher(conn io.Closer, ch channel, exchange string, log logger.Logger) *BrokerPublisher {
	return &BrokerPublisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		cb:       newCircuitBreaker("broker-publish", log),
		logger:   log,
	}
}

func newCircuitBreaker(name string, log logger.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 2
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				logger.String("name", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
		},
	})
}

// Publish never fails the caller. The request context is detached so a
// client hanging up after the commit does not drop the event.
func (p *BrokerPublisher) Publish(ctx context.Context, event domain.BookingEvent) {
	if p.ch == nil {
		p.logger.Debug("booking event skipped (broker disabled)",
			logger.String("type", string(event.Type)),
			logger.String("booking_id", event.Booking.ID),
		)
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to encode booking event",
			logger.String("booking_id", event.Booking.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	_, err = p.cb.Execute(func() (interface{}, error) {
		p.mu.Lock()
		defer p.mu.Unlock()
		return nil, p.ch.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.Booking.ID + ":" + string(event.Type),
			Timestamp:    event.OccurredAt,
			Body:         body,
		})
	})
	if err != nil {
		level := logger.ErrorLevel
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			level = logger.WarnLevel
		}
		p.logger.LogAttrs(ctx, level, "failed to publish booking event",
			logger.String("type", string(event.Type)),
			logger.String("booking_id", event.Booking.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	p.logger.Debug("booking event published",
		logger.String("type", string(event.Type)),
		logger.String("booking_id", event.Booking.ID),
	)
}

func (p *BrokerPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
