package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Dastan7k/gig-track-system/internal/domain/models"
	"github.com/Dastan7k/gig-track-system/pkg/logger"
	wrap "github.com/Dastan7k/gig-track-system/pkg/logger/wrapper"
	"github.com/Dastan7k/gig-track-system/pkg/metrics"
	"github.com/Dastan7k/gig-track-system/pkg/rabbit"
	amqp "github.com/rabbitmq/amqp091-go"
)

type ActivityConsumer struct {
	client  *rabbit.RabbitMQ
	service string
	l       logger.Logger
}

func NewActivityConsumer(client *rabbit.RabbitMQ, service string, l logger.Logger) *ActivityConsumer {
	return &ActivityConsumer{client: client, service: service, l: l}
}

type ActivityHandlerFunc func(ctx context.Context, msg models.ActivityRecordedMessage) error

// declareAndBindQueue объявляет и привязывает очередь к exchange.
func (c *ActivityConsumer) declareAndBindQueue(ctx context.Context, queueName, bindingKey, exchangeName string) (amqp.Queue, error) {
	const op = "ActivityConsumer.declareAndBindQueue"

	q, err := c.client.Channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return q, wrap.Error(ctx, fmt.Errorf("%s: declare queue failed: %w", op, err))
	}

	if err := c.client.Channel.QueueBind(q.Name, bindingKey, exchangeName, false, nil); err != nil {
		return q, wrap.Error(ctx, fmt.Errorf("%s: bind queue failed: %w", op, err))
	}

	return q, nil
}

func (c *ActivityConsumer) handleMessage(ctx context.Context, fn ActivityHandlerFunc, msg amqp.Delivery) {
	const op = "ActivityConsumer.handleMessage"

	var m models.ActivityRecordedMessage
	if err := json.Unmarshal(msg.Body, &m); err != nil {
		c.l.Error(ctx, "decode failed", err, "op", op)
		metrics.RecordRabbitMQConsume(c.service, QueueActivityRecorded, err)
		_ = msg.Nack(false, false)
		return
	}

	ctxx := wrap.WithRequestID(wrap.WithRiderID(ctx, m.RiderProfileID.String()), msg.CorrelationId)

	err := fn(ctxx, m)
	metrics.RecordRabbitMQConsume(c.service, QueueActivityRecorded, err)
	if err != nil {
		c.l.Error(ctxx, "handler failed", err, "op", op)
		_ = msg.Nack(false, false)
		return
	}

	if err := msg.Ack(false); err != nil {
		c.l.Warn(ctxx, "ack failed", err, "op", op)
	}
}

// ConsumeActivityRecorded слушает activity.recorded.* события и передаёт их в обработчик fn.
func (c *ActivityConsumer) ConsumeActivityRecorded(ctx context.Context, fn ActivityHandlerFunc) error {
	const op = "ActivityConsumer.ConsumeActivityRecorded"

	// Основной цикл потребителя
	for {
		if ctx.Err() != nil {
			c.l.Debug(ctx, "consume activity recorded stopped by context")
			return nil
		}

		// Проверяем и восстанавливаем соединение
		if err := c.client.EnsureConnection(ctx); err != nil {
			c.l.Error(ctx, "ensure connection failed", err, "op", op)
			time.Sleep(2 * time.Second)
			continue
		}

		// Гарантируем наличие exchange
		if err := c.client.Channel.ExchangeDeclare(ExchangeActivityTopic, "topic", true, false, false, false, nil); err != nil {
			c.l.Error(ctx, "declare exchange failed", err, "op", op)
			time.Sleep(3 * time.Second)
			continue
		}

		// Объявляем и биндим очередь
		q, err := c.declareAndBindQueue(ctx, QueueActivityRecorded, BindingActivityRecorded, ExchangeActivityTopic)
		if err != nil {
			c.l.Error(ctx, "declare queue failed", err, "op", op)
			time.Sleep(2 * time.Second)
			continue
		}

		// Подписываемся на очередь
		msgs, err := c.client.Channel.Consume(q.Name, "", false, false, false, false, nil)
		if err != nil {
			c.l.Error(ctx, "consume failed", err, "op", op)
			time.Sleep(2 * time.Second)
			continue
		}

		c.l.Info(ctx, "start consuming recorded activities", "queue", q.Name)

		// Цикл чтения сообщений
	consumeLoop:
		for {
			select {
			case <-ctx.Done():
				c.l.Info(ctx, "activity consumer shutting down", "op", op)
				return nil

			case msg, ok := <-msgs:
				if !ok {
					c.l.Warn(ctx, "message channel closed, reconnecting...", "op", op)
					time.Sleep(2 * time.Second)
					break consumeLoop
				}

				go c.handleMessage(ctx, fn, msg)
			}
		}
	}
}
