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

const (
	ExchangeActivityTopic = "activity_topic"

	QueueActivityRecorded = "activity_recorded"

	BindingActivityRecorded = "activity.recorded.*"
)

// ActivityBroker publishes and consumes daily-activity events.
type ActivityBroker struct {
	client  *rabbit.RabbitMQ
	service string
	l       logger.Logger
}

func NewActivityBroker(client *rabbit.RabbitMQ, service string, l logger.Logger) *ActivityBroker {
	return &ActivityBroker{
		client:  client,
		service: service,
		l:       l,
	}
}

func (b *ActivityBroker) publish(ctx context.Context, exchange, routingKey string, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:   "application/json",
		Body:          body,
		Timestamp:     time.Now(),
		CorrelationId: wrap.GetRequestID(ctx),
	}

	if err := retry(5, time.Second*2,
		func() error {
			return b.client.Channel.PublishWithContext(
				ctx,
				exchange,
				routingKey,
				false,
				false,
				pub,
			)
		}); err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	return nil
}

// PublishActivityRecorded announces a stored daily activity to downstream
// consumers (ops dashboard, analytics).
func (b *ActivityBroker) PublishActivityRecorded(ctx context.Context, msg models.ActivityRecordedMessage) error {
	ctx = wrap.WithAction(ctx, "publish_activity_recorded")
	key := fmt.Sprintf("activity.recorded.%s", msg.RiderProfileID)

	err := b.publish(ctx, ExchangeActivityTopic, key, msg)
	metrics.RecordRabbitMQPublish(b.service, ExchangeActivityTopic, err)
	if err != nil {
		return wrap.Error(ctx, err)
	}
	return nil
}
