package notifier

import (
	"context"
	"sync"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	eventPublisherInstance contracts.EventPublisher
	onceEventPublisher     sync.Once
)

type notifierService struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

func NewNotifierService(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.EventPublisher, error) {
	var initErr error
	onceEventPublisher.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			initErr = err
			return
		}
		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			initErr = err
			return
		}
		eventPublisherInstance = &notifierService{
			Channel: channel,
			Queue:   queue,
			Log:     logger,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return eventPublisherInstance, nil
}

// PublishAppointmentEvent enqueues an event for downstream consumers.
// Failures are logged and swallowed so booking requests never fail on
// broker trouble.
func (s *notifierService) PublishAppointmentEvent(ctx context.Context, event *contracts.AppointmentEvent) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(event)
	if err != nil {
		s.Log.Error("notifierService.PublishAppointmentEvent error marshaling event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("notifierService.PublishAppointmentEvent error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, s.Queue),
			zap.String(constvars.LoggingEventKey, event.Event),
			zap.Error(err),
		)
		return
	}

	s.Log.Info("notifierService.PublishAppointmentEvent published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.Queue),
		zap.String(constvars.LoggingEventKey, event.Event),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)
}
