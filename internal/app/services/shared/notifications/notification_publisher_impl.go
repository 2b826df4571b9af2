package notifications

import (
	"context"
	"curaflow-service/internal/app/config"
	"curaflow-service/internal/app/contracts"
	"curaflow-service/internal/pkg/constvars"
	"curaflow-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type notificationPublisher struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	limiter   *rate.Limiter
	mu        sync.Mutex
}

// NewNotificationPublisher declares the durable patient messaging queue and
// returns a publisher whose throughput is capped by the configured
// per-second outbound limit.
func NewNotificationPublisher(conn *amqp.Connection, logger *zap.Logger, messagingConfig config.Messaging) (contracts.NotificationPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		messagingConfig.PatientQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	perSecond := messagingConfig.OutboundMessagesPerSecond
	if perSecond <= 0 {
		perSecond = 1
	}

	return &notificationPublisher{
		ch:        ch,
		log:       logger,
		queueName: messagingConfig.PatientQueue,
		limiter:   rate.NewLimiter(rate.Limit(perSecond), perSecond),
	}, nil
}

func (p *notificationPublisher) Publish(ctx context.Context, notification *contracts.PatientNotification) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.log.Info("NotificationPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, notification.Event),
		zap.String(constvars.LoggingPatientIDKey, notification.PatientID),
	)

	if err := p.limiter.Wait(ctx); err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := p.ch.PublishWithContext(ctx, "", p.queueName, false, false, msg); err != nil {
		return exceptions.ErrQueuePublish(err)
	}
	return nil
}
