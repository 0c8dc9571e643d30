package service

import (
	"context"

	"pdf-evidence-be/internal/pkg/logger"
	"pdf-evidence-be/pkg/events"
	pktNats "pdf-evidence-be/pkg/nats"
)

type IExternalStatusService interface {
	// Start attaches the durable NATS consumer. It returns once the
	// subscription is running; message handling continues in the background.
	Start()
}

// externalStatusService fans remote-origin status events out to the websocket
// hub. Out-of-process workers publish on workspace.REMOTE_STATUS; the local
// pipeline stays on the in-process channel.
type externalStatusService struct {
	subscriber *pktNats.Subscriber
	delivery   StatusDelivery
	logger     logger.ILogger
}

func NewExternalStatusService(subscriber *pktNats.Subscriber, delivery StatusDelivery, log logger.ILogger) IExternalStatusService {
	return &externalStatusService{
		subscriber: subscriber,
		delivery:   delivery,
		logger:     log,
	}
}

func (s *externalStatusService) Start() {
	if s.subscriber == nil {
		return
	}

	subject := "workspace." + events.TypeRemoteStatus
	if err := s.subscriber.Subscribe(subject, "remote-status-fanout", s.handle); err != nil {
		s.logger.Error("ExternalStatus", "Failed to subscribe to remote status events", map[string]interface{}{"error": err.Error()})
	}
}

func (s *externalStatusService) handle(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	clientID, _ := payload["client_id"].(string)
	if clientID == "" {
		// Unroutable; acknowledge so the message is not redelivered forever.
		s.logger.Warn("ExternalStatus", "Dropping remote status without client id", map[string]interface{}{"type": event.EventType()})
		return nil
	}

	s.delivery.Send(clientID, payload)
	return nil
}
