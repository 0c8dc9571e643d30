package service

import (
	"context"
	"encoding/json"

	"pdf-evidence-be/internal/dto"
	"pdf-evidence-be/internal/pkg/logger"
	"pdf-evidence-be/pkg/events"
	pktNats "pdf-evidence-be/pkg/nats"
	"pdf-evidence-be/pkg/pipeline"
)

// INotifierService creates per-client status notifiers for the pipeline.
// Events go to the in-process bus for websocket delivery and are mirrored
// to NATS for any external consumers.
type INotifierService interface {
	ForClient(clientID string) pipeline.StatusNotifier
}

type notifierService struct {
	publisher      IPublisherService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewNotifierService(publisher IPublisherService, eventPublisher *pktNats.Publisher, log logger.ILogger) INotifierService {
	return &notifierService{
		publisher:      publisher,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (n *notifierService) ForClient(clientID string) pipeline.StatusNotifier {
	return &clientNotifier{parent: n, clientID: clientID}
}

type clientNotifier struct {
	parent   *notifierService
	clientID string
}

func (c *clientNotifier) Notify(ctx context.Context, item pipeline.Item, message string) {
	payload := dto.PipelineStatusMessage{
		ClientId: c.clientID,
		ItemId:   item.Id.String(),
		FileName: item.FileName,
		Stage:    string(item.Stage),
		Message:  message,
		Progress: item.Progress,
		Error:    item.Error,
	}

	msgJson, err := json.Marshal(payload)
	if err != nil {
		c.parent.logger.Error("NotifierService", "Failed to marshal status payload", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := c.parent.publisher.Publish(ctx, msgJson); err != nil {
		c.parent.logger.Error("NotifierService", "Failed to publish status to bus", map[string]interface{}{"error": err.Error(), "file": item.FileName})
	}

	// Mirror to NATS. Delivery there is best-effort.
	if c.parent.eventPublisher != nil {
		event := events.NewPipelineStatus(c.clientID, item.Id.String(), item.FileName, string(item.Stage), message, item.Progress, item.Error)
		if err := c.parent.eventPublisher.Publish(ctx, event); err != nil {
			c.parent.logger.Warn("NotifierService", "Failed to mirror status to NATS", map[string]interface{}{"error": err.Error()})
		}
	}
}
