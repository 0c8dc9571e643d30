package service

import (
	"context"
	"encoding/json"
	"log"

	"pdf-evidence-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// StatusDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type StatusDelivery interface {
	Send(clientID string, payload interface{})
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	delivery  StatusDelivery
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	delivery StatusDelivery,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		delivery:  delivery,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.PipelineStatusMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal status message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if payload.ClientId == "" {
		log.Printf("[WARN] Status message without client_id, dropping (file: %s)", payload.FileName)
		msg.Ack()
		return
	}

	if cs.delivery != nil {
		cs.delivery.Send(payload.ClientId, payload)
	}

	msg.Ack()
}
