package service

import (
	"context"
	"testing"

	"pdf-evidence-be/pkg/events"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type recordingDelivery struct {
	clientIDs []string
	payloads  []interface{}
}

func (d *recordingDelivery) Send(clientID string, payload interface{}) {
	d.clientIDs = append(d.clientIDs, clientID)
	d.payloads = append(d.payloads, payload)
}

func TestExternalStatusRoutesByClientID(t *testing.T) {
	delivery := &recordingDelivery{}
	svc := NewExternalStatusService(nil, delivery, nopLogger{}).(*externalStatusService)

	event := events.BaseEvent{
		Type: events.TypeRemoteStatus,
		Data: map[string]interface{}{
			"client_id": "3e2f7a9c-0000-0000-0000-000000000001",
			"stage":     "analyzing",
			"progress":  float64(40),
		},
	}
	if err := svc.handle(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(delivery.clientIDs) != 1 || delivery.clientIDs[0] != "3e2f7a9c-0000-0000-0000-000000000001" {
		t.Fatalf("delivered to %v, want the event's client id", delivery.clientIDs)
	}
}

func TestExternalStatusDropsUnroutableEvents(t *testing.T) {
	delivery := &recordingDelivery{}
	svc := NewExternalStatusService(nil, delivery, nopLogger{}).(*externalStatusService)

	event := events.BaseEvent{
		Type: events.TypeRemoteStatus,
		Data: map[string]interface{}{"stage": "complete"},
	}

	// Acknowledged (nil error) so the bus does not redeliver, but nothing is
	// fanned out.
	if err := svc.handle(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(delivery.payloads) != 0 {
		t.Fatalf("delivered %v, want no delivery", delivery.payloads)
	}
}

func TestExternalStatusStartWithoutBrokerIsNoop(t *testing.T) {
	svc := NewExternalStatusService(nil, &recordingDelivery{}, nopLogger{})
	svc.Start()
}
