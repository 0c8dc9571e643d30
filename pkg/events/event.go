package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g. "PIPELINE_STATUS").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used across the app.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const (
	TypePipelineStatus = "PIPELINE_STATUS"
	// TypeRemoteStatus carries status published by out-of-process workers.
	// Local pipeline events never use this subject, so consuming it cannot
	// echo messages back to the hub.
	TypeRemoteStatus   = "REMOTE_STATUS"
	TypeEssayGenerated = "ESSAY_GENERATED"
	TypeFileDeleted    = "FILE_DELETED"
)

// NewPipelineStatus builds the event emitted on every pipeline stage
// transition. client_id scopes delivery to the owning browser session.
func NewPipelineStatus(clientID, itemID, fileName, stage, message string, progress int, errDetail string) BaseEvent {
	data := map[string]interface{}{
		"client_id": clientID,
		"item_id":   itemID,
		"file_name": fileName,
		"stage":     stage,
		"message":   message,
		"progress":  progress,
	}
	if errDetail != "" {
		data["error"] = errDetail
	}
	return BaseEvent{
		Type:       TypePipelineStatus,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
