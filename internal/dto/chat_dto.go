package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartChatSessionResponse struct {
	SessionId   uuid.UUID `json:"session_id"`
	AssistantId string    `json:"assistant_id"`
	ThreadId    string    `json:"thread_id"`
}

type SendChatMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type SendChatMessageResponse struct {
	Reply ChatMessageResponse `json:"reply"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatHistoryResponse struct {
	SessionId uuid.UUID             `json:"session_id"`
	Messages  []ChatMessageResponse `json:"messages"`
}

type ResetChatResponse struct {
	Reset bool `json:"reset"`
}
