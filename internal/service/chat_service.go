package service

import (
	"context"
	"time"

	"pdf-evidence-be/internal/dto"
	"pdf-evidence-be/internal/entity"
	"pdf-evidence-be/internal/pkg/logger"
	"pdf-evidence-be/internal/pkg/serverutils"
	"pdf-evidence-be/internal/repository/specification"
	"pdf-evidence-be/internal/repository/unitofwork"
	"pdf-evidence-be/pkg/processing"

	"github.com/google/uuid"
)

type IChatService interface {
	Start(ctx context.Context, clientId uuid.UUID) (*dto.StartChatSessionResponse, error)
	Send(ctx context.Context, clientId uuid.UUID, req *dto.SendChatMessageRequest) (*dto.SendChatMessageResponse, error)
	History(ctx context.Context, clientId uuid.UUID) (*dto.ChatHistoryResponse, error)
	Reset(ctx context.Context, clientId uuid.UUID) (*dto.ResetChatResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	client     *processing.Client
	logger     logger.ILogger
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, client *processing.Client, log logger.ILogger) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		client:     client,
		logger:     log,
	}
}

// Start returns the existing session for a workspace or provisions a new
// assistant and thread on the backend.
func (c *chatService) Start(ctx context.Context, clientId uuid.UUID) (*dto.StartChatSessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	sessions := uow.ChatSessionRepository()

	existing, err := sessions.FindOne(ctx, specification.ByClientID{ClientID: clientId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.StartChatSessionResponse{
			SessionId:   existing.Id,
			AssistantId: existing.AssistantId,
			ThreadId:    existing.ThreadId,
		}, nil
	}

	assistant, err := c.client.CreateAssistant(ctx)
	if err != nil {
		return nil, err
	}

	// A remote thread can outlive the local session row (the reset keeps the
	// backend resources). Reuse it when present.
	thread, err := c.client.GetThread(ctx, clientId.String())
	if err != nil || thread.ThreadID == "" {
		thread, err = c.client.CreateThread(ctx, clientId.String())
		if err != nil {
			return nil, err
		}
	}

	session := entity.ChatSession{
		Id:          uuid.New(),
		ClientId:    clientId,
		AssistantId: assistant.AssistantID,
		ThreadId:    thread.ThreadID,
		CreatedAt:   time.Now(),
	}
	if err := sessions.Create(ctx, &session); err != nil {
		return nil, err
	}

	return &dto.StartChatSessionResponse{
		SessionId:   session.Id,
		AssistantId: session.AssistantId,
		ThreadId:    session.ThreadId,
	}, nil
}

// Send persists the user message, relays it to the backend thread and
// persists the assistant reply. Cancelling the request context aborts the
// relay; the user message stays recorded.
func (c *chatService) Send(ctx context.Context, clientId uuid.UUID, req *dto.SendChatMessageRequest) (*dto.SendChatMessageResponse, error) {
	session, err := c.requireSession(ctx, clientId)
	if err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	messages := uow.ChatMessageRepository()

	userMsg := entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: session.Id,
		Role:      "user",
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := messages.Create(ctx, &userMsg); err != nil {
		return nil, err
	}

	reply, err := c.client.Chat(ctx, processing.ChatRequest{
		UserID:   clientId.String(),
		ThreadID: session.ThreadId,
		Message:  req.Content,
	})
	if err != nil {
		return nil, err
	}

	assistantMsg := entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: session.Id,
		Role:      "assistant",
		Content:   reply.Response,
		CreatedAt: time.Now(),
	}
	if err := messages.Create(ctx, &assistantMsg); err != nil {
		// The reply exists on the remote thread; losing the local copy is
		// recoverable via History, so log and return it anyway.
		c.logger.Warn("ChatService", "Failed to persist assistant reply", map[string]interface{}{"error": err.Error()})
	}

	return &dto.SendChatMessageResponse{
		Reply: toChatMessageResponse(&assistantMsg),
	}, nil
}

func (c *chatService) History(ctx context.Context, clientId uuid.UUID) (*dto.ChatHistoryResponse, error) {
	session, err := c.requireSession(ctx, clientId)
	if err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	msgs, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: session.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.ChatHistoryResponse{
		SessionId: session.Id,
		Messages:  make([]dto.ChatMessageResponse, 0, len(msgs)),
	}
	for _, m := range msgs {
		resp.Messages = append(resp.Messages, toChatMessageResponse(m))
	}
	return resp, nil
}

// Reset drops the local transcript and session. The backend assistant and
// thread are left to expire on their own; the next Start provisions new ones.
func (c *chatService) Reset(ctx context.Context, clientId uuid.UUID) (*dto.ResetChatResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	sessions := uow.ChatSessionRepository()
	existing, err := sessions.FindOne(ctx, specification.ByClientID{ClientID: clientId})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return &dto.ResetChatResponse{Reset: false}, nil
	}

	if err := uow.ChatMessageRepository().DeleteBySessionId(ctx, existing.Id); err != nil {
		return nil, err
	}
	if err := sessions.Delete(ctx, existing.Id); err != nil {
		return nil, err
	}

	return &dto.ResetChatResponse{Reset: true}, nil
}

func (c *chatService) requireSession(ctx context.Context, clientId uuid.UUID) (*entity.ChatSession, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByClientID{ClientID: clientId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NotFound("no chat session, start one first")
	}
	return session, nil
}

func toChatMessageResponse(m *entity.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		Id:        m.Id,
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
