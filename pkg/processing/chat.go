package processing

import (
	"context"
	"fmt"
	"net/url"
)

// CreateAssistant provisions the backend chat assistant.
func (c *Client) CreateAssistant(ctx context.Context) (*Assistant, error) {
	var resp Assistant
	if err := c.doJSON(ctx, "POST", "/pdf-chat/create-assistant", nil, &resp); err != nil {
		return nil, err
	}
	if resp.AssistantID == "" {
		return nil, fmt.Errorf("create assistant: no assistant id received")
	}
	return &resp, nil
}

// CreateThread opens a conversation thread for a user.
func (c *Client) CreateThread(ctx context.Context, userID string) (*Thread, error) {
	var resp Thread
	if err := c.doJSON(ctx, "POST", "/pdf-chat/create-thread", createThreadRequest{UserID: userID}, &resp); err != nil {
		return nil, err
	}
	if resp.ThreadID == "" {
		return nil, fmt.Errorf("create thread: no thread id received")
	}
	return &resp, nil
}

// GetThread fetches the existing thread (and its history) for a user.
func (c *Client) GetThread(ctx context.Context, userID string) (*Thread, error) {
	var resp Thread
	if err := c.doJSON(ctx, "GET", "/pdf-chat/get-thread/"+url.PathEscape(userID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Chat sends one message to the document assistant. The call is cancellable
// through ctx; cancellation aborts the request without touching stored state.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.doJSON(ctx, "POST", "/pdf-chat/chat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
